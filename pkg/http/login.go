package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"fleetwatch.dev/fleet-dashboard-service/pkg/fleet"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

var loginSchema = z.Struct(z.Shape{
	"Username": z.String().Min(1).Required(),
	"Password": z.String().Min(1).Required(),
})

// Login verifies credentials and hands out the bearer token the dashboard
// client keeps in local storage.
func (rs *RestfulServer) Login(c *gin.Context) {
	var req LoginRequest
	if errs := loginSchema.Parse(zhttp.Request(c.Request), &req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid login data",
			"errors":  z.Issues.SanitizeMap(errs),
		})
		return
	}

	user, err := rs.Fleet.User.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, fleet.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password"})
			return
		}
		respondError(c, err, "User not found", "Failed to log in")
		return
	}

	token, err := rs.Tokens.Issue(user)
	if err != nil {
		respondError(c, err, "User not found", "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}
