package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"fleetwatch.dev/fleet-dashboard-service/pkg/models"
)

type UserCreateRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

var userCreateSchema = z.Struct(z.Shape{
	"Username": z.String().Min(3).Required(),
	"Email":    z.String().Email().Required(),
	"Password": z.String().Min(8).Required(),
	"Role":     z.String().OneOf(models.UserRoles),
	"Status":   z.String().OneOf(models.UserStatuses),
})

func (rs *RestfulServer) ListUsers(c *gin.Context) {
	users, err := rs.Fleet.User.ListUsers()
	if err != nil {
		respondError(c, err, "User not found", "Failed to fetch users")
		return
	}

	c.JSON(http.StatusOK, users)
}

func (rs *RestfulServer) CreateUser(c *gin.Context) {
	var req UserCreateRequest
	if errs := userCreateSchema.Parse(zhttp.Request(c.Request), &req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid user data",
			"errors":  z.Issues.SanitizeMap(errs),
		})
		return
	}

	user, err := rs.Fleet.User.CreateUser(&models.User{
		Username: req.Username,
		Email:    req.Email,
		Role:     models.UserRole(req.Role),
		Status:   models.UserStatus(req.Status),
	}, req.Password)
	if err != nil {
		respondError(c, err, "User not found", "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, user)
}
