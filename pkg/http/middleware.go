package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"fleetwatch.dev/fleet-dashboard-service/pkg/common"
)

const requestIDKey = "requestID"
const claimsKey = "authClaims"

// RequestID tags every request with a uuid, echoes it in the X-Request-ID
// header and writes one access-log line through the shared zap logger.
func (rs *RestfulServer) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(requestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)

		c.Next()

		common.GetLoggerWith(common.LoggerNameRestfulServer).Info("request",
			zap.String("requestId", id),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
		)
	}
}

// RateLimit applies the per-client token bucket. With no limiter store the
// middleware is a pass-through.
func (rs *RestfulServer) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rs.CheckClientLimiter(c.ClientIP()) {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		c.Next()
	}
}

// RequireAuth rejects requests without a valid bearer token. Only installed
// when the server is configured with AuthRequired.
func (rs *RestfulServer) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing bearer token"})
			return
		}
		claims, err := rs.Tokens.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}
