package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"fleetwatch.dev/fleet-dashboard-service/pkg/auth"
	"fleetwatch.dev/fleet-dashboard-service/pkg/fleet"
)

type RestfulServer struct {
	Server           *gin.Engine
	Fleet            *fleet.Fleet
	RateLimiterStore *fleet.RateLimiterStore
	Tokens           *auth.TokenIssuer
	AuthRequired     bool
}

func (rs *RestfulServer) GetLimiter(clientKey string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(clientKey)
	}
}

func (rs *RestfulServer) CheckClientLimiter(clientKey string) bool {
	limiter := rs.GetLimiter(clientKey)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(clientKey string, clientRate float64, clientBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(clientKey, rate.Limit(clientRate), clientBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	api := rs.Server.Group("/api")
	api.Use(rs.RequestID(), rs.RateLimit())

	api.POST("/auth/login", rs.Login)

	protected := api.Group("")
	if rs.AuthRequired {
		protected.Use(rs.RequireAuth())
	}

	devices := protected.Group("/devices")
	{
		devices.GET("", rs.ListDevices)
		devices.POST("", rs.CreateDevice)
		devices.GET("/:id", rs.GetDevice)
		devices.PATCH("/:id", rs.UpdateDevice)
		devices.DELETE("/:id", rs.DeleteDevice)
		devices.GET("/:id/usage", rs.GetDeviceUsage)
		devices.GET("/:id/usage/:timeRange", rs.GetDeviceUsage)
		devices.POST("/:id/usage", rs.RecordDeviceUsage)
		devices.GET("/:id/locations", rs.GetDeviceLocations)
		devices.POST("/:id/locations", rs.RecordDeviceLocation)
	}

	alerts := protected.Group("/alerts")
	{
		alerts.GET("", rs.ListAlerts)
		alerts.POST("", rs.CreateAlert)
		alerts.GET("/:id", rs.GetAlert)
		alerts.PATCH("/:id", rs.UpdateAlert)
		alerts.DELETE("/:id", rs.DeleteAlert)
	}

	reports := protected.Group("/reports")
	{
		reports.GET("", rs.ListReports)
		reports.POST("", rs.CreateReport)
		reports.GET("/:id", rs.GetReport)
	}

	users := protected.Group("/users")
	{
		users.GET("", rs.ListUsers)
		users.POST("", rs.CreateUser)
	}

	analytics := protected.Group("/analytics")
	{
		analytics.GET("/dashboard", rs.GetDashboardStats)
		analytics.GET("/usage", rs.GetUsageAnalytics)
		analytics.GET("/usage/:timeRange", rs.GetUsageAnalytics)
		analytics.GET("/devices", rs.GetDeviceAnalytics)
		analytics.GET("/devices/:timeRange", rs.GetDeviceAnalytics)
		analytics.GET("/locations", rs.GetLocationAnalytics)
	}
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
