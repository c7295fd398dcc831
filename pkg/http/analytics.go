package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (rs *RestfulServer) GetDashboardStats(c *gin.Context) {
	stats, err := rs.Fleet.Analytics.GetDashboardStats()
	if err != nil {
		respondError(c, err, "Stats not found", "Failed to fetch dashboard stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (rs *RestfulServer) GetUsageAnalytics(c *gin.Context) {
	points, err := rs.Fleet.Analytics.GetUsageAnalytics(c.Param("timeRange"))
	if err != nil {
		respondError(c, err, "Usage analytics not found", "Failed to fetch usage analytics")
		return
	}

	c.JSON(http.StatusOK, points)
}

func (rs *RestfulServer) GetDeviceAnalytics(c *gin.Context) {
	breakdown, err := rs.Fleet.Analytics.GetDeviceAnalytics(c.Param("timeRange"))
	if err != nil {
		respondError(c, err, "Device analytics not found", "Failed to fetch device analytics")
		return
	}

	c.JSON(http.StatusOK, breakdown)
}

func (rs *RestfulServer) GetLocationAnalytics(c *gin.Context) {
	snapshots, err := rs.Fleet.Analytics.GetLocationAnalytics()
	if err != nil {
		respondError(c, err, "Location analytics not found", "Failed to fetch location analytics")
		return
	}

	c.JSON(http.StatusOK, snapshots)
}
