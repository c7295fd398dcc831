package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"

	"fleetwatch.dev/fleet-dashboard-service/pkg/models"
)

type AlertCreateRequest struct {
	Type              string         `json:"type"`
	Title             string         `json:"title"`
	Message           string         `json:"message"`
	Severity          string         `json:"severity"`
	Status            string         `json:"status"`
	DeviceID          *int           `json:"deviceId"`
	TriggerConditions map[string]any `json:"triggerConditions"`
}

// TriggerConditions is a free-form payload; the schema only covers the
// structured fields, so the request is bound first and validated in place.
var alertCreateSchema = z.Struct(z.Shape{
	"Type":     z.String().OneOf(models.AlertTypes).Required(),
	"Title":    z.String().Min(1).Required(),
	"Message":  z.String().Min(1).Required(),
	"Severity": z.String().OneOf(models.AlertSeverities).Required(),
	"Status":   z.String().OneOf(models.AlertStatuses),
	"DeviceID": z.Ptr(z.Int()),
})

func (rs *RestfulServer) ListAlerts(c *gin.Context) {
	alerts, err := rs.Fleet.Alert.ListAlerts()
	if err != nil {
		respondError(c, err, "Alert not found", "Failed to fetch alerts")
		return
	}

	c.JSON(http.StatusOK, alerts)
}

func (rs *RestfulServer) GetAlert(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	alert, err := rs.Fleet.Alert.GetAlert(id)
	if err != nil {
		respondError(c, err, "Alert not found", "Failed to fetch alert")
		return
	}

	c.JSON(http.StatusOK, alert)
}

func (rs *RestfulServer) CreateAlert(c *gin.Context) {
	var req AlertCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload"})
		return
	}
	if errs := alertCreateSchema.Validate(&req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid alert data",
			"errors":  z.Issues.SanitizeMap(errs),
		})
		return
	}

	alert, err := rs.Fleet.Alert.CreateAlert(&models.Alert{
		Type:              models.AlertType(req.Type),
		Title:             req.Title,
		Message:           req.Message,
		Severity:          models.AlertSeverity(req.Severity),
		Status:            models.AlertStatus(req.Status),
		DeviceID:          req.DeviceID,
		TriggerConditions: req.TriggerConditions,
	})
	if err != nil {
		respondError(c, err, "Alert not found", "Failed to create alert")
		return
	}

	c.JSON(http.StatusCreated, alert)
}

func (rs *RestfulServer) UpdateAlert(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var patch models.AlertPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload"})
		return
	}

	alert, err := rs.Fleet.Alert.UpdateAlert(id, &patch)
	if err != nil {
		respondError(c, err, "Alert not found", "Failed to update alert")
		return
	}

	c.JSON(http.StatusOK, alert)
}

func (rs *RestfulServer) DeleteAlert(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	removed, err := rs.Fleet.Alert.DeleteAlert(id)
	if err != nil {
		respondError(c, err, "Alert not found", "Failed to delete alert")
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"message": "Alert not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
