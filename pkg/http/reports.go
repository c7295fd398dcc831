package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"

	"fleetwatch.dev/fleet-dashboard-service/pkg/models"
)

type ReportCreateRequest struct {
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	Format      string         `json:"format"`
	Parameters  map[string]any `json:"parameters"`
	GeneratedBy int            `json:"generatedBy"`
	FilePath    *string        `json:"filePath"`
	Status      string         `json:"status"`
}

var reportCreateSchema = z.Struct(z.Shape{
	"Name":        z.String().Min(1).Required(),
	"Type":        z.String().OneOf(models.ReportTypes).Required(),
	"Format":      z.String().OneOf(models.ReportFormats).Required(),
	"GeneratedBy": z.Int().GT(0).Required(),
	"FilePath":    z.Ptr(z.String()),
	"Status":      z.String().OneOf(models.ReportStatuses),
})

func (rs *RestfulServer) ListReports(c *gin.Context) {
	reports, err := rs.Fleet.Report.ListReports()
	if err != nil {
		respondError(c, err, "Report not found", "Failed to fetch reports")
		return
	}

	c.JSON(http.StatusOK, reports)
}

func (rs *RestfulServer) GetReport(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	report, err := rs.Fleet.Report.GetReport(id)
	if err != nil {
		respondError(c, err, "Report not found", "Failed to fetch report")
		return
	}

	c.JSON(http.StatusOK, report)
}

func (rs *RestfulServer) CreateReport(c *gin.Context) {
	var req ReportCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload"})
		return
	}
	if errs := reportCreateSchema.Validate(&req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid report data",
			"errors":  z.Issues.SanitizeMap(errs),
		})
		return
	}

	report, err := rs.Fleet.Report.CreateReport(&models.Report{
		Name:        req.Name,
		Type:        models.ReportType(req.Type),
		Format:      models.ReportFormat(req.Format),
		Parameters:  req.Parameters,
		GeneratedBy: req.GeneratedBy,
		FilePath:    req.FilePath,
		Status:      models.ReportStatus(req.Status),
	})
	if err != nil {
		respondError(c, err, "User not found", "Failed to create report")
		return
	}

	c.JSON(http.StatusCreated, report)
}
