package fleet

import (
	"fmt"

	"go.uber.org/zap"

	"fleetwatch.dev/fleet-dashboard-service/pkg/common"
	"fleetwatch.dev/fleet-dashboard-service/pkg/models"
)

func (f *Fleet) listReports() ([]models.Report, error) {
	return f.Store.GetReports()
}

func (f *Fleet) getReport(id int) (*models.Report, error) {
	return f.Store.GetReport(id)
}

func (f *Fleet) createReport(input *models.Report) (*models.Report, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetReport),
	)

	// generatedBy must point at a real user; reports are the one entity
	// whose reference is checked up front.
	if _, err := f.Store.GetUser(input.GeneratedBy); err != nil {
		return nil, fmt.Errorf("generatedBy user %d: %w", input.GeneratedBy, err)
	}

	report, err := f.Store.CreateReport(input)
	if err != nil {
		return nil, err
	}

	logger.Info("Report queued", zap.Int("id", report.ID), zap.String("name", report.Name))
	return report, nil
}

type IReportImpl struct {
	fleet *Fleet
}

func (ir *IReportImpl) ListReports() ([]models.Report, error) {
	return ir.fleet.listReports()
}

func (ir *IReportImpl) GetReport(id int) (*models.Report, error) {
	return ir.fleet.getReport(id)
}

func (ir *IReportImpl) CreateReport(input *models.Report) (*models.Report, error) {
	return ir.fleet.createReport(input)
}

func (f *Fleet) GetIReport() IReport {
	return &IReportImpl{fleet: f}
}
