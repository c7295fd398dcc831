package fleet

import (
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"fleetwatch.dev/fleet-dashboard-service/pkg/common"
	"fleetwatch.dev/fleet-dashboard-service/pkg/models"
)

func (f *Fleet) listAlerts() ([]models.Alert, error) {
	return f.Store.GetAlerts()
}

func (f *Fleet) getAlert(id int) (*models.Alert, error) {
	return f.Store.GetAlert(id)
}

func (f *Fleet) createAlert(input *models.Alert) (*models.Alert, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetAlert),
	)

	alert, err := f.Store.CreateAlert(input)
	if err != nil {
		return nil, err
	}

	logger.Info("Alert saved", zap.Reflect("alert", alert))
	return alert, nil
}

func (f *Fleet) updateAlert(id int, patch *models.AlertPatch) (*models.Alert, error) {
	return f.Store.UpdateAlert(id, patch)
}

func (f *Fleet) deleteAlert(id int) (bool, error) {
	return f.Store.DeleteAlert(id)
}

// hasActiveAlert reports whether the device already has an active alert of
// the given type, so threshold checks do not pile up duplicates.
func (f *Fleet) hasActiveAlert(deviceID int, alertType models.AlertType) (bool, error) {
	alerts, err := f.Store.GetAlerts()
	if err != nil {
		return false, err
	}
	for _, alert := range alerts {
		if alert.Status == models.AlertStatusActive &&
			alert.Type == alertType &&
			alert.DeviceID != nil && *alert.DeviceID == deviceID {
			return true, nil
		}
	}
	return false, nil
}

// checkAndStoreUsageAlert fires when the device's month-to-date data usage
// crosses the alert threshold of its monthly quota.
func (f *Fleet) checkAndStoreUsageAlert(device *models.Device) error {
	since := monthStart(time.Now())
	rows, err := f.Store.GetDeviceUsage(device.ID, since)
	if err != nil {
		return err
	}

	total := 0.0
	for _, row := range rows {
		gb, err := strconv.ParseFloat(row.DataUsage, 64)
		if err != nil {
			continue
		}
		total += gb
	}

	quota := f.quotaGB()
	if total <= quota*UsageAlertThreshold {
		return nil
	}

	exists, err := f.hasActiveAlert(device.ID, models.AlertTypeUsage)
	if err != nil || exists {
		return err
	}

	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetAlert),
	)

	alert := &models.Alert{
		Type:     models.AlertTypeUsage,
		Title:    fmt.Sprintf("High Data Usage - %s", device.Label),
		Message:  fmt.Sprintf("Device has used %.2f GB of its %.0f GB monthly limit", total, quota),
		Severity: models.AlertSeverityHigh,
		DeviceID: &device.ID,
		TriggerConditions: map[string]any{
			"thresholdPercent": UsageAlertThreshold * 100,
			"monthToDateGB":    total,
			"quotaGB":          quota,
		},
	}

	logger.Info("Usage alert found", zap.Reflect("alert", alert))

	if _, err := f.Store.CreateAlert(alert); err != nil {
		return err
	}

	logger.Info("Usage alert saved", zap.Reflect("alert", alert))
	return nil
}

// checkAndStoreConnectivityAlert fires when a device reports the error state.
func (f *Fleet) checkAndStoreConnectivityAlert(device *models.Device) error {
	exists, err := f.hasActiveAlert(device.ID, models.AlertTypeConnectivity)
	if err != nil || exists {
		return err
	}

	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetAlert),
	)

	alert := &models.Alert{
		Type:     models.AlertTypeConnectivity,
		Title:    fmt.Sprintf("Device Error - %s", device.Label),
		Message:  fmt.Sprintf("Device %s entered the error state", device.Label),
		Severity: models.AlertSeverityCritical,
		DeviceID: &device.ID,
		TriggerConditions: map[string]any{
			"status": string(device.Status),
		},
	}

	logger.Info("Connectivity alert found", zap.Reflect("alert", alert))

	if _, err := f.Store.CreateAlert(alert); err != nil {
		return err
	}

	logger.Info("Connectivity alert saved", zap.Reflect("alert", alert))
	return nil
}

type IAlertImpl struct {
	fleet *Fleet
}

func (ia *IAlertImpl) ListAlerts() ([]models.Alert, error) {
	return ia.fleet.listAlerts()
}

func (ia *IAlertImpl) GetAlert(id int) (*models.Alert, error) {
	return ia.fleet.getAlert(id)
}

func (ia *IAlertImpl) CreateAlert(input *models.Alert) (*models.Alert, error) {
	return ia.fleet.createAlert(input)
}

func (ia *IAlertImpl) UpdateAlert(id int, patch *models.AlertPatch) (*models.Alert, error) {
	return ia.fleet.updateAlert(id, patch)
}

func (ia *IAlertImpl) DeleteAlert(id int) (bool, error) {
	return ia.fleet.deleteAlert(id)
}

func (ia *IAlertImpl) CheckAndStoreUsageAlert(device *models.Device) error {
	return ia.fleet.checkAndStoreUsageAlert(device)
}

func (ia *IAlertImpl) CheckAndStoreConnectivityAlert(device *models.Device) error {
	return ia.fleet.checkAndStoreConnectivityAlert(device)
}

func (f *Fleet) GetIAlert() IAlert {
	return &IAlertImpl{fleet: f}
}
