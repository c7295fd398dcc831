package fleet

import (
	"time"

	"go.uber.org/zap"

	"fleetwatch.dev/fleet-dashboard-service/pkg/common"
	"fleetwatch.dev/fleet-dashboard-service/pkg/models"
)

func (f *Fleet) recordUsage(deviceID int, input *models.DeviceUsage) (*models.DeviceUsage, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetTelemetry),
	)

	input.DeviceID = deviceID
	usage, err := f.Store.RecordDeviceUsage(input)
	if err != nil {
		return nil, err
	}

	logger.Info("Recorded usage for device", zap.Reflect("usage", usage))

	if f.Alert != nil {
		device, err := f.Store.GetDevice(deviceID)
		if err == nil {
			if err := f.Alert.CheckAndStoreUsageAlert(device); err != nil {
				logger.Warn("Usage alert check failed", zap.Int("deviceId", deviceID), zap.Error(err))
			}
		}
	}

	return usage, nil
}

// getDeviceUsage reads back the persisted usage rows inside the window,
// oldest first. Reads are repeatable: the same stored history always yields
// the same response.
func (f *Fleet) getDeviceUsage(deviceID int, timeRange string) ([]models.DeviceUsage, error) {
	days := TimeRangeDays(timeRange)
	since := timeRangeStart(time.Now(), days)
	return f.Store.GetDeviceUsage(deviceID, since)
}

func (f *Fleet) recordLocation(deviceID int, input *models.DeviceLocation) (*models.DeviceLocation, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetTelemetry),
	)

	input.DeviceID = deviceID
	location, err := f.Store.RecordDeviceLocation(input)
	if err != nil {
		return nil, err
	}

	logger.Info("Recorded location for device", zap.Reflect("location", location))
	return location, nil
}

func (f *Fleet) getDeviceLocations(deviceID int) ([]models.DeviceLocation, error) {
	return f.Store.GetDeviceLocations(deviceID)
}

type ITelemetryImpl struct {
	fleet *Fleet
}

func (it *ITelemetryImpl) RecordUsage(deviceID int, input *models.DeviceUsage) (*models.DeviceUsage, error) {
	return it.fleet.recordUsage(deviceID, input)
}

func (it *ITelemetryImpl) GetDeviceUsage(deviceID int, timeRange string) ([]models.DeviceUsage, error) {
	return it.fleet.getDeviceUsage(deviceID, timeRange)
}

func (it *ITelemetryImpl) RecordLocation(deviceID int, input *models.DeviceLocation) (*models.DeviceLocation, error) {
	return it.fleet.recordLocation(deviceID, input)
}

func (it *ITelemetryImpl) GetDeviceLocations(deviceID int) ([]models.DeviceLocation, error) {
	return it.fleet.getDeviceLocations(deviceID)
}

func (f *Fleet) GetITelemetry() ITelemetry {
	return &ITelemetryImpl{fleet: f}
}
