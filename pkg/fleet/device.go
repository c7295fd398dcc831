package fleet

import (
	"go.uber.org/zap"

	"fleetwatch.dev/fleet-dashboard-service/pkg/common"
	"fleetwatch.dev/fleet-dashboard-service/pkg/models"
	"fleetwatch.dev/fleet-dashboard-service/pkg/store"
)

func (f *Fleet) listDevices(filters store.DeviceFilters) ([]models.Device, error) {
	return f.Store.GetDevices(filters)
}

func (f *Fleet) getDevice(id int) (*models.Device, error) {
	return f.Store.GetDevice(id)
}

func (f *Fleet) createDevice(input *models.Device) (*models.Device, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetDevice),
	)

	device, err := f.Store.CreateDevice(input)
	if err != nil {
		return nil, err
	}

	logger.Info("Registered device", zap.Int("id", device.ID), zap.String("imei", device.Imei))
	return device, nil
}

func (f *Fleet) updateDevice(id int, patch *models.DevicePatch) (*models.Device, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetDevice),
	)

	prev, err := f.Store.GetDevice(id)
	if err != nil {
		return nil, err
	}

	device, err := f.Store.UpdateDevice(id, patch)
	if err != nil {
		return nil, err
	}

	logger.Info("Updated device", zap.Int("id", device.ID), zap.Reflect("patch", patch))

	// A transition into the error state raises a connectivity alert.
	if f.Alert != nil &&
		device.Status == models.DeviceStatusError &&
		prev.Status != models.DeviceStatusError {
		if err := f.Alert.CheckAndStoreConnectivityAlert(device); err != nil {
			logger.Warn("Connectivity alert check failed", zap.Int("id", device.ID), zap.Error(err))
		}
	}

	return device, nil
}

func (f *Fleet) deleteDevice(id int) (bool, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetDevice),
	)

	removed, err := f.Store.DeleteDevice(id)
	if err != nil {
		return false, err
	}
	if removed {
		logger.Info("Removed device", zap.Int("id", id))
	}
	return removed, nil
}

type IDeviceImpl struct {
	fleet *Fleet
}

func (id *IDeviceImpl) ListDevices(filters store.DeviceFilters) ([]models.Device, error) {
	return id.fleet.listDevices(filters)
}

func (id *IDeviceImpl) GetDevice(deviceID int) (*models.Device, error) {
	return id.fleet.getDevice(deviceID)
}

func (id *IDeviceImpl) CreateDevice(input *models.Device) (*models.Device, error) {
	return id.fleet.createDevice(input)
}

func (id *IDeviceImpl) UpdateDevice(deviceID int, patch *models.DevicePatch) (*models.Device, error) {
	return id.fleet.updateDevice(deviceID, patch)
}

func (id *IDeviceImpl) DeleteDevice(deviceID int) (bool, error) {
	return id.fleet.deleteDevice(deviceID)
}

func (f *Fleet) GetIDevice() IDevice {
	return &IDeviceImpl{fleet: f}
}
