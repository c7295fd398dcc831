package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"fleetwatch.dev/fleet-dashboard-service/pkg/common"
	"fleetwatch.dev/fleet-dashboard-service/pkg/models"
	_ "fleetwatch.dev/fleet-dashboard-service/pkg/testing"
)

func tableExists(db *gorm.DB, tableName string) bool {
	var count int64
	err := db.Raw(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name=?`, tableName,
	).Scan(&count).Error
	return err == nil && count > 0
}

func newTestGormStorage(t *testing.T) *GormStorage {
	t.Helper()
	common.SetTestLoggerNop()

	s, err := NewGormStorage(UseMemorySqliteDialector())
	require.NoError(t, err)
	return s
}

func TestGormMigration(t *testing.T) {
	s := newTestGormStorage(t)

	var tables = []string{"users", "devices", "device_usages", "device_locations", "alerts", "reports"}
	for _, table := range tables {
		if !tableExists(s.Conn, table) {
			t.Errorf("Expected table %q to exist after migration", table)
		}
	}
}

func TestGormDeviceLifecycle(t *testing.T) {
	s := newTestGormStorage(t)

	imei := uuid.NewString()
	device, err := s.CreateDevice(&models.Device{
		Label:           "DEV-G01",
		Imei:            imei,
		NetworkProvider: "Verizon",
	})
	require.NoError(t, err)
	assert.Equal(t, models.DeviceStatusOffline, device.Status)
	require.NotNil(t, device.SignalStrength)
	assert.Equal(t, 0, *device.SignalStrength)

	// duplicate imei rejected
	_, err = s.CreateDevice(&models.Device{
		Label:           "DEV-G02",
		Imei:            imei,
		NetworkProvider: "AT&T",
	})
	assert.ErrorIs(t, err, ErrConflict)

	online := models.DeviceStatusOnline
	updated, err := s.UpdateDevice(device.ID, &models.DevicePatch{Status: &online})
	require.NoError(t, err)
	assert.Equal(t, models.DeviceStatusOnline, updated.Status)
	assert.Equal(t, device.Label, updated.Label)

	removed, err := s.DeleteDevice(device.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.DeleteDevice(device.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = s.GetDevice(device.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormDeleteDeviceCascade(t *testing.T) {
	s := newTestGormStorage(t)

	device, err := s.CreateDevice(&models.Device{
		Label:           "DEV-G03",
		Imei:            uuid.NewString(),
		NetworkProvider: "T-Mobile",
	})
	require.NoError(t, err)

	_, err = s.RecordDeviceUsage(&models.DeviceUsage{DeviceID: device.ID, DataUsage: "2.00"})
	require.NoError(t, err)
	alert, err := s.CreateAlert(&models.Alert{
		Type: models.AlertTypeConnectivity, Title: "t", Message: "m",
		Severity: models.AlertSeverityHigh, DeviceID: &device.ID,
	})
	require.NoError(t, err)

	removed, err := s.DeleteDevice(device.ID)
	require.NoError(t, err)
	require.True(t, removed)

	usage, err := s.GetDeviceUsage(device.ID, time.Time{})
	require.NoError(t, err)
	assert.Empty(t, usage)

	kept, err := s.GetAlert(alert.ID)
	require.NoError(t, err)
	assert.Nil(t, kept.DeviceID)
}

func TestGormNetworkFilterCaseInsensitive(t *testing.T) {
	s := newTestGormStorage(t)

	provider := "AT&T " + uuid.NewString()
	_, err := s.CreateDevice(&models.Device{
		Label:           "DEV-G04",
		Imei:            uuid.NewString(),
		NetworkProvider: provider,
	})
	require.NoError(t, err)

	devices, err := s.GetDevices(DeviceFilters{Network: "at&t"})
	require.NoError(t, err)

	found := false
	for _, device := range devices {
		if device.NetworkProvider == provider {
			found = true
		}
	}
	assert.True(t, found)
}

func TestGormAlertTriggerConditionsRoundTrip(t *testing.T) {
	s := newTestGormStorage(t)

	alert, err := s.CreateAlert(&models.Alert{
		Type:              models.AlertTypeUsage,
		Title:             "High Data Usage",
		Message:           "over the line",
		Severity:          models.AlertSeverityHigh,
		TriggerConditions: map[string]any{"threshold": 80.0},
	})
	require.NoError(t, err)

	saved, err := s.GetAlert(alert.ID)
	require.NoError(t, err)
	require.NotNil(t, saved.TriggerConditions)
	assert.Equal(t, 80.0, saved.TriggerConditions["threshold"])
}
