package fleet

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"fleetwatch.dev/fleet-dashboard-service/pkg/common"
	"fleetwatch.dev/fleet-dashboard-service/pkg/models"
	_ "fleetwatch.dev/fleet-dashboard-service/pkg/testing"
)

// recordMonthUsage stores usage rows dated today so they count toward the
// current month's total.
func recordMonthUsage(t *testing.T, f *Fleet, deviceID int, gbEach float64, days int) {
	t.Helper()

	for i := 0; i < days; i++ {
		_, err := f.Telemetry.RecordUsage(deviceID, &models.DeviceUsage{
			Date:      time.Now().Add(-time.Duration(i) * time.Minute),
			DataUsage: fmt.Sprintf("%.2f", gbEach),
		})
		require.NoError(t, err)
	}
}

func alertsOfType(t *testing.T, f *Fleet, deviceID int, alertType models.AlertType) []models.Alert {
	t.Helper()

	alerts, err := f.Alert.ListAlerts()
	require.NoError(t, err)

	var matched []models.Alert
	for _, alert := range alerts {
		if alert.Type == alertType && alert.DeviceID != nil && *alert.DeviceID == deviceID {
			matched = append(matched, alert)
		}
	}
	return matched
}

func TestCheckAndStoreUsageAlert(t *testing.T) {
	common.SetTestLoggerNop()

	f := GetTestFleetWithMemStorage(t)
	device := createTestDevice(t, f, "DEV-USAGE")

	// 9 * 10 GB = 90 GB, over the 80 GB line of the 100 GB default quota.
	// The last RecordUsage call already ran the threshold check.
	recordMonthUsage(t, f, device.ID, 10.0, 9)

	alerts := alertsOfType(t, f, device.ID, models.AlertTypeUsage)
	require.Len(t, alerts, 1)
	assert.Equal(t, models.AlertSeverityHigh, alerts[0].Severity)
	assert.Equal(t, models.AlertStatusActive, alerts[0].Status)
	assert.Equal(t, fmt.Sprintf("High Data Usage - %s", device.Label), alerts[0].Title)
	require.NotNil(t, alerts[0].TriggerConditions)
	assert.Equal(t, 100.0, alerts[0].TriggerConditions["quotaGB"])
}

func TestCheckAndStoreUsageAlert_Dedup(t *testing.T) {
	common.SetTestLoggerNop()

	f := GetTestFleetWithMemStorage(t)
	device := createTestDevice(t, f, "DEV-DEDUP")

	recordMonthUsage(t, f, device.ID, 30.0, 3)

	// More usage while the first alert is still active must not add another.
	recordMonthUsage(t, f, device.ID, 5.0, 2)

	alerts := alertsOfType(t, f, device.ID, models.AlertTypeUsage)
	assert.Len(t, alerts, 1)
}

func TestCheckAndStoreUsageAlert_BelowThreshold(t *testing.T) {
	common.SetTestLoggerNop()

	f := GetTestFleetWithMemStorage(t)
	device := createTestDevice(t, f, "DEV-LOW")

	recordMonthUsage(t, f, device.ID, 10.0, 3)

	alerts := alertsOfType(t, f, device.ID, models.AlertTypeUsage)
	assert.Empty(t, alerts)
}

func TestCheckAndStoreUsageAlert_CustomQuota(t *testing.T) {
	common.SetTestLoggerNop()

	f := GetTestFleetWithMemStorage(t)
	f.MonthlyQuotaGB = 10.0
	device := createTestDevice(t, f, "DEV-QUOTA")

	recordMonthUsage(t, f, device.ID, 3.0, 3)

	alerts := alertsOfType(t, f, device.ID, models.AlertTypeUsage)
	require.Len(t, alerts, 1)
	assert.Equal(t, 10.0, alerts[0].TriggerConditions["quotaGB"])
}

func TestConnectivityAlertOnErrorTransition(t *testing.T) {
	common.SetTestLoggerNop()

	f := GetTestFleetWithMemStorage(t)
	device := createTestDevice(t, f, "DEV-ERR")

	errState := models.DeviceStatusError
	_, err := f.Device.UpdateDevice(device.ID, &models.DevicePatch{Status: &errState})
	require.NoError(t, err)

	alerts := alertsOfType(t, f, device.ID, models.AlertTypeConnectivity)
	require.Len(t, alerts, 1)
	assert.Equal(t, models.AlertSeverityCritical, alerts[0].Severity)

	// Patching a device that is already in the error state is not a
	// transition and must not raise another alert.
	label := "DEV-ERR-RELABELED"
	_, err = f.Device.UpdateDevice(device.ID, &models.DevicePatch{Label: &label})
	require.NoError(t, err)

	alerts = alertsOfType(t, f, device.ID, models.AlertTypeConnectivity)
	assert.Len(t, alerts, 1)
}

func TestConnectivityAlertNotFiredOnRecovery(t *testing.T) {
	common.SetTestLoggerNop()

	f := GetTestFleetWithMemStorage(t)
	device := createTestDevice(t, f, "DEV-RECOVER")

	online := models.DeviceStatusOnline
	_, err := f.Device.UpdateDevice(device.ID, &models.DevicePatch{Status: &online})
	require.NoError(t, err)

	alerts := alertsOfType(t, f, device.ID, models.AlertTypeConnectivity)
	assert.Empty(t, alerts)
}

func TestResolveAlertStampsTimestamp(t *testing.T) {
	common.SetTestLoggerNop()

	f := GetTestFleetWithMemStorage(t)
	device := createTestDevice(t, f, "DEV-RESOLVE")

	created, err := f.Alert.CreateAlert(&models.Alert{
		Type:     models.AlertTypeSystem,
		Title:    "Maintenance window",
		Message:  "Scheduled maintenance",
		Severity: models.AlertSeverityLow,
		DeviceID: &device.ID,
	})
	require.NoError(t, err)
	assert.Nil(t, created.ResolvedAt)

	resolved := models.AlertStatusResolved
	updated, err := f.Alert.UpdateAlert(created.ID, &models.AlertPatch{Status: &resolved})
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusResolved, updated.Status)
	assert.NotNil(t, updated.ResolvedAt)
}

func TestCheckAndStoreUsageAlert_WithLog(t *testing.T) {
	var buf = &bytes.Buffer{}
	common.SetTestCaptureLogger(buf, zapcore.InfoLevel)

	f := GetTestFleetWithMemStorage(t)
	device := createTestDevice(t, f, "DEV-LOG")

	recordMonthUsage(t, f, device.ID, 45.0, 2)

	alerts := alertsOfType(t, f, device.ID, models.AlertTypeUsage)
	require.Len(t, alerts, 1)

	logs := ParseLogs(buf)

	{
		found := false
		for _, log := range logs {
			lobj := log.(map[string]any)
			if lobj["category"] == "alert" &&
				lobj["logger"] == "fleet_core" &&
				lobj["msg"] == "Usage alert saved" &&
				lobj["alert"].(map[string]any)["type"] == "usage" {
				found = true
			}
		}
		assert.True(t, found)
	}

	{
		found := false
		for _, log := range logs {
			lobj := log.(map[string]any)
			if lobj["category"] == "telemetry" &&
				lobj["logger"] == "fleet_core" &&
				lobj["msg"] == "Recorded usage for device" {
				found = true
			}
		}
		assert.True(t, found)
	}
}
