package store

import (
	"fmt"
	"math/rand"
	"time"

	"fleetwatch.dev/fleet-dashboard-service/pkg/auth"
	"fleetwatch.dev/fleet-dashboard-service/pkg/models"
)

// SeedDemoData loads the demo fleet: two users, three devices, their last 30
// days of usage and a location snapshot each, two alerts and one finished
// report. The PRNG is fixed-seeded so repeated runs against a fresh store
// produce the same dataset. This fixture is the only place random values
// enter the system.
func SeedDemoData(s Storage) error {
	rnd := rand.New(rand.NewSource(42))
	now := time.Now()

	adminPassword, err := auth.HashPassword("admin123")
	if err != nil {
		return err
	}
	userPassword, err := auth.HashPassword("user123")
	if err != nil {
		return err
	}

	admin, err := s.CreateUser(&models.User{
		Username: "admin",
		Email:    "admin@company.com",
		Password: adminPassword,
		Role:     models.UserRoleAdmin,
	})
	if err != nil {
		return err
	}
	normal, err := s.CreateUser(&models.User{
		Username: "user",
		Email:    "user@company.com",
		Password: userPassword,
	})
	if err != nil {
		return err
	}

	adminLogin := now.Add(-2 * time.Hour)
	if _, err := s.UpdateUser(admin.ID, &models.UserPatch{LastLogin: &adminLogin}); err != nil {
		return err
	}
	normalLogin := now.Add(-24 * time.Hour)
	if _, err := s.UpdateUser(normal.ID, &models.UserPatch{LastLogin: &normalLogin}); err != nil {
		return err
	}

	type deviceSeed struct {
		label     string
		imei      string
		status    models.DeviceStatus
		network   string
		location  string
		country   string
		signal    int
		battery   int
		ip        string
		owner     int
		latitude  string
		longitude string
	}

	seeds := []deviceSeed{
		{
			label: "DEV-001", imei: "123456789012345", status: models.DeviceStatusOnline,
			network: "Verizon", location: "New York, NY", country: "US",
			signal: 98, battery: 85, ip: "192.168.1.100", owner: admin.ID,
			latitude: "40.71280000", longitude: "-74.00600000",
		},
		{
			label: "DEV-042", imei: "987654321098765", status: models.DeviceStatusOnline,
			network: "AT&T", location: "Chicago, IL", country: "US",
			signal: 76, battery: 92, ip: "192.168.1.101", owner: admin.ID,
			latitude: "41.87810000", longitude: "-87.62980000",
		},
		{
			label: "DEV-078", imei: "456789012345678", status: models.DeviceStatusOffline,
			network: "T-Mobile", location: "Los Angeles, CA", country: "US",
			signal: 0, battery: 45, ip: "", owner: normal.ID,
			latitude: "34.05220000", longitude: "-118.24370000",
		},
	}

	devices := make([]*models.Device, 0, len(seeds))
	for i := range seeds {
		seed := seeds[i]
		input := &models.Device{
			Label:           seed.label,
			Imei:            seed.imei,
			Status:          seed.status,
			NetworkProvider: seed.network,
			Location:        &seed.location,
			Country:         &seed.country,
			SignalStrength:  &seed.signal,
			BatteryLevel:    &seed.battery,
			AssignedUserID:  &seed.owner,
		}
		if seed.ip != "" {
			input.IpAddress = &seed.ip
		}
		device, err := s.CreateDevice(input)
		if err != nil {
			return err
		}
		devices = append(devices, device)
	}

	// 30 days of usage per device, newest day last.
	for _, device := range devices {
		for day := 29; day >= 0; day-- {
			date := now.AddDate(0, 0, -day)
			cost := fmt.Sprintf("%.2f", rnd.Float64()*50)
			if _, err := s.RecordDeviceUsage(&models.DeviceUsage{
				DeviceID:  device.ID,
				Date:      date,
				DataUsage: fmt.Sprintf("%.2f", rnd.Float64()*5),
				Cost:      &cost,
			}); err != nil {
				return err
			}
		}
	}

	for i, device := range devices {
		accuracy := 10
		if _, err := s.RecordDeviceLocation(&models.DeviceLocation{
			DeviceID:  device.ID,
			Latitude:  seeds[i].latitude,
			Longitude: seeds[i].longitude,
			Accuracy:  &accuracy,
			Timestamp: now,
		}); err != nil {
			return err
		}
	}

	usageDevice := devices[1].ID
	if _, err := s.CreateAlert(&models.Alert{
		Type:              models.AlertTypeUsage,
		Title:             "High Data Usage - DEV-042",
		Message:           "Device has exceeded 80% of monthly limit",
		Severity:          models.AlertSeverityHigh,
		DeviceID:          &usageDevice,
		TriggerConditions: map[string]any{"threshold": 80, "currentUsage": 85},
	}); err != nil {
		return err
	}

	offlineDevice := devices[2].ID
	if _, err := s.CreateAlert(&models.Alert{
		Type:              models.AlertTypeConnectivity,
		Title:             "Device Offline - DEV-078",
		Message:           "Device has been offline for 2 hours",
		Severity:          models.AlertSeverityCritical,
		DeviceID:          &offlineDevice,
		TriggerConditions: map[string]any{"maxOfflineTime": 120},
	}); err != nil {
		return err
	}

	filePath := "/reports/usage-latest.pdf"
	if _, err := s.CreateReport(&models.Report{
		Name:        "Monthly Usage Report",
		Type:        models.ReportTypeUsage,
		Format:      models.ReportFormatPdf,
		Parameters:  map[string]any{"timeRange": "30d", "devices": "all"},
		GeneratedBy: admin.ID,
		FilePath:    &filePath,
		Status:      models.ReportStatusCompleted,
	}); err != nil {
		return err
	}

	return nil
}
