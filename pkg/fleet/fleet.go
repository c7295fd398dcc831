package fleet

import (
	"fleetwatch.dev/fleet-dashboard-service/pkg/models"
	"fleetwatch.dev/fleet-dashboard-service/pkg/store"
)

// DefaultMonthlyQuotaGB is the per-device monthly data budget used for the
// dashboard usage gauge and the usage alert threshold when none is
// configured.
const DefaultMonthlyQuotaGB = 100.0

// UsageAlertThreshold is the fraction of the monthly quota at which a usage
// alert fires for a device.
const UsageAlertThreshold = 0.8

type IDevice interface {
	ListDevices(filters store.DeviceFilters) ([]models.Device, error)
	GetDevice(id int) (*models.Device, error)
	CreateDevice(input *models.Device) (*models.Device, error)
	UpdateDevice(id int, patch *models.DevicePatch) (*models.Device, error)
	DeleteDevice(id int) (bool, error)
}

type ITelemetry interface {
	RecordUsage(deviceID int, input *models.DeviceUsage) (*models.DeviceUsage, error)
	GetDeviceUsage(deviceID int, timeRange string) ([]models.DeviceUsage, error)
	RecordLocation(deviceID int, input *models.DeviceLocation) (*models.DeviceLocation, error)
	GetDeviceLocations(deviceID int) ([]models.DeviceLocation, error)
}

type IAlert interface {
	ListAlerts() ([]models.Alert, error)
	GetAlert(id int) (*models.Alert, error)
	CreateAlert(input *models.Alert) (*models.Alert, error)
	UpdateAlert(id int, patch *models.AlertPatch) (*models.Alert, error)
	DeleteAlert(id int) (bool, error)
	CheckAndStoreUsageAlert(device *models.Device) error
	CheckAndStoreConnectivityAlert(device *models.Device) error
}

type IReport interface {
	ListReports() ([]models.Report, error)
	GetReport(id int) (*models.Report, error)
	CreateReport(input *models.Report) (*models.Report, error)
}

type IUser interface {
	ListUsers() ([]models.User, error)
	CreateUser(input *models.User, plainPassword string) (*models.User, error)
	Authenticate(username string, password string) (*models.User, error)
}

type IAnalytics interface {
	GetDashboardStats() (*DashboardStats, error)
	GetUsageAnalytics(timeRange string) ([]UsagePoint, error)
	GetDeviceAnalytics(timeRange string) ([]StatusBreakdown, error)
	GetLocationAnalytics() ([]LocationSnapshot, error)
}

type Fleet struct {
	Store          store.Storage
	MonthlyQuotaGB float64

	Device    IDevice
	Telemetry ITelemetry
	Alert     IAlert
	Report    IReport
	User      IUser
	Analytics IAnalytics
}

type ServiceOpts struct {
	Device    IDevice
	Telemetry ITelemetry
	Alert     IAlert
	Report    IReport
	User      IUser
	Analytics IAnalytics
}

func (f *Fleet) WithServices(opts ServiceOpts) *Fleet {
	if opts.Device != nil {
		f.Device = opts.Device
	}
	if opts.Telemetry != nil {
		f.Telemetry = opts.Telemetry
	}
	if opts.Alert != nil {
		f.Alert = opts.Alert
	}
	if opts.Report != nil {
		f.Report = opts.Report
	}
	if opts.User != nil {
		f.User = opts.User
	}
	if opts.Analytics != nil {
		f.Analytics = opts.Analytics
	}
	return f
}

// WithDefaultServices wires every service to its in-package implementation.
func (f *Fleet) WithDefaultServices() *Fleet {
	return f.WithServices(ServiceOpts{
		Device:    f.GetIDevice(),
		Telemetry: f.GetITelemetry(),
		Alert:     f.GetIAlert(),
		Report:    f.GetIReport(),
		User:      f.GetIUser(),
		Analytics: f.GetIAnalytics(),
	})
}

func (f *Fleet) quotaGB() float64 {
	if f.MonthlyQuotaGB > 0 {
		return f.MonthlyQuotaGB
	}
	return DefaultMonthlyQuotaGB
}
