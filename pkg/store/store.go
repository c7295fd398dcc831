package store

import (
	"errors"
	"time"

	"fleetwatch.dev/fleet-dashboard-service/pkg/models"
)

var (
	// ErrNotFound reports a lookup for an id that is not in the store.
	ErrNotFound = errors.New("record not found")
	// ErrConflict reports a write that would violate a uniqueness rule
	// (username, email, imei).
	ErrConflict = errors.New("record conflicts with an existing one")
)

// DeviceFilters narrows GetDevices. Empty or "all" disables a filter.
// Location and Usage are accepted from the query string but currently
// have no effect.
type DeviceFilters struct {
	Status   string
	Network  string
	Location string
	Usage    string
}

// Storage is the persistence contract shared by the in-memory and the
// gorm-backed implementations. Instances are constructed explicitly and
// handed to the domain layer; there is no package-level store.
type Storage interface {
	GetUser(id int) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUsers() ([]models.User, error)
	CreateUser(input *models.User) (*models.User, error)
	UpdateUser(id int, patch *models.UserPatch) (*models.User, error)

	GetDevices(filters DeviceFilters) ([]models.Device, error)
	GetDevice(id int) (*models.Device, error)
	CreateDevice(input *models.Device) (*models.Device, error)
	UpdateDevice(id int, patch *models.DevicePatch) (*models.Device, error)
	DeleteDevice(id int) (bool, error)

	RecordDeviceUsage(input *models.DeviceUsage) (*models.DeviceUsage, error)
	GetDeviceUsage(deviceID int, since time.Time) ([]models.DeviceUsage, error)
	GetFleetUsage(since time.Time) ([]models.DeviceUsage, error)
	RecordDeviceLocation(input *models.DeviceLocation) (*models.DeviceLocation, error)
	GetDeviceLocations(deviceID int) ([]models.DeviceLocation, error)
	GetLatestDeviceLocations() (map[int]models.DeviceLocation, error)

	GetAlerts() ([]models.Alert, error)
	GetAlert(id int) (*models.Alert, error)
	CreateAlert(input *models.Alert) (*models.Alert, error)
	UpdateAlert(id int, patch *models.AlertPatch) (*models.Alert, error)
	DeleteAlert(id int) (bool, error)

	GetReports() ([]models.Report, error)
	GetReport(id int) (*models.Report, error)
	CreateReport(input *models.Report) (*models.Report, error)
}

// statusFilterActive reports whether an exact-match filter value is in play.
func statusFilterActive(v string) bool {
	return v != "" && v != "all"
}
