package store

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fleetwatch.dev/fleet-dashboard-service/pkg/common"
	"fleetwatch.dev/fleet-dashboard-service/pkg/models"
)

// GormStorage persists the fleet through gorm. Construct one per process
// (or per test) and pass it down; there is deliberately no shared instance.
type GormStorage struct {
	Conn *gorm.DB
}

var _ Storage = (*GormStorage)(nil)

func NewGormStorage(dialector gorm.Dialector) (*GormStorage, error) {
	logger := common.GetLoggerWith(common.LoggerNameStore)

	conn, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	logger.Info("Connected to database with dialector:", zap.String("dialector", dialector.Name()))

	err = conn.AutoMigrate(
		&models.User{},
		&models.Device{},
		&models.DeviceUsage{},
		&models.DeviceLocation{},
		&models.Alert{},
		&models.Report{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	logger.Info("Database migration completed")

	if dialector.Name() == "sqlite" {
		if err := conn.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("enable sqlite foreign key support: %w", err)
		}
		if err := conn.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
			return nil, fmt.Errorf("set sqlite journal mode: %w", err)
		}
	}

	return &GormStorage{Conn: conn}, nil
}

func UseSqliteDialector() gorm.Dialector {
	var dbPath string
	var found bool
	if dbPath, found = os.LookupEnv(common.EnvKeyFleetDBPath); !found {
		dbPath = "fleetwatch.db"
	}
	return sqlite.Open(dbPath)
}

func UseMemorySqliteDialector() gorm.Dialector {
	return sqlite.Open("file::memory:?cache=shared")
}

func UsePostgresDialector() gorm.Dialector {
	return postgres.Open(os.Getenv(common.EnvKeyFleetDBDsn))
}

func translateErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *GormStorage) GetUser(id int) (*models.User, error) {
	var user models.User
	if err := s.Conn.First(&user, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

func (s *GormStorage) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.Conn.First(&user, "username = ?", username).Error; err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

func (s *GormStorage) GetUsers() ([]models.User, error) {
	var users []models.User
	err := s.Conn.Order("id").Find(&users).Error
	return users, err
}

func (s *GormStorage) CreateUser(input *models.User) (*models.User, error) {
	var count int64
	err := s.Conn.Model(&models.User{}).
		Where("username = ? OR email = ?", input.Username, input.Email).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("username %q or email %q: %w", input.Username, input.Email, ErrConflict)
	}
	normalizeNewUser(input, time.Now())
	if err := s.Conn.Create(input).Error; err != nil {
		return nil, err
	}
	return input, nil
}

func (s *GormStorage) UpdateUser(id int, patch *models.UserPatch) (*models.User, error) {
	var user models.User
	if err := s.Conn.First(&user, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	patch.Apply(&user)
	if err := s.Conn.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormStorage) GetDevices(filters DeviceFilters) ([]models.Device, error) {
	query := s.Conn.Model(&models.Device{}).Order("id")
	if statusFilterActive(filters.Status) {
		query = query.Where("status = ?", filters.Status)
	}
	if statusFilterActive(filters.Network) {
		needle := "%" + strings.ToLower(filters.Network) + "%"
		query = query.Where("LOWER(network_provider) LIKE ?", needle)
	}
	var devices []models.Device
	err := query.Find(&devices).Error
	return devices, err
}

func (s *GormStorage) GetDevice(id int) (*models.Device, error) {
	var device models.Device
	if err := s.Conn.First(&device, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &device, nil
}

func (s *GormStorage) CreateDevice(input *models.Device) (*models.Device, error) {
	var count int64
	err := s.Conn.Model(&models.Device{}).Where("imei = ?", input.Imei).Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("imei %q: %w", input.Imei, ErrConflict)
	}
	normalizeNewDevice(input, time.Now())
	if err := s.Conn.Create(input).Error; err != nil {
		return nil, err
	}
	return input, nil
}

func (s *GormStorage) UpdateDevice(id int, patch *models.DevicePatch) (*models.Device, error) {
	var device models.Device
	if err := s.Conn.First(&device, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	patch.Apply(&device)
	device.LastSeen = time.Now()
	if err := s.Conn.Save(&device).Error; err != nil {
		return nil, err
	}
	return &device, nil
}

func (s *GormStorage) DeleteDevice(id int) (bool, error) {
	removed := false
	err := s.Conn.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Device{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		removed = true
		if err := tx.Delete(&models.DeviceUsage{}, "device_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.DeviceLocation{}, "device_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Model(&models.Alert{}).
			Where("device_id = ?", id).
			Update("device_id", nil).Error
	})
	return removed, err
}

func (s *GormStorage) RecordDeviceUsage(input *models.DeviceUsage) (*models.DeviceUsage, error) {
	if _, err := s.GetDevice(input.DeviceID); err != nil {
		return nil, fmt.Errorf("device %d: %w", input.DeviceID, err)
	}
	normalizeNewUsage(input, time.Now())
	if err := s.Conn.Create(input).Error; err != nil {
		return nil, err
	}
	return input, nil
}

func (s *GormStorage) GetDeviceUsage(deviceID int, since time.Time) ([]models.DeviceUsage, error) {
	var rows []models.DeviceUsage
	err := s.Conn.
		Where("device_id = ? AND date >= ?", deviceID, since).
		Order("date").
		Find(&rows).Error
	return rows, err
}

func (s *GormStorage) GetFleetUsage(since time.Time) ([]models.DeviceUsage, error) {
	var rows []models.DeviceUsage
	err := s.Conn.
		Where("date >= ?", since).
		Order("date").
		Find(&rows).Error
	return rows, err
}

func (s *GormStorage) RecordDeviceLocation(input *models.DeviceLocation) (*models.DeviceLocation, error) {
	if _, err := s.GetDevice(input.DeviceID); err != nil {
		return nil, fmt.Errorf("device %d: %w", input.DeviceID, err)
	}
	normalizeNewLocation(input, time.Now())
	if err := s.Conn.Create(input).Error; err != nil {
		return nil, err
	}
	return input, nil
}

func (s *GormStorage) GetDeviceLocations(deviceID int) ([]models.DeviceLocation, error) {
	var rows []models.DeviceLocation
	err := s.Conn.
		Where("device_id = ?", deviceID).
		Order("timestamp desc").
		Find(&rows).Error
	return rows, err
}

func (s *GormStorage) GetLatestDeviceLocations() (map[int]models.DeviceLocation, error) {
	var rows []models.DeviceLocation
	if err := s.Conn.Order("timestamp").Find(&rows).Error; err != nil {
		return nil, err
	}
	latest := make(map[int]models.DeviceLocation)
	for _, l := range rows {
		latest[l.DeviceID] = l
	}
	return latest, nil
}

func (s *GormStorage) GetAlerts() ([]models.Alert, error) {
	var alerts []models.Alert
	err := s.Conn.Order("id").Find(&alerts).Error
	return alerts, err
}

func (s *GormStorage) GetAlert(id int) (*models.Alert, error) {
	var alert models.Alert
	if err := s.Conn.First(&alert, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &alert, nil
}

func (s *GormStorage) CreateAlert(input *models.Alert) (*models.Alert, error) {
	normalizeNewAlert(input, time.Now())
	if err := s.Conn.Create(input).Error; err != nil {
		return nil, err
	}
	return input, nil
}

func (s *GormStorage) UpdateAlert(id int, patch *models.AlertPatch) (*models.Alert, error) {
	var alert models.Alert
	if err := s.Conn.First(&alert, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	resolveAlertPatch(patch, &alert, time.Now())
	patch.Apply(&alert)
	if err := s.Conn.Save(&alert).Error; err != nil {
		return nil, err
	}
	return &alert, nil
}

func (s *GormStorage) DeleteAlert(id int) (bool, error) {
	res := s.Conn.Delete(&models.Alert{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func (s *GormStorage) GetReports() ([]models.Report, error) {
	var reports []models.Report
	err := s.Conn.Order("id").Find(&reports).Error
	return reports, err
}

func (s *GormStorage) GetReport(id int) (*models.Report, error) {
	var report models.Report
	if err := s.Conn.First(&report, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &report, nil
}

func (s *GormStorage) CreateReport(input *models.Report) (*models.Report, error) {
	normalizeNewReport(input, time.Now())
	if err := s.Conn.Create(input).Error; err != nil {
		return nil, err
	}
	return input, nil
}
