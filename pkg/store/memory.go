package store

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"fleetwatch.dev/fleet-dashboard-service/pkg/common"
	"fleetwatch.dev/fleet-dashboard-service/pkg/models"
)

// table is one entity's keyed mapping plus its monotonic id counter. Each
// table carries its own mutex so concurrent writes to different entity types
// never contend, and read-modify-write on one type can never lose updates.
type table[T any] struct {
	mu     sync.Mutex
	rows   map[int]T
	order  []int
	nextID int
}

func newTable[T any]() *table[T] {
	return &table[T]{
		rows:   make(map[int]T),
		nextID: 1,
	}
}

// insert assigns the next id and stores the row built from it. Ids only
// grow; a deleted id is never handed out again.
func (t *table[T]) insert(build func(id int) T) T {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.nextID
	t.nextID++
	row := build(id)
	t.rows[id] = row
	t.order = append(t.order, id)
	return row
}

func (t *table[T]) get(id int) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	row, ok := t.rows[id]
	return row, ok
}

func (t *table[T]) update(id int, mutate func(T) T) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	row = mutate(row)
	t.rows[id] = row
	return row, true
}

func (t *table[T]) delete(id int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, v := range t.order {
		if v == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// values returns rows in insertion order.
func (t *table[T]) values() []T {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id])
	}
	return out
}

// deleteWhere removes every row matching the predicate and reports how many
// were removed.
func (t *table[T]) deleteWhere(match func(T) bool) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	removed := 0
	kept := t.order[:0]
	for _, id := range t.order {
		if match(t.rows[id]) {
			delete(t.rows, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	t.order = kept
	return removed
}

// MemStorage keeps the whole fleet in process memory. It is the default
// backend for development and tests, and the reference semantics the gorm
// backend is held to.
type MemStorage struct {
	users     *table[models.User]
	devices   *table[models.Device]
	usage     *table[models.DeviceUsage]
	locations *table[models.DeviceLocation]
	alerts    *table[models.Alert]
	reports   *table[models.Report]
}

func NewMemStorage() *MemStorage {
	return &MemStorage{
		users:     newTable[models.User](),
		devices:   newTable[models.Device](),
		usage:     newTable[models.DeviceUsage](),
		locations: newTable[models.DeviceLocation](),
		alerts:    newTable[models.Alert](),
		reports:   newTable[models.Report](),
	}
}

var _ Storage = (*MemStorage)(nil)

func (s *MemStorage) GetUser(id int) (*models.User, error) {
	user, ok := s.users.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *MemStorage) GetUserByUsername(username string) (*models.User, error) {
	for _, user := range s.users.values() {
		if user.Username == username {
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStorage) GetUsers() ([]models.User, error) {
	return s.users.values(), nil
}

func (s *MemStorage) CreateUser(input *models.User) (*models.User, error) {
	for _, existing := range s.users.values() {
		if existing.Username == input.Username {
			return nil, fmt.Errorf("username %q: %w", input.Username, ErrConflict)
		}
		if existing.Email == input.Email {
			return nil, fmt.Errorf("email %q: %w", input.Email, ErrConflict)
		}
	}
	normalizeNewUser(input, time.Now())
	user := s.users.insert(func(id int) models.User {
		input.ID = id
		return *input
	})
	return &user, nil
}

func (s *MemStorage) UpdateUser(id int, patch *models.UserPatch) (*models.User, error) {
	user, ok := s.users.update(id, func(u models.User) models.User {
		patch.Apply(&u)
		return u
	})
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *MemStorage) GetDevices(filters DeviceFilters) ([]models.Device, error) {
	devices := s.devices.values()
	if statusFilterActive(filters.Status) {
		devices = common.Filter(devices, func(d models.Device) bool {
			return string(d.Status) == filters.Status
		})
	}
	if statusFilterActive(filters.Network) {
		needle := strings.ToLower(filters.Network)
		devices = common.Filter(devices, func(d models.Device) bool {
			return strings.Contains(strings.ToLower(d.NetworkProvider), needle)
		})
	}
	return devices, nil
}

func (s *MemStorage) GetDevice(id int) (*models.Device, error) {
	device, ok := s.devices.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &device, nil
}

func (s *MemStorage) CreateDevice(input *models.Device) (*models.Device, error) {
	for _, existing := range s.devices.values() {
		if existing.Imei == input.Imei {
			return nil, fmt.Errorf("imei %q: %w", input.Imei, ErrConflict)
		}
	}
	normalizeNewDevice(input, time.Now())
	device := s.devices.insert(func(id int) models.Device {
		input.ID = id
		return *input
	})
	return &device, nil
}

func (s *MemStorage) UpdateDevice(id int, patch *models.DevicePatch) (*models.Device, error) {
	now := time.Now()
	device, ok := s.devices.update(id, func(d models.Device) models.Device {
		patch.Apply(&d)
		d.LastSeen = now
		return d
	})
	if !ok {
		return nil, ErrNotFound
	}
	return &device, nil
}

// DeleteDevice removes the device together with its usage and location
// history; alerts keep existing but lose their device reference.
func (s *MemStorage) DeleteDevice(id int) (bool, error) {
	if !s.devices.delete(id) {
		return false, nil
	}
	s.usage.deleteWhere(func(u models.DeviceUsage) bool { return u.DeviceID == id })
	s.locations.deleteWhere(func(l models.DeviceLocation) bool { return l.DeviceID == id })
	for _, alert := range s.alerts.values() {
		if alert.DeviceID != nil && *alert.DeviceID == id {
			s.alerts.update(alert.ID, func(a models.Alert) models.Alert {
				a.DeviceID = nil
				return a
			})
		}
	}
	return true, nil
}

func (s *MemStorage) RecordDeviceUsage(input *models.DeviceUsage) (*models.DeviceUsage, error) {
	if _, ok := s.devices.get(input.DeviceID); !ok {
		return nil, fmt.Errorf("device %d: %w", input.DeviceID, ErrNotFound)
	}
	normalizeNewUsage(input, time.Now())
	usage := s.usage.insert(func(id int) models.DeviceUsage {
		input.ID = id
		return *input
	})
	return &usage, nil
}

func (s *MemStorage) GetDeviceUsage(deviceID int, since time.Time) ([]models.DeviceUsage, error) {
	rows := common.Filter(s.usage.values(), func(u models.DeviceUsage) bool {
		return u.DeviceID == deviceID && !u.Date.Before(since)
	})
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
	return rows, nil
}

func (s *MemStorage) GetFleetUsage(since time.Time) ([]models.DeviceUsage, error) {
	rows := common.Filter(s.usage.values(), func(u models.DeviceUsage) bool {
		return !u.Date.Before(since)
	})
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
	return rows, nil
}

func (s *MemStorage) RecordDeviceLocation(input *models.DeviceLocation) (*models.DeviceLocation, error) {
	if _, ok := s.devices.get(input.DeviceID); !ok {
		return nil, fmt.Errorf("device %d: %w", input.DeviceID, ErrNotFound)
	}
	normalizeNewLocation(input, time.Now())
	location := s.locations.insert(func(id int) models.DeviceLocation {
		input.ID = id
		return *input
	})
	return &location, nil
}

func (s *MemStorage) GetDeviceLocations(deviceID int) ([]models.DeviceLocation, error) {
	rows := common.Filter(s.locations.values(), func(l models.DeviceLocation) bool {
		return l.DeviceID == deviceID
	})
	sort.Slice(rows, func(i, j int) bool { return rows[i].Timestamp.After(rows[j].Timestamp) })
	return rows, nil
}

func (s *MemStorage) GetLatestDeviceLocations() (map[int]models.DeviceLocation, error) {
	latest := make(map[int]models.DeviceLocation)
	for _, l := range s.locations.values() {
		prev, ok := latest[l.DeviceID]
		if !ok || l.Timestamp.After(prev.Timestamp) {
			latest[l.DeviceID] = l
		}
	}
	return latest, nil
}

func (s *MemStorage) GetAlerts() ([]models.Alert, error) {
	return s.alerts.values(), nil
}

func (s *MemStorage) GetAlert(id int) (*models.Alert, error) {
	alert, ok := s.alerts.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &alert, nil
}

func (s *MemStorage) CreateAlert(input *models.Alert) (*models.Alert, error) {
	normalizeNewAlert(input, time.Now())
	alert := s.alerts.insert(func(id int) models.Alert {
		input.ID = id
		return *input
	})
	return &alert, nil
}

func (s *MemStorage) UpdateAlert(id int, patch *models.AlertPatch) (*models.Alert, error) {
	now := time.Now()
	alert, ok := s.alerts.update(id, func(a models.Alert) models.Alert {
		resolveAlertPatch(patch, &a, now)
		patch.Apply(&a)
		return a
	})
	if !ok {
		return nil, ErrNotFound
	}
	return &alert, nil
}

func (s *MemStorage) DeleteAlert(id int) (bool, error) {
	return s.alerts.delete(id), nil
}

func (s *MemStorage) GetReports() ([]models.Report, error) {
	return s.reports.values(), nil
}

func (s *MemStorage) GetReport(id int) (*models.Report, error) {
	report, ok := s.reports.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &report, nil
}

func (s *MemStorage) CreateReport(input *models.Report) (*models.Report, error) {
	normalizeNewReport(input, time.Now())
	report := s.reports.insert(func(id int) models.Report {
		input.ID = id
		return *input
	})
	return &report, nil
}
