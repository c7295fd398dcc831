package fleet

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"fleetwatch.dev/fleet-dashboard-service/pkg/common"
	"fleetwatch.dev/fleet-dashboard-service/pkg/models"
	"fleetwatch.dev/fleet-dashboard-service/pkg/store"
)

type DashboardStats struct {
	TotalDevices     int    `json:"totalDevices"`
	OnlineDevices    int    `json:"onlineDevices"`
	OfflineDevices   int    `json:"offlineDevices"`
	MonthlyUsage     string `json:"monthlyUsage"`
	UsagePercentage  int    `json:"usagePercentage"`
	ActiveAlerts     int    `json:"activeAlerts"`
	UsageAlerts      int    `json:"usageAlerts"`
	ConnectionAlerts int    `json:"connectionAlerts"`
	AvgSignal        int    `json:"avgSignal"`
}

type UsagePoint struct {
	Date  string  `json:"date"`
	Usage float64 `json:"usage"`
}

type StatusBreakdown struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
	Color  string `json:"color"`
}

type LocationSnapshot struct {
	ID          string  `json:"id"`
	DeviceID    string  `json:"deviceId"`
	DeviceLabel string  `json:"deviceLabel"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Status      string  `json:"status"`
	LastSeen    string  `json:"lastSeen"`
}

// Chart colors are the client theme's CSS custom properties; the server just
// echoes the tokens the dashboard expects.
var statusColors = map[models.DeviceStatus]string{
	models.DeviceStatusOnline:  "hsl(var(--success))",
	models.DeviceStatusOffline: "hsl(var(--destructive))",
	models.DeviceStatusError:   "hsl(var(--warning))",
}

func parseGB(decimal string) float64 {
	gb, err := strconv.ParseFloat(decimal, 64)
	if err != nil {
		return 0
	}
	return gb
}

func humanizeGB(gb float64) string {
	if gb >= 1000 {
		return fmt.Sprintf("%.1f TB", gb/1000)
	}
	return fmt.Sprintf("%.1f GB", gb)
}

func (f *Fleet) getDashboardStats() (*DashboardStats, error) {
	devices, err := f.Store.GetDevices(store.DeviceFilters{})
	if err != nil {
		return nil, err
	}
	alerts, err := f.Store.GetAlerts()
	if err != nil {
		return nil, err
	}
	monthRows, err := f.Store.GetFleetUsage(monthStart(time.Now()))
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{TotalDevices: len(devices)}

	signalSum := 0
	for _, device := range devices {
		switch device.Status {
		case models.DeviceStatusOnline:
			stats.OnlineDevices++
		case models.DeviceStatusOffline:
			stats.OfflineDevices++
		}
		if device.SignalStrength != nil {
			signalSum += *device.SignalStrength
		}
	}
	// Empty fleet averages to 0 by convention.
	if len(devices) > 0 {
		stats.AvgSignal = int(math.Round(float64(signalSum) / float64(len(devices))))
	}

	for _, alert := range alerts {
		if alert.Status != models.AlertStatusActive {
			continue
		}
		stats.ActiveAlerts++
		switch alert.Type {
		case models.AlertTypeUsage:
			stats.UsageAlerts++
		case models.AlertTypeConnectivity:
			stats.ConnectionAlerts++
		}
	}

	monthTotal := common.Reducer(monthRows, func(acc float64, row models.DeviceUsage) float64 {
		return acc + parseGB(row.DataUsage)
	}, 0.0)
	stats.MonthlyUsage = humanizeGB(monthTotal)

	if len(devices) > 0 {
		fleetQuota := f.quotaGB() * float64(len(devices))
		pct := int(math.Round(monthTotal / fleetQuota * 100))
		stats.UsagePercentage = min(max(pct, 0), 100)
	}

	return stats, nil
}

// getUsageAnalytics sums the stored usage rows per day across the fleet.
// Every day of the window is present, oldest first, with 0 for days without
// any rows.
func (f *Fleet) getUsageAnalytics(timeRange string) ([]UsagePoint, error) {
	days := TimeRangeDays(timeRange)
	since := timeRangeStart(time.Now(), days)

	rows, err := f.Store.GetFleetUsage(since)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]float64)
	for _, row := range rows {
		byDay[row.Date.Format("2006-01-02")] += parseGB(row.DataUsage)
	}

	points := make([]UsagePoint, 0, days)
	for i := 0; i < days; i++ {
		day := since.AddDate(0, 0, i).Format("2006-01-02")
		points = append(points, UsagePoint{
			Date:  day,
			Usage: math.Round(byDay[day]*100) / 100,
		})
	}
	return points, nil
}

// getDeviceAnalytics breaks the live device collection down by status. The
// time range is accepted for interface symmetry but the breakdown always
// reflects the current fleet.
func (f *Fleet) getDeviceAnalytics(timeRange string) ([]StatusBreakdown, error) {
	_ = TimeRangeDays(timeRange)

	devices, err := f.Store.GetDevices(store.DeviceFilters{})
	if err != nil {
		return nil, err
	}

	counts := make(map[models.DeviceStatus]int)
	for _, device := range devices {
		counts[device.Status]++
	}

	statuses := []models.DeviceStatus{
		models.DeviceStatusOnline,
		models.DeviceStatusOffline,
		models.DeviceStatusError,
	}
	breakdown := common.Mapper(statuses, func(status models.DeviceStatus) StatusBreakdown {
		return StatusBreakdown{
			Status: string(status),
			Count:  counts[status],
			Color:  statusColors[status],
		}
	})
	return breakdown, nil
}

// getLocationAnalytics returns one map pin per device that has at least one
// stored location snapshot, built from the newest snapshot.
func (f *Fleet) getLocationAnalytics() ([]LocationSnapshot, error) {
	devices, err := f.Store.GetDevices(store.DeviceFilters{})
	if err != nil {
		return nil, err
	}
	latest, err := f.Store.GetLatestDeviceLocations()
	if err != nil {
		return nil, err
	}

	snapshots := make([]LocationSnapshot, 0, len(devices))
	for _, device := range devices {
		location, ok := latest[device.ID]
		if !ok {
			continue
		}
		lat, err := strconv.ParseFloat(location.Latitude, 64)
		if err != nil {
			continue
		}
		lon, err := strconv.ParseFloat(location.Longitude, 64)
		if err != nil {
			continue
		}
		snapshots = append(snapshots, LocationSnapshot{
			ID:          strconv.Itoa(device.ID),
			DeviceID:    strconv.Itoa(device.ID),
			DeviceLabel: device.Label,
			Latitude:    lat,
			Longitude:   lon,
			Status:      string(device.Status),
			LastSeen:    device.LastSeen.Format(time.RFC3339),
		})
	}
	return snapshots, nil
}

type IAnalyticsImpl struct {
	fleet *Fleet
}

func (ia *IAnalyticsImpl) GetDashboardStats() (*DashboardStats, error) {
	return ia.fleet.getDashboardStats()
}

func (ia *IAnalyticsImpl) GetUsageAnalytics(timeRange string) ([]UsagePoint, error) {
	return ia.fleet.getUsageAnalytics(timeRange)
}

func (ia *IAnalyticsImpl) GetDeviceAnalytics(timeRange string) ([]StatusBreakdown, error) {
	return ia.fleet.getDeviceAnalytics(timeRange)
}

func (ia *IAnalyticsImpl) GetLocationAnalytics() ([]LocationSnapshot, error) {
	return ia.fleet.getLocationAnalytics()
}

func (f *Fleet) GetIAnalytics() IAnalytics {
	return &IAnalyticsImpl{fleet: f}
}
