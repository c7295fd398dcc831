package store

import (
	"time"

	"fleetwatch.dev/fleet-dashboard-service/pkg/models"
)

// The normalize helpers apply creation-time defaults so that both backends
// store identical records for the same input. They mutate the input in place;
// the id is assigned by the backend.

func normalizeNewUser(u *models.User, now time.Time) {
	if u.Role == "" {
		u.Role = models.UserRoleUser
	}
	if u.Status == "" {
		u.Status = models.UserStatusActive
	}
	u.LastLogin = nil
	u.CreatedAt = now
}

func normalizeNewDevice(d *models.Device, now time.Time) {
	if d.Status == "" {
		d.Status = models.DeviceStatusOffline
	}
	if d.SignalStrength == nil {
		zero := 0
		d.SignalStrength = &zero
	}
	d.LastSeen = now
	d.CreatedAt = now
}

func normalizeNewUsage(u *models.DeviceUsage, now time.Time) {
	if u.Date.IsZero() {
		u.Date = now
	}
	u.CreatedAt = now
}

func normalizeNewLocation(l *models.DeviceLocation, now time.Time) {
	if l.Timestamp.IsZero() {
		l.Timestamp = now
	}
	l.CreatedAt = now
}

func normalizeNewAlert(a *models.Alert, now time.Time) {
	if a.Status == "" {
		a.Status = models.AlertStatusActive
	}
	a.ResolvedAt = nil
	a.CreatedAt = now
}

func normalizeNewReport(r *models.Report, now time.Time) {
	if r.Status == "" {
		r.Status = models.ReportStatusPending
	}
	r.CompletedAt = nil
	r.CreatedAt = now
}

// resolveAlertPatch stamps resolvedAt when a patch moves an alert to
// resolved without supplying its own timestamp.
func resolveAlertPatch(patch *models.AlertPatch, prev *models.Alert, now time.Time) {
	if patch.Status == nil || *patch.Status != models.AlertStatusResolved {
		return
	}
	if patch.ResolvedAt == nil && prev.ResolvedAt == nil {
		patch.ResolvedAt = &now
	}
}
