package models

import "time"

// Patch structs carry partial updates: a nil field was absent from the
// payload and leaves the stored value untouched.

type DevicePatch struct {
	Label           *string       `json:"label"`
	Imei            *string       `json:"imei"`
	Status          *DeviceStatus `json:"status"`
	NetworkProvider *string       `json:"networkProvider"`
	Location        *string       `json:"location"`
	Country         *string       `json:"country"`
	SignalStrength  *int          `json:"signalStrength"`
	BatteryLevel    *int          `json:"batteryLevel"`
	IpAddress       *string       `json:"ipAddress"`
	AssignedUserID  *int          `json:"assignedUserId"`
}

func (p *DevicePatch) Apply(d *Device) {
	if p.Label != nil {
		d.Label = *p.Label
	}
	if p.Imei != nil {
		d.Imei = *p.Imei
	}
	if p.Status != nil {
		d.Status = *p.Status
	}
	if p.NetworkProvider != nil {
		d.NetworkProvider = *p.NetworkProvider
	}
	if p.Location != nil {
		d.Location = p.Location
	}
	if p.Country != nil {
		d.Country = p.Country
	}
	if p.SignalStrength != nil {
		d.SignalStrength = p.SignalStrength
	}
	if p.BatteryLevel != nil {
		d.BatteryLevel = p.BatteryLevel
	}
	if p.IpAddress != nil {
		d.IpAddress = p.IpAddress
	}
	if p.AssignedUserID != nil {
		d.AssignedUserID = p.AssignedUserID
	}
}

type AlertPatch struct {
	Type              *AlertType      `json:"type"`
	Title             *string         `json:"title"`
	Message           *string         `json:"message"`
	Severity          *AlertSeverity  `json:"severity"`
	Status            *AlertStatus    `json:"status"`
	DeviceID          *int            `json:"deviceId"`
	TriggerConditions *map[string]any `json:"triggerConditions"`
	ResolvedAt        *time.Time      `json:"resolvedAt"`
}

func (p *AlertPatch) Apply(a *Alert) {
	if p.Type != nil {
		a.Type = *p.Type
	}
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Message != nil {
		a.Message = *p.Message
	}
	if p.Severity != nil {
		a.Severity = *p.Severity
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.DeviceID != nil {
		a.DeviceID = p.DeviceID
	}
	if p.TriggerConditions != nil {
		a.TriggerConditions = *p.TriggerConditions
	}
	if p.ResolvedAt != nil {
		a.ResolvedAt = p.ResolvedAt
	}
}

type UserPatch struct {
	Email     *string     `json:"email"`
	Password  *string     `json:"-"`
	Role      *UserRole   `json:"role"`
	Status    *UserStatus `json:"status"`
	LastLogin *time.Time  `json:"lastLogin"`
}

func (p *UserPatch) Apply(u *User) {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Status != nil {
		u.Status = *p.Status
	}
	if p.LastLogin != nil {
		u.LastLogin = p.LastLogin
	}
}
