package models

import "time"

type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

type DeviceStatus string

const (
	DeviceStatusOnline  DeviceStatus = "online"
	DeviceStatusOffline DeviceStatus = "offline"
	DeviceStatusError   DeviceStatus = "error"
)

type AlertType string

const (
	AlertTypeUsage        AlertType = "usage"
	AlertTypeConnectivity AlertType = "connectivity"
	AlertTypeLocation     AlertType = "location"
	AlertTypeSystem       AlertType = "system"
)

type AlertSeverity string

const (
	AlertSeverityLow      AlertSeverity = "low"
	AlertSeverityMedium   AlertSeverity = "medium"
	AlertSeverityHigh     AlertSeverity = "high"
	AlertSeverityCritical AlertSeverity = "critical"
)

type AlertStatus string

const (
	AlertStatusActive    AlertStatus = "active"
	AlertStatusResolved  AlertStatus = "resolved"
	AlertStatusDismissed AlertStatus = "dismissed"
)

type ReportType string

const (
	ReportTypeUsage       ReportType = "usage"
	ReportTypePerformance ReportType = "performance"
	ReportTypeLocation    ReportType = "location"
	ReportTypeCustom      ReportType = "custom"
)

type ReportFormat string

const (
	ReportFormatPdf   ReportFormat = "pdf"
	ReportFormatExcel ReportFormat = "excel"
	ReportFormatCsv   ReportFormat = "csv"
)

type ReportStatus string

const (
	ReportStatusPending   ReportStatus = "pending"
	ReportStatusCompleted ReportStatus = "completed"
	ReportStatusFailed    ReportStatus = "failed"
)

// Allowed enum values for request validation, in declaration order.
var (
	UserRoles      = []string{string(UserRoleAdmin), string(UserRoleUser)}
	UserStatuses   = []string{string(UserStatusActive), string(UserStatusInactive)}
	DeviceStatuses = []string{string(DeviceStatusOnline), string(DeviceStatusOffline), string(DeviceStatusError)}
	AlertTypes     = []string{string(AlertTypeUsage), string(AlertTypeConnectivity), string(AlertTypeLocation), string(AlertTypeSystem)}
	AlertSeverities = []string{
		string(AlertSeverityLow), string(AlertSeverityMedium),
		string(AlertSeverityHigh), string(AlertSeverityCritical),
	}
	AlertStatuses = []string{string(AlertStatusActive), string(AlertStatusResolved), string(AlertStatusDismissed)}
	ReportTypes    = []string{string(ReportTypeUsage), string(ReportTypePerformance), string(ReportTypeLocation), string(ReportTypeCustom)}
	ReportFormats  = []string{string(ReportFormatPdf), string(ReportFormatExcel), string(ReportFormatCsv)}
	ReportStatuses = []string{string(ReportStatusPending), string(ReportStatusCompleted), string(ReportStatusFailed)}
)

type User struct {
	ID        int        `gorm:"primaryKey" json:"id"`
	Username  string     `gorm:"uniqueIndex" json:"username"`
	Email     string     `gorm:"uniqueIndex" json:"email"`
	Password  string     `json:"-"`
	Role      UserRole   `gorm:"type:varchar(10)" json:"role"`
	Status    UserStatus `gorm:"type:varchar(10)" json:"status"`
	LastLogin *time.Time `json:"lastLogin"`
	CreatedAt time.Time  `json:"createdAt"`
}

type Device struct {
	ID              int          `gorm:"primaryKey" json:"id"`
	Label           string       `json:"label"`
	Imei            string       `gorm:"uniqueIndex" json:"imei"`
	Status          DeviceStatus `gorm:"type:varchar(10)" json:"status"`
	NetworkProvider string       `json:"networkProvider"`
	Location        *string      `json:"location"`
	Country         *string      `json:"country"`
	SignalStrength  *int         `json:"signalStrength"`
	BatteryLevel    *int         `json:"batteryLevel"`
	IpAddress       *string      `json:"ipAddress"`
	LastSeen        time.Time    `json:"lastSeen"`
	AssignedUserID  *int         `json:"assignedUserId"`
	CreatedAt       time.Time    `json:"createdAt"`
}

// DataUsage and Cost are decimal strings (GB / currency) to avoid float
// rounding on the wire, matching the dashboard contract.
type DeviceUsage struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	DeviceID  int       `gorm:"index" json:"deviceId"`
	Date      time.Time `json:"date"`
	DataUsage string    `json:"dataUsage"`
	Cost      *string   `json:"cost"`
	CreatedAt time.Time `json:"createdAt"`
}

type DeviceLocation struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	DeviceID  int       `gorm:"index" json:"deviceId"`
	Latitude  string    `json:"latitude"`
	Longitude string    `json:"longitude"`
	Accuracy  *int      `json:"accuracy"`
	Timestamp time.Time `json:"timestamp"`
	CreatedAt time.Time `json:"createdAt"`
}

type Alert struct {
	ID                int            `gorm:"primaryKey" json:"id"`
	Type              AlertType      `gorm:"type:varchar(20)" json:"type"`
	Title             string         `json:"title"`
	Message           string         `json:"message"`
	Severity          AlertSeverity  `gorm:"type:varchar(10)" json:"severity"`
	Status            AlertStatus    `gorm:"type:varchar(10)" json:"status"`
	DeviceID          *int           `gorm:"index" json:"deviceId"`
	TriggerConditions map[string]any `gorm:"serializer:json" json:"triggerConditions"`
	CreatedAt         time.Time      `json:"createdAt"`
	ResolvedAt        *time.Time     `json:"resolvedAt"`
}

type Report struct {
	ID          int            `gorm:"primaryKey" json:"id"`
	Name        string         `json:"name"`
	Type        ReportType     `gorm:"type:varchar(20)" json:"type"`
	Format      ReportFormat   `gorm:"type:varchar(10)" json:"format"`
	Parameters  map[string]any `gorm:"serializer:json" json:"parameters"`
	GeneratedBy int            `json:"generatedBy"`
	FilePath    *string        `json:"filePath"`
	Status      ReportStatus   `gorm:"type:varchar(10)" json:"status"`
	CreatedAt   time.Time      `json:"createdAt"`
	CompletedAt *time.Time     `json:"completedAt"`
}
