package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"fleetwatch.dev/fleet-dashboard-service/pkg/models"
	"fleetwatch.dev/fleet-dashboard-service/pkg/store"
)

type DeviceCreateRequest struct {
	Label           string  `json:"label"`
	Imei            string  `json:"imei"`
	Status          string  `json:"status"`
	NetworkProvider string  `json:"networkProvider"`
	Location        *string `json:"location"`
	Country         *string `json:"country"`
	SignalStrength  *int    `json:"signalStrength"`
	BatteryLevel    *int    `json:"batteryLevel"`
	IpAddress       *string `json:"ipAddress"`
	AssignedUserID  *int    `json:"assignedUserId"`
}

var deviceCreateSchema = z.Struct(z.Shape{
	"Label":           z.String().Min(1).Required(),
	"Imei":            z.String().Min(1).Required(),
	"Status":          z.String().OneOf(models.DeviceStatuses),
	"NetworkProvider": z.String().Min(1).Required(),
	"Location":        z.Ptr(z.String()),
	"Country":         z.Ptr(z.String()),
	"SignalStrength":  z.Ptr(z.Int()),
	"BatteryLevel":    z.Ptr(z.Int()),
	"IpAddress":       z.Ptr(z.String()),
	"AssignedUserID":  z.Ptr(z.Int()),
})

func (rs *RestfulServer) ListDevices(c *gin.Context) {
	filters := store.DeviceFilters{
		Status:   c.Query("status"),
		Network:  c.Query("network"),
		Location: c.Query("location"),
		Usage:    c.Query("usage"),
	}

	devices, err := rs.Fleet.Device.ListDevices(filters)
	if err != nil {
		respondError(c, err, "Device not found", "Failed to fetch devices")
		return
	}

	c.JSON(http.StatusOK, devices)
}

func (rs *RestfulServer) GetDevice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	device, err := rs.Fleet.Device.GetDevice(id)
	if err != nil {
		respondError(c, err, "Device not found", "Failed to fetch device")
		return
	}

	c.JSON(http.StatusOK, device)
}

func (rs *RestfulServer) CreateDevice(c *gin.Context) {
	var req DeviceCreateRequest
	if errs := deviceCreateSchema.Parse(zhttp.Request(c.Request), &req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid device data",
			"errors":  z.Issues.SanitizeMap(errs),
		})
		return
	}

	device, err := rs.Fleet.Device.CreateDevice(&models.Device{
		Label:           req.Label,
		Imei:            req.Imei,
		Status:          models.DeviceStatus(req.Status),
		NetworkProvider: req.NetworkProvider,
		Location:        req.Location,
		Country:         req.Country,
		SignalStrength:  req.SignalStrength,
		BatteryLevel:    req.BatteryLevel,
		IpAddress:       req.IpAddress,
		AssignedUserID:  req.AssignedUserID,
	})
	if err != nil {
		respondError(c, err, "Device not found", "Failed to create device")
		return
	}

	c.JSON(http.StatusCreated, device)
}

// UpdateDevice takes an unvalidated partial payload; fields absent from the
// body keep their stored values.
func (rs *RestfulServer) UpdateDevice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var patch models.DevicePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload"})
		return
	}

	device, err := rs.Fleet.Device.UpdateDevice(id, &patch)
	if err != nil {
		respondError(c, err, "Device not found", "Failed to update device")
		return
	}

	c.JSON(http.StatusOK, device)
}

func (rs *RestfulServer) DeleteDevice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	removed, err := rs.Fleet.Device.DeleteDevice(id)
	if err != nil {
		respondError(c, err, "Device not found", "Failed to delete device")
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"message": "Device not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

type UsageRecordRequest struct {
	Date      time.Time `json:"date"`
	DataUsage string    `json:"dataUsage"`
	Cost      *string   `json:"cost"`
}

var usageRecordSchema = z.Struct(z.Shape{
	"Date":      z.Time(),
	"DataUsage": z.String().Min(1).Required(),
	"Cost":      z.Ptr(z.String()),
})

func (rs *RestfulServer) GetDeviceUsage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	usage, err := rs.Fleet.Telemetry.GetDeviceUsage(id, c.Param("timeRange"))
	if err != nil {
		respondError(c, err, "Device not found", "Failed to fetch device usage")
		return
	}

	c.JSON(http.StatusOK, usage)
}

func (rs *RestfulServer) RecordDeviceUsage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UsageRecordRequest
	if errs := usageRecordSchema.Parse(zhttp.Request(c.Request), &req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid usage data",
			"errors":  z.Issues.SanitizeMap(errs),
		})
		return
	}

	usage, err := rs.Fleet.Telemetry.RecordUsage(id, &models.DeviceUsage{
		Date:      req.Date,
		DataUsage: req.DataUsage,
		Cost:      req.Cost,
	})
	if err != nil {
		respondError(c, err, "Device not found", "Failed to record device usage")
		return
	}

	c.JSON(http.StatusCreated, usage)
}

type LocationRecordRequest struct {
	Latitude  string    `json:"latitude"`
	Longitude string    `json:"longitude"`
	Accuracy  *int      `json:"accuracy"`
	Timestamp time.Time `json:"timestamp"`
}

var locationRecordSchema = z.Struct(z.Shape{
	"Latitude":  z.String().Min(1).Required(),
	"Longitude": z.String().Min(1).Required(),
	"Accuracy":  z.Ptr(z.Int()),
	"Timestamp": z.Time(),
})

func (rs *RestfulServer) GetDeviceLocations(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	locations, err := rs.Fleet.Telemetry.GetDeviceLocations(id)
	if err != nil {
		respondError(c, err, "Device not found", "Failed to fetch device locations")
		return
	}

	c.JSON(http.StatusOK, locations)
}

func (rs *RestfulServer) RecordDeviceLocation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req LocationRecordRequest
	if errs := locationRecordSchema.Parse(zhttp.Request(c.Request), &req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid location data",
			"errors":  z.Issues.SanitizeMap(errs),
		})
		return
	}

	location, err := rs.Fleet.Telemetry.RecordLocation(id, &models.DeviceLocation{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Accuracy:  req.Accuracy,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		respondError(c, err, "Device not found", "Failed to record device location")
		return
	}

	c.JSON(http.StatusCreated, location)
}
