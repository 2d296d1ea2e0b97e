package controllers

import (
	"errors"
	"net/http"

	"github.com/JanHousa/DrinkWaterApp/services"

	"github.com/gin-gonic/gin"
)

type DeviceController struct {
	Devices *services.DeviceManager
}

func NewDeviceController(d *services.DeviceManager) *DeviceController {
	return &DeviceController{Devices: d}
}

// gate failures map to distinct statuses so the client can show the
// matching remediation step
func deviceErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrBluetoothUnsupported),
		errors.Is(err, services.ErrBluetoothDisabled),
		errors.Is(err, services.ErrBluetoothPermission):
		return http.StatusPreconditionFailed
	case errors.Is(err, services.ErrScanInProgress):
		return http.StatusConflict
	case errors.Is(err, services.ErrDeviceUnknown):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// GET /device/status
func (dc *DeviceController) Status(c *gin.Context) {
	c.JSON(http.StatusOK, dc.Devices.Status())
}

// POST /device/scan
func (dc *DeviceController) StartScan(c *gin.Context) {
	if err := dc.Devices.StartScan(); err != nil {
		c.JSON(deviceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusAccepted)
}

// DELETE /device/scan
func (dc *DeviceController) StopScan(c *gin.Context) {
	dc.Devices.StopScan()
	c.Status(http.StatusNoContent)
}

// GET /device/list
func (dc *DeviceController) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"scanning": dc.Devices.Scanning(),
		"devices":  dc.Devices.Devices(),
	})
}

type connectRequest struct {
	ID string `json:"id"`
}

// POST /device/connect
func (dc *DeviceController) Connect(c *gin.Context) {
	var req connectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	p, err := dc.Devices.Connect(req.ID)
	if err != nil {
		c.JSON(deviceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// POST /device/disconnect
func (dc *DeviceController) Disconnect(c *gin.Context) {
	dc.Devices.Disconnect()
	c.Status(http.StatusNoContent)
}

// GET /device/volume
func (dc *DeviceController) Volume(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"last_reported_volume": dc.Devices.LastReportedVolume(),
		"connected":            dc.Devices.Connected(),
	})
}

type volumeRequest struct {
	Volume float64 `json:"volume"`
}

// PUT /device/volume — the bottle's reported volume, set externally. It is
// tracked for display only and never merged into the ledger.
func (dc *DeviceController) SetVolume(c *gin.Context) {
	var req volumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	dc.Devices.SetReportedVolume(req.Volume)
	c.Status(http.StatusNoContent)
}
