package handlers

import (
	"errors"
	"net/http"

	"settings_hub/internal/models"
	"settings_hub/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK         = "ok"
	statusRegistered = "registered"
	statusReplaced   = "replaced"
	statusRemoved    = "removed"

	errRegisterDevice = "failed to register device"
	errReplaceDevice  = "failed to replace settings"
	errRemoveDevice   = "failed to remove device"
	errGetDevice      = "failed to load device"
	errListDevices    = "failed to list devices"
	errDiagnostics    = "failed to render diagnostics"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// statusForRegistryError maps registry domain errors onto HTTP codes.
func statusForRegistryError(err error) int {
	switch {
	case errors.Is(err, service.ErrDeviceNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrDeviceExists):
		return http.StatusConflict
	case errors.Is(err, service.ErrEmptyName):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// settingsPayload is the wire form of a settings record. Pointer fields make
// absent values distinguishable from explicit zeroes, so the binder can
// substitute record defaults without clobbering what the caller sent.
type settingsPayload struct {
	DeviceID               *string `json:"device_id"`
	ConsumptionPollSeconds *int    `json:"consumption_poll_seconds"`
	LocalPollSeconds       *int    `json:"local_poll_seconds"`
	ConsumptionEnabled     *bool   `json:"consumption_enabled"`
	LocalEnabled           *bool   `json:"local_enabled"`
	ButtonResetTimeoutMs   *int    `json:"button_reset_timeout_ms"`
	MotionResetTimeoutMs   *int    `json:"motion_reset_timeout_ms"`
}

// toSettings binds the payload onto a defaulted record. No value is
// range-checked; whatever the caller sent is kept verbatim.
func (p settingsPayload) toSettings() models.DeviceSettings {
	s := models.DefaultDeviceSettings()
	if p.DeviceID != nil {
		s.DeviceID = *p.DeviceID
	}
	if p.ConsumptionPollSeconds != nil {
		s.ConsumptionPollSeconds = *p.ConsumptionPollSeconds
	}
	if p.LocalPollSeconds != nil {
		s.LocalPollSeconds = *p.LocalPollSeconds
	}
	if p.ConsumptionEnabled != nil {
		s.ConsumptionEnabled = *p.ConsumptionEnabled
	}
	if p.LocalEnabled != nil {
		s.LocalEnabled = *p.LocalEnabled
	}
	if p.ButtonResetTimeoutMs != nil {
		s.ButtonResetTimeoutMs = *p.ButtonResetTimeoutMs
	}
	if p.MotionResetTimeoutMs != nil {
		s.MotionResetTimeoutMs = *p.MotionResetTimeoutMs
	}
	return s
}

// Request DTO for registering a device.
type registerDeviceRequest struct {
	Name     string          `json:"name" binding:"required"`
	Settings settingsPayload `json:"settings"`
}

// RegisterDeviceRequest is an exported model for Swagger docs of the register payload.
type RegisterDeviceRequest struct {
	// Registration name, unique per device entity
	Name string `json:"name" example:"hallway-motion"`
	// Settings record; absent fields fall back to defaults
	Settings map[string]interface{} `json:"settings,omitempty"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Register device
// @Description  Stores a new settings record; absent fields get defaults
// @Tags         devices
// @Accept       json
// @Produce      json
// @Param        body  body   RegisterDeviceRequest  true  "Device payload"
// @Success      200   {object}  map[string]interface{}  "status, device"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/devices [post]
// @Security     BearerAuth
func (h *Handler) registerDevice(c *gin.Context) {
	var req registerDeviceRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	ctx := c.Request.Context()
	dev, err := h.services.Registry.Register(ctx, req.Name, req.Settings.toSettings())
	if err != nil {
		h.logAndJSONError(c, statusForRegistryError(err), errRegisterDevice, "device_register_failed", err, "name", req.Name)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusRegistered, "device": dev})
}

// @Summary      List devices
// @Tags         devices
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, devices"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/devices [get]
// @Security     BearerAuth
func (h *Handler) listDevices(c *gin.Context) {
	devices, err := h.services.Registry.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListDevices, "device_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(devices), "devices": devices})
}

// @Summary      Get device settings
// @Tags         devices
// @Produce      json
// @Param        name  path  string  true  "Registration name"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/devices/{name} [get]
// @Security     BearerAuth
func (h *Handler) getDevice(c *gin.Context) {
	dev, err := h.services.Registry.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.logAndJSONError(c, statusForRegistryError(err), errGetDevice, "device_get_failed", err, "name", c.Param("name"))
		return
	}
	c.JSON(http.StatusOK, dev)
}

// @Summary      Replace device settings
// @Description  Replaces the stored record wholesale; absent fields get defaults
// @Tags         devices
// @Accept       json
// @Produce      json
// @Param        name  path  string           true  "Registration name"
// @Param        body  body  map[string]interface{}  true  "Settings payload"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/devices/{name} [put]
// @Security     BearerAuth
func (h *Handler) replaceDevice(c *gin.Context) {
	var payload settingsPayload
	if ok := h.bindJSONOrBadRequest(c, &payload); !ok {
		return
	}

	dev, err := h.services.Registry.Replace(c.Request.Context(), c.Param("name"), payload.toSettings())
	if err != nil {
		h.logAndJSONError(c, statusForRegistryError(err), errReplaceDevice, "device_replace_failed", err, "name", c.Param("name"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusReplaced, "device": dev})
}

// @Summary      Remove device
// @Tags         devices
// @Produce      json
// @Param        name  path  string  true  "Registration name"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/devices/{name} [delete]
// @Security     BearerAuth
func (h *Handler) removeDevice(c *gin.Context) {
	if err := h.services.Registry.Remove(c.Request.Context(), c.Param("name")); err != nil {
		h.logAndJSONError(c, statusForRegistryError(err), errRemoveDevice, "device_remove_failed", err, "name", c.Param("name"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusRemoved})
}

// @Summary      Device diagnostics
// @Description  Fixed-order rendering of the stored settings record
// @Tags         diagnostics
// @Produce      json
// @Param        name  path  string  true  "Registration name"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/devices/{name}/diagnostics [get]
// @Security     BearerAuth
func (h *Handler) deviceDiagnostics(c *gin.Context) {
	name := c.Param("name")
	out, err := h.services.Diagnostics.Render(c.Request.Context(), name)
	if err != nil {
		h.logAndJSONError(c, statusForRegistryError(err), errDiagnostics, "device_diagnostics_failed", err, "name", name)
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": name, "diagnostic": out})
}

// @Summary      All diagnostics
// @Tags         diagnostics
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, diagnostics"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/diagnostics [get]
// @Security     BearerAuth
func (h *Handler) allDiagnostics(c *gin.Context) {
	out, err := h.services.Diagnostics.RenderAll(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errDiagnostics, "diagnostics_all_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(out), "diagnostics": out})
}
