package models

import "fmt"

// Defaults substituted by the binder when a field is left unset.
const (
	DefaultConsumptionPollSeconds = 86400
	DefaultLocalPollSeconds       = 60
	DefaultButtonResetTimeoutMs   = 500
	DefaultMotionResetTimeoutMs   = 60000
)

// DeviceSettings is the per-device configuration record. It is a passive
// value object: whatever the binder puts in is kept verbatim, no field is
// range-checked and nothing here can fail.
type DeviceSettings struct {
	DeviceID               string `json:"device_id"`
	ConsumptionPollSeconds int    `json:"consumption_poll_seconds"` // energy-consumption refresh period
	LocalPollSeconds       int    `json:"local_poll_seconds"`       // local-network status refresh period
	ConsumptionEnabled     bool   `json:"consumption_enabled"`
	LocalEnabled           bool   `json:"local_enabled"`
	ButtonResetTimeoutMs   int    `json:"button_reset_timeout_ms"` // debounce window for button devices
	MotionResetTimeoutMs   int    `json:"motion_reset_timeout_ms"` // reset window for motion sensors
}

// DefaultDeviceSettings returns a record with every field at its default.
func DefaultDeviceSettings() DeviceSettings {
	return DeviceSettings{
		ConsumptionPollSeconds: DefaultConsumptionPollSeconds,
		LocalPollSeconds:       DefaultLocalPollSeconds,
		ButtonResetTimeoutMs:   DefaultButtonResetTimeoutMs,
		MotionResetTimeoutMs:   DefaultMotionResetTimeoutMs,
	}
}

// String renders the record for diagnostic logging. The field order is fixed
// and records with equal fields render identical strings.
func (s DeviceSettings) String() string {
	return fmt.Sprintf(
		"[deviceid=%s, localPoll=%d, consumptionPoll=%d, local=%t, consumption=%t, buttonResetTimeout=%d, motionResetTimeout=%d]",
		s.DeviceID,
		s.LocalPollSeconds,
		s.ConsumptionPollSeconds,
		s.LocalEnabled,
		s.ConsumptionEnabled,
		s.ButtonResetTimeoutMs,
		s.MotionResetTimeoutMs,
	)
}
