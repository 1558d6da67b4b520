package models

import "time"

// Device is a registered device entity together with its settings record.
// The record is replaced wholesale on reconfiguration; UpdatedAt tracks the
// last replacement.
type Device struct {
	Name      string         `json:"name"`
	Settings  DeviceSettings `json:"settings"`
	UpdatedAt time.Time      `json:"updated_at"`
}
