package service

import "time"

// LogFilter narrows audit-log queries by time range, event type and device.
type LogFilter struct {
	From   time.Time // inclusive; zero means no lower bound
	To     time.Time // inclusive; zero means no upper bound
	Type   string    // "", "REGISTER", "RECONFIGURE", "REMOVE"
	Device string    // registration name; "" matches all
}

// DeviceDiagnostic pairs a registration name with its rendered record.
type DeviceDiagnostic struct {
	Name       string `json:"name"`
	Diagnostic string `json:"diagnostic"`
}
