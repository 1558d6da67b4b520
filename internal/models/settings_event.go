package models

import "time"

// SettingsEvent is a single audit-log entry.
type SettingsEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`   // REGISTER | RECONFIGURE | REMOVE
	Device      string    `json:"device"` // registration name
	Description string    `json:"description"`
	Metadata    any       `json:"metadata,omitempty"`
}
