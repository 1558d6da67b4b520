package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"settings_hub/internal/models"
)

type SettingsSQLite struct {
	db *sql.DB
}

func NewSettingsSQLite(db *sql.DB) *SettingsSQLite {
	return &SettingsSQLite{db: db}
}

// Ensure implementation of SettingsRepo interface at compile time.
var _ SettingsRepo = (*SettingsSQLite)(nil)

const (
	upsertSettingsSQL = `
		INSERT INTO device_settings (name, device_id, consumption_poll_s, local_poll_s, consumption_enabled, local_enabled, button_reset_ms, motion_reset_ms, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			device_id=excluded.device_id,
			consumption_poll_s=excluded.consumption_poll_s,
			local_poll_s=excluded.local_poll_s,
			consumption_enabled=excluded.consumption_enabled,
			local_enabled=excluded.local_enabled,
			button_reset_ms=excluded.button_reset_ms,
			motion_reset_ms=excluded.motion_reset_ms,
			updated_at=excluded.updated_at
	`

	selectSettingsSQL = `
		SELECT name, device_id, consumption_poll_s, local_poll_s, consumption_enabled, local_enabled, button_reset_ms, motion_reset_ms, updated_at
		FROM device_settings WHERE name=?
	`

	listSettingsSQL = `
		SELECT name, device_id, consumption_poll_s, local_poll_s, consumption_enabled, local_enabled, button_reset_ms, motion_reset_ms, updated_at
		FROM device_settings ORDER BY name ASC
	`

	deleteSettingsSQL = `DELETE FROM device_settings WHERE name=?`
)

// Save inserts or replaces the row for d.Name wholesale.
func (r *SettingsSQLite) Save(ctx context.Context, d models.Device) error {
	// ensure UpdatedAt is always persisted as UTC; set if zero
	tsUTC := d.UpdatedAt
	if tsUTC.IsZero() {
		tsUTC = time.Now().UTC()
	} else {
		tsUTC = tsUTC.UTC()
	}

	_, err := r.db.ExecContext(ctx, upsertSettingsSQL,
		d.Name,
		d.Settings.DeviceID,
		d.Settings.ConsumptionPollSeconds,
		d.Settings.LocalPollSeconds,
		d.Settings.ConsumptionEnabled,
		d.Settings.LocalEnabled,
		d.Settings.ButtonResetTimeoutMs,
		d.Settings.MotionResetTimeoutMs,
		tsUTC,
	)
	return err
}

// Get fetches one device row. Returns a zero-value Device when absent.
func (r *SettingsSQLite) Get(ctx context.Context, name string) (models.Device, error) {
	row := r.db.QueryRowContext(ctx, selectSettingsSQL, name)

	d, err := scanDevice(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Device{}, nil // not registered
		}
		return models.Device{}, err
	}
	return d, nil
}

// List returns all registered devices ordered by name.
func (r *SettingsSQLite) List(ctx context.Context) ([]models.Device, error) {
	rows, err := r.db.QueryContext(ctx, listSettingsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Device, 0, 16)
	for rows.Next() {
		d, err := scanDevice(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the row and reports whether it existed.
func (r *SettingsSQLite) Delete(ctx context.Context, name string) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteSettingsSQL, name)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// scanDevice maps one row into a Device, normalizing UpdatedAt to UTC.
func scanDevice(scan func(dest ...any) error) (models.Device, error) {
	var d models.Device
	if err := scan(
		&d.Name,
		&d.Settings.DeviceID,
		&d.Settings.ConsumptionPollSeconds,
		&d.Settings.LocalPollSeconds,
		&d.Settings.ConsumptionEnabled,
		&d.Settings.LocalEnabled,
		&d.Settings.ButtonResetTimeoutMs,
		&d.Settings.MotionResetTimeoutMs,
		&d.UpdatedAt,
	); err != nil {
		return models.Device{}, err
	}
	d.UpdatedAt = d.UpdatedAt.UTC()
	return d, nil
}
