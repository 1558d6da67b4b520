package repository

import (
	"context"
	"database/sql"
	"time"

	"settings_hub/internal/models"
	"settings_hub/internal/repository/db"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

// SettingsRepo owns the per-device settings rows. Save replaces the record
// wholesale; Get returns a zero-value Device when the name is unknown.
type SettingsRepo interface {
	Save(ctx context.Context, d models.Device) error
	Get(ctx context.Context, name string) (models.Device, error)
	List(ctx context.Context) ([]models.Device, error)
	Delete(ctx context.Context, name string) (bool, error)
}

type EventRepo interface {
	Append(ctx context.Context, e models.SettingsEvent) error
	List(ctx context.Context, from, to time.Time, typ, device string) ([]models.SettingsEvent, error)
}

type Repository struct {
	SettingsRepo SettingsRepo
	EventRepo    EventRepo
	Auth         Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		SettingsRepo: NewSettingsSQLite(db),
		EventRepo:    NewEventSQLite(db),
		Auth:         NewUserRepository(db),
	}
}

// InitDB re-exports the sqlite bootstrap for callers wiring the repository.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}
