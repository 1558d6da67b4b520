package service

import (
	"context"
	"time"

	"settings_hub/internal/logger"
	"settings_hub/internal/models"
	"settings_hub/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Registry owns the device settings records: registration, wholesale
// replacement, lookup and removal.
type Registry interface {
	Register(ctx context.Context, name string, s models.DeviceSettings) (models.Device, error)
	Get(ctx context.Context, name string) (models.Device, error)
	List(ctx context.Context) ([]models.Device, error)
	Replace(ctx context.Context, name string, s models.DeviceSettings) (models.Device, error)
	Remove(ctx context.Context, name string) error
}

// Diagnostics exposes the fixed-order diagnostic rendering of stored records.
type Diagnostics interface {
	Render(ctx context.Context, name string) (string, error)
	RenderAll(ctx context.Context) ([]DeviceDiagnostic, error)
}

// EventLog exposes the append-only audit log with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.SettingsEvent, error)
}

// Reporter runs the background loop that periodically logs every record's
// diagnostic string. Stop via context cancellation in main() for graceful
// shutdown.
type Reporter interface {
	Run(ctx context.Context, tick time.Duration)
}

// Service aggregates all sub-services.
type Service struct {
	Registry
	Diagnostics
	EventLog
	Reporter
	Authorization
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, log *logger.Logger, signingKey string) *Service {
	return &Service{
		Registry:      NewRegistryService(repos.SettingsRepo, repos.EventRepo, log),
		Diagnostics:   NewDiagnosticsService(repos.SettingsRepo),
		EventLog:      NewEventLogService(repos.EventRepo),
		Reporter:      NewReporterService(repos.SettingsRepo, log),
		Authorization: NewAuthService(repos.Auth, signingKey),
	}
}
