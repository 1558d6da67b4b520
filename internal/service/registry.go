package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"settings_hub/internal/logger"
	"settings_hub/internal/metrics"
	"settings_hub/internal/models"
	"settings_hub/internal/repository"
)

// Audit event types.
const (
	EventRegister    = "REGISTER"
	EventReconfigure = "RECONFIGURE"
	EventRemove      = "REMOVE"
)

// Domain errors surfaced to the HTTP layer.
var (
	ErrDeviceExists   = errors.New("device is already registered")
	ErrDeviceNotFound = errors.New("device is not registered")
	ErrEmptyName      = errors.New("device name is required")
)

type RegistryService struct {
	settingsRepo repository.SettingsRepo
	eventRepo    repository.EventRepo
	log          *logger.Logger
}

func NewRegistryService(settingsRepo repository.SettingsRepo, eventRepo repository.EventRepo, log *logger.Logger) *RegistryService {
	return &RegistryService{settingsRepo: settingsRepo, eventRepo: eventRepo, log: log}
}

// Register stores a new record under name. The record itself is taken
// verbatim; only the registration name is checked.
func (s *RegistryService) Register(ctx context.Context, name string, settings models.DeviceSettings) (models.Device, error) {
	if name == "" {
		return models.Device{}, ErrEmptyName
	}
	existing, err := s.settingsRepo.Get(ctx, name)
	if err != nil {
		return models.Device{}, err
	}
	if existing.Name != "" {
		return models.Device{}, ErrDeviceExists
	}

	now := time.Now().UTC()
	dev := models.Device{Name: name, Settings: settings, UpdatedAt: now}
	if err := s.settingsRepo.Save(ctx, dev); err != nil {
		return models.Device{}, err
	}

	s.appendEvent(ctx, now, EventRegister, name, "Device registered", map[string]any{
		"settings": settings.String(),
	})
	return dev, nil
}

// Get returns the stored record for name.
func (s *RegistryService) Get(ctx context.Context, name string) (models.Device, error) {
	dev, err := s.settingsRepo.Get(ctx, name)
	if err != nil {
		return models.Device{}, err
	}
	if dev.Name == "" {
		return models.Device{}, ErrDeviceNotFound
	}
	return dev, nil
}

// List returns all stored records.
func (s *RegistryService) List(ctx context.Context) ([]models.Device, error) {
	devices, err := s.settingsRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	metrics.RegisteredDevices.Set(float64(len(devices)))
	return devices, nil
}

// Replace swaps the stored record wholesale. The previous record is
// discarded; there is no field-level merge.
func (s *RegistryService) Replace(ctx context.Context, name string, settings models.DeviceSettings) (models.Device, error) {
	old, err := s.settingsRepo.Get(ctx, name)
	if err != nil {
		return models.Device{}, err
	}
	if old.Name == "" {
		return models.Device{}, ErrDeviceNotFound
	}

	now := time.Now().UTC()
	dev := models.Device{Name: name, Settings: settings, UpdatedAt: now}
	if err := s.settingsRepo.Save(ctx, dev); err != nil {
		return models.Device{}, err
	}

	s.appendEvent(ctx, now, EventReconfigure, name, "Settings replaced", map[string]any{
		"previous": old.Settings.String(),
		"current":  settings.String(),
	})
	return dev, nil
}

// Remove deletes the record for name.
func (s *RegistryService) Remove(ctx context.Context, name string) error {
	existed, err := s.settingsRepo.Delete(ctx, name)
	if err != nil {
		return err
	}
	if !existed {
		return ErrDeviceNotFound
	}

	s.appendEvent(ctx, time.Now().UTC(), EventRemove, name, "Device removed", nil)
	return nil
}

// appendEvent writes the audit entry and bumps the counter. Audit failures
// do not roll back the settings change; they are logged and the counter
// stays put.
func (s *RegistryService) appendEvent(ctx context.Context, now time.Time, typ, device, description string, meta map[string]any) {
	err := s.eventRepo.Append(ctx, models.SettingsEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  now,
		Type:        typ,
		Device:      device,
		Description: description,
		Metadata:    meta,
	})
	if err != nil {
		if s.log != nil {
			s.log.Errorw("audit_append_failed", "err", err, "type", typ, "device", device)
		}
		return
	}
	metrics.SettingsEvents.WithLabelValues(typ).Inc()
}
