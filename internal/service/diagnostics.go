package service

import (
	"context"

	"settings_hub/internal/repository"
)

type DiagnosticsService struct {
	settingsRepo repository.SettingsRepo
}

func NewDiagnosticsService(settingsRepo repository.SettingsRepo) *DiagnosticsService {
	return &DiagnosticsService{settingsRepo: settingsRepo}
}

// Render returns the diagnostic string for one device.
func (s *DiagnosticsService) Render(ctx context.Context, name string) (string, error) {
	dev, err := s.settingsRepo.Get(ctx, name)
	if err != nil {
		return "", err
	}
	if dev.Name == "" {
		return "", ErrDeviceNotFound
	}
	return dev.Settings.String(), nil
}

// RenderAll returns the diagnostic string of every stored record, ordered
// by registration name.
func (s *DiagnosticsService) RenderAll(ctx context.Context) ([]DeviceDiagnostic, error) {
	devices, err := s.settingsRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]DeviceDiagnostic, 0, len(devices))
	for _, dev := range devices {
		out = append(out, DeviceDiagnostic{Name: dev.Name, Diagnostic: dev.Settings.String()})
	}
	return out, nil
}
