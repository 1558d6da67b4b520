package service

import (
	"context"
	"time"

	"settings_hub/internal/logger"
	"settings_hub/internal/metrics"
	"settings_hub/internal/repository"
)

// ReporterService periodically writes every record's diagnostic string to
// the log. It only reads; devices are never contacted.
type ReporterService struct {
	settingsRepo repository.SettingsRepo
	log          *logger.Logger
}

func NewReporterService(settingsRepo repository.SettingsRepo, log *logger.Logger) *ReporterService {
	return &ReporterService{settingsRepo: settingsRepo, log: log}
}

// Run ticks at the given interval until ctx is canceled.
func (s *ReporterService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			s.report(ctx, now)
		}
	}
}

func (s *ReporterService) report(ctx context.Context, now time.Time) {
	devices, err := s.settingsRepo.List(ctx)
	if err != nil {
		if s.log != nil {
			s.log.Errorw("reporter_list_failed", "err", err)
		}
		return
	}

	for _, dev := range devices {
		if s.log != nil {
			s.log.Infow("device_settings_snapshot",
				"device", dev.Name,
				"settings", dev.Settings.String(),
				"updated_at", dev.UpdatedAt,
			)
		}
	}

	metrics.RegisteredDevices.Set(float64(len(devices)))
	metrics.ReporterRuns.Inc()
	metrics.ReporterLastRun.Set(float64(now.UTC().Unix()))
}
