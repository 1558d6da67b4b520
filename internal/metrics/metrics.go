package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registered on the default registry; exposed via GET /metrics.
var (
	RegisteredDevices = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "settings_hub_registered_devices",
		Help: "Number of device settings records currently stored",
	})

	SettingsEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "settings_hub_settings_events_total",
		Help: "Audit events appended, by type",
	}, []string{"type"})

	ReporterRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "settings_hub_reporter_runs_total",
		Help: "Completed diagnostics reporter passes",
	})

	ReporterLastRun = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "settings_hub_reporter_last_run_timestamp_seconds",
		Help: "Last successful reporter pass (epoch seconds)",
	})
)
