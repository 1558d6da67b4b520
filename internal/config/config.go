package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"settings_hub/internal/models"
)

// Tuning defaults for the service itself (not the device record).
const (
	DefaultPort         = "8080"
	DefaultDBPath       = "app.db"
	DefaultLogLevel     = "info"
	DefaultReporterTick = 60 * time.Second
)

// Config holds service-level settings loaded from configs/config.yml.
type Config struct {
	Port         string
	DBPath       string
	LogLevel     string
	ReporterTick time.Duration
	SigningKey   string
	Seeds        []Seed
}

// Seed is a device registration taken from the config file.
type Seed struct {
	Name     string
	Settings models.DeviceSettings
}

// seedFile is the yaml-facing shape of a seed entry. Pointer fields make
// "absent" distinguishable from zero so the binder can substitute defaults
// without clobbering explicit zero or negative values.
type seedFile struct {
	Name                   string `mapstructure:"name"`
	DeviceID               string `mapstructure:"device_id"`
	ConsumptionPollSeconds *int   `mapstructure:"consumption_poll_seconds"`
	LocalPollSeconds       *int   `mapstructure:"local_poll_seconds"`
	ConsumptionEnabled     *bool  `mapstructure:"consumption_enabled"`
	LocalEnabled           *bool  `mapstructure:"local_enabled"`
	ButtonResetTimeoutMs   *int   `mapstructure:"button_reset_timeout_ms"`
	MotionResetTimeoutMs   *int   `mapstructure:"motion_reset_timeout_ms"`
}

// Load reads config.yml from dir and binds it. Values are taken as-is; only
// a missing or unreadable file and a nameless seed entry are errors.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName("config")

	v.SetDefault("port", DefaultPort)
	v.SetDefault("db.path", DefaultDBPath)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("reporter.tick", DefaultReporterTick)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var raw []seedFile
	if err := v.UnmarshalKey("devices", &raw); err != nil {
		return nil, fmt.Errorf("parse devices: %w", err)
	}

	seeds := make([]Seed, 0, len(raw))
	for i, entry := range raw {
		if entry.Name == "" {
			return nil, fmt.Errorf("devices[%d]: name is required", i)
		}
		seeds = append(seeds, Seed{Name: entry.Name, Settings: bindSettings(entry)})
	}

	return &Config{
		Port:         v.GetString("port"),
		DBPath:       v.GetString("db.path"),
		LogLevel:     v.GetString("log.level"),
		ReporterTick: v.GetDuration("reporter.tick"),
		SigningKey:   v.GetString("auth.signing_key"),
		Seeds:        seeds,
	}, nil
}

// bindSettings populates a settings record from a seed entry, substituting
// the record defaults for every absent field.
func bindSettings(entry seedFile) models.DeviceSettings {
	s := models.DefaultDeviceSettings()
	s.DeviceID = entry.DeviceID

	if entry.ConsumptionPollSeconds != nil {
		s.ConsumptionPollSeconds = *entry.ConsumptionPollSeconds
	}
	if entry.LocalPollSeconds != nil {
		s.LocalPollSeconds = *entry.LocalPollSeconds
	}
	if entry.ConsumptionEnabled != nil {
		s.ConsumptionEnabled = *entry.ConsumptionEnabled
	}
	if entry.LocalEnabled != nil {
		s.LocalEnabled = *entry.LocalEnabled
	}
	if entry.ButtonResetTimeoutMs != nil {
		s.ButtonResetTimeoutMs = *entry.ButtonResetTimeoutMs
	}
	if entry.MotionResetTimeoutMs != nil {
		s.MotionResetTimeoutMs = *entry.MotionResetTimeoutMs
	}
	return s
}
