package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"settings_hub/internal/config"
)

func writeConfig(t *testing.T, yml string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte(yml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestLoad_AppliesServiceDefaults(t *testing.T) {
	dir := writeConfig(t, "port: \"9090\"\n")

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.DBPath != config.DefaultDBPath {
		t.Errorf("DBPath = %q, want default %q", cfg.DBPath, config.DefaultDBPath)
	}
	if cfg.ReporterTick != config.DefaultReporterTick {
		t.Errorf("ReporterTick = %v, want %v", cfg.ReporterTick, config.DefaultReporterTick)
	}
	if len(cfg.Seeds) != 0 {
		t.Errorf("Seeds = %v, want none", cfg.Seeds)
	}
}

func TestLoad_BindsSeedsWithRecordDefaults(t *testing.T) {
	dir := writeConfig(t, `
reporter:
  tick: 5s
devices:
  - name: hallway-motion
    device_id: "1000abc"
    local_poll_seconds: 30
  - name: plug-a
    consumption_enabled: true
    consumption_poll_seconds: 0
`)

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ReporterTick != 5*time.Second {
		t.Errorf("ReporterTick = %v, want 5s", cfg.ReporterTick)
	}
	if len(cfg.Seeds) != 2 {
		t.Fatalf("Seeds count = %d, want 2", len(cfg.Seeds))
	}

	first := cfg.Seeds[0]
	if first.Name != "hallway-motion" {
		t.Errorf("seed name = %q", first.Name)
	}
	if first.Settings.DeviceID != "1000abc" || first.Settings.LocalPollSeconds != 30 {
		t.Errorf("explicit values lost: %+v", first.Settings)
	}
	// untouched fields fall back to record defaults
	if first.Settings.ConsumptionPollSeconds != 86400 || first.Settings.ButtonResetTimeoutMs != 500 || first.Settings.MotionResetTimeoutMs != 60000 {
		t.Errorf("defaults not substituted: %+v", first.Settings)
	}

	// explicit zero must survive binding (no range check, no default clobber)
	second := cfg.Seeds[1]
	if second.Settings.ConsumptionPollSeconds != 0 {
		t.Errorf("explicit zero replaced by default: %+v", second.Settings)
	}
	if !second.Settings.ConsumptionEnabled {
		t.Errorf("consumption_enabled not bound: %+v", second.Settings)
	}
}

func TestLoad_NamelessSeedIsAnError(t *testing.T) {
	dir := writeConfig(t, "devices:\n  - device_id: \"abc\"\n")

	if _, err := config.Load(dir); err == nil {
		t.Fatal("Load() expected error for nameless seed, got nil")
	}
}

func TestLoad_MissingFileIsAnError(t *testing.T) {
	if _, err := config.Load(t.TempDir()); err == nil {
		t.Fatal("Load() expected error for missing file, got nil")
	}
}
