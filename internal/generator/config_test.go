package generator

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Site.Lat != 22.59163 || cfg.Site.Lng != 113.972654 {
		t.Fatalf("default site = %+v", cfg.Site)
	}
	if cfg.Spread != 0.01 {
		t.Fatalf("default spread = %v, want 0.01", cfg.Spread)
	}
	if cfg.OnlineWeight != 3 || cfg.OfflineWeight != 1 {
		t.Fatalf("default status weights = %d:%d, want 3:1", cfg.OnlineWeight, cfg.OfflineWeight)
	}
	if cfg.HistoryDays != 7 || cfg.StepMinutes != 60 {
		t.Fatalf("default history window = %dd/%dm, want 7d hourly", cfg.HistoryDays, cfg.StepMinutes)
	}
	if cfg.MissingRate != 0.05 {
		t.Fatalf("default missing rate = %v, want 0.05", cfg.MissingRate)
	}
	if cfg.SimCards != 25 {
		t.Fatalf("default sim cards = %d, want 25", cfg.SimCards)
	}
	if cfg.OutputDir != "data" {
		t.Fatalf("default output dir = %q, want data", cfg.OutputDir)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config does not validate: %v", err)
	}
	if cfg.Step() != time.Hour {
		t.Fatalf("default step = %v, want 1h", cfg.Step())
	}
}

func TestLoadConfigPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agrifleet.yaml")
	body := `
site:
  lat: 30.5
  lng: 114.3
history_days: 3
sim_cards: 10
seed: 42
output_dir: /tmp/fleet
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfigPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Site.Lat != 30.5 || cfg.Site.Lng != 114.3 {
		t.Fatalf("site = %+v", cfg.Site)
	}
	if cfg.HistoryDays != 3 || cfg.SimCards != 10 || cfg.Seed != 42 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.OutputDir != "/tmp/fleet" {
		t.Fatalf("output dir = %q", cfg.OutputDir)
	}
	// Untouched keys keep their defaults.
	if cfg.MissingRate != 0.05 || cfg.StepMinutes != 60 {
		t.Fatalf("defaults lost on partial file: %+v", cfg)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("AGRIFLEET_OUTPUT_DIR", "/srv/agrifleet")
	t.Setenv("AGRIFLEET_SEED", "7")
	t.Setenv("AGRIFLEET_HISTORY_DAYS", "2")
	t.Setenv("AGRIFLEET_SIM_CARDS", "5")
	t.Setenv("AGRIFLEET_MISSING_RATE", "0.1")
	t.Setenv("AGRIFLEET_CONFIG", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.OutputDir != "/srv/agrifleet" || cfg.Seed != 7 || cfg.HistoryDays != 2 ||
		cfg.SimCards != 5 || cfg.MissingRate != 0.1 {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfigPath(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for absent config file")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative history days", func(c *Config) { c.HistoryDays = -1 }},
		{"zero step", func(c *Config) { c.StepMinutes = 0 }},
		{"missing rate at one", func(c *Config) { c.MissingRate = 1 }},
		{"negative missing rate", func(c *Config) { c.MissingRate = -0.1 }},
		{"zero sim cards", func(c *Config) { c.SimCards = 0 }},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
