package generator

import (
	"errors"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"agrifleet/internal/fleet"
	"agrifleet/internal/simcard"
	"agrifleet/internal/telemetry"
)

// Config defines one generation run. Zero values fall back to the observed
// demo constants, so an empty config file still yields a full snapshot.
type Config struct {
	Site          fleet.Location `yaml:"site"`
	Spread        float64        `yaml:"spread"`
	OnlineWeight  int            `yaml:"online_weight"`
	OfflineWeight int            `yaml:"offline_weight"`

	HistoryDays int     `yaml:"history_days"`
	StepMinutes int     `yaml:"step_minutes"`
	MissingRate float64 `yaml:"missing_rate"`

	SimCards int `yaml:"sim_cards"`

	// Seed fixes the RNG for reproducible fleets; 0 derives a seed from the
	// wall clock.
	Seed int64 `yaml:"seed"`

	OutputDir string `yaml:"output_dir"`
}

// DefaultConfig returns the observed generation constants: the Shenzhen
// research campus site, a 3:1 online bias, 7 days of hourly history with a 5%
// gap rate and 25 SIM cards.
func DefaultConfig() Config {
	fleetDefaults := fleet.DefaultConfig()
	return Config{
		Site:          fleetDefaults.Center,
		Spread:        fleetDefaults.Spread,
		OnlineWeight:  fleetDefaults.OnlineWeight,
		OfflineWeight: fleetDefaults.OfflineWeight,
		HistoryDays:   7,
		StepMinutes:   60,
		MissingRate:   0.05,
		SimCards:      25,
		OutputDir:     "data",
	}
}

// LoadConfig loads config from yaml or env. The AGRIFLEET_CONFIG file is
// applied over the defaults, then individual env overrides on top.
func LoadConfig() (Config, error) {
	return LoadConfigPath(os.Getenv("AGRIFLEET_CONFIG"))
}

// LoadConfigPath is LoadConfig with an explicit config file path.
func LoadConfigPath(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}

	cfg.OutputDir = getenvDefault("AGRIFLEET_OUTPUT_DIR", cfg.OutputDir)
	cfg.Seed = getenvInt64Default("AGRIFLEET_SEED", cfg.Seed)
	cfg.HistoryDays = getenvIntDefault("AGRIFLEET_HISTORY_DAYS", cfg.HistoryDays)
	cfg.SimCards = getenvIntDefault("AGRIFLEET_SIM_CARDS", cfg.SimCards)
	cfg.MissingRate = getenvFloatDefault("AGRIFLEET_MISSING_RATE", cfg.MissingRate)

	return cfg, cfg.Validate()
}

// Validate rejects configs no generation run can honor.
func (c Config) Validate() error {
	if c.HistoryDays < 0 {
		return errors.New("generator: negative history days")
	}
	if c.StepMinutes <= 0 {
		return errors.New("generator: non-positive step")
	}
	if c.MissingRate < 0 || c.MissingRate >= 1 {
		return errors.New("generator: missing rate outside [0, 1)")
	}
	if c.SimCards <= 0 {
		return errors.New("generator: non-positive sim card count")
	}
	if c.OutputDir == "" {
		return errors.New("generator: output dir required")
	}
	return nil
}

// Step returns the historical sampling granularity.
func (c Config) Step() time.Duration {
	return time.Duration(c.StepMinutes) * time.Minute
}

func (c Config) fleetConfig() fleet.Config {
	out := fleet.DefaultConfig()
	out.Center = c.Site
	out.Spread = c.Spread
	out.OnlineWeight = c.OnlineWeight
	out.OfflineWeight = c.OfflineWeight
	return out
}

func (c Config) synthesisConfig() telemetry.SynthesisConfig {
	out := telemetry.DefaultSynthesisConfig()
	out.Step = c.Step()
	out.MissingRate = c.MissingRate
	return out
}

func (c Config) simCardConfig() simcard.Config {
	out := simcard.DefaultConfig()
	out.Count = c.SimCards
	return out
}

func getenvDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvIntDefault(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getenvInt64Default(key string, fallback int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getenvFloatDefault(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
