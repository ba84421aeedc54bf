package config

import (
	"fmt"

	validator "github.com/go-playground/validator/v10"
)

// Config holds runtime settings for the DevClimate CLI.
//
// Fields:
//   - BaseURL: scheme://host[:port] of the backend, without the /api prefix.
//   - PageSize: records per history page.
//   - StatePath: sqlite file holding the persisted token and pending search.
//   - LogLevel: zap level name.
//   - StartupSearch: optional city to search right after the dashboard
//     opens, before any user input. Flag-only; the interactive analogue of
//     opening the dashboard with a search term attached.
type Config struct {
	BaseURL       string `env:"DEVCLIMATE_SERVER" validate:"url"`
	PageSize      int    `env:"DEVCLIMATE_PAGE_SIZE" validate:"gte=1"`
	StatePath     string `env:"DEVCLIMATE_STATE_PATH" validate:"required"`
	LogLevel      string `env:"DEVCLIMATE_LOG_LEVEL" validate:"loglevel"`
	StartupSearch string `env:"-"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:5000"
	c.PageSize = 5
	c.StatePath = "devclimate.db"
	c.LogLevel = "info"
}

func validateLogLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

func (c *Config) validate() error {
	v := validator.New()
	if err := v.RegisterValidation("loglevel", validateLogLevel); err != nil {
		return err
	}
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
