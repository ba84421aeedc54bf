package config

import (
	env "github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// parseEnv overlays Config with DEVCLIMATE_* environment variables. A .env
// file in the working directory is loaded first when present; a missing
// file is not an error.
func parseEnv(cfg *Config) error {
	_ = godotenv.Load()
	return env.Parse(cfg)
}
