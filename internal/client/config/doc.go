// Package config loads runtime configuration for the DevClimate CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv), with a .env file loaded first
//     if present.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the DevClimate backend
//	-p int      history page size
//	-d string   path to the local state database
//	-l string   log level (debug|info|warn|error)
//	-s string   search this city right after the dashboard opens
//
// # JSON schema
//
//	{
//	  "server_base_url": "http://localhost:5000",
//	  "page_size": 5,
//	  "state_path": "devclimate.db",
//	  "log_level": "info"
//	}
//
// Primary API
//
//   - type Config                          — the resolved runtime settings
//   - func LoadConfig() (*Config, error)   — defaults, JSON, env, flags, then validation
//   - func (*Config) LoadDefaults()        — sets sensible defaults
package config
