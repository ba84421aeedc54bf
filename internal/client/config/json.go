package config

import (
	"encoding/json"
	"os"

	"github.com/raghhhava7/devclimate/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent
// fields keep their earlier values, so a partial file only overrides what
// it names.
type JsonConfig struct {
	BaseURL   *string `json:"server_base_url"`
	PageSize  *int    `json:"page_size"`
	StatePath *string `json:"state_path"`
	LogLevel  *string `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags (see
// flagx.JsonConfigFlags); when neither is given, nothing is loaded.
// Panics on read or unmarshal errors, matching the flag stage.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != nil {
		cfg.BaseURL = *jc.BaseURL
	}
	if jc.PageSize != nil {
		cfg.PageSize = *jc.PageSize
	}
	if jc.StatePath != nil {
		cfg.StatePath = *jc.StatePath
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
