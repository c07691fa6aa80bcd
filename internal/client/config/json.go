package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/mindanalyzer/internal/flagx"
	"github.com/dmitrijs2005/mindanalyzer/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Fields
// absent from the file keep their current value, so a partial file is
// fine. RequestTimeout accepts "30s" or integer nanoseconds.
type JsonConfig struct {
	ServerURL      *string         `json:"server_url"`
	DatabasePath   *string         `json:"database_path"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	Language       *string         `json:"language"`
	LogLevel       *string         `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config in args, or by
// MINDANALYZER_CONFIG. Without a path it does nothing.
func parseJson(cfg *Config, args []string) error {
	path := flagx.JsonConfigFlags(args, ConfigEnvKey)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.ServerURL != nil {
		cfg.ServerURL = *jc.ServerURL
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.Language != nil {
		cfg.Language = *jc.Language
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	return nil
}
