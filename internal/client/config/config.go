package config

import (
	"fmt"
	"time"
)

// ConfigEnvKey names the environment variable holding the JSON config path
// when neither -c nor -config is given.
const ConfigEnvKey = "MINDANALYZER_CONFIG"

// Config holds runtime settings for the MindAnalyzer terminal client.
//
// Fields:
//   - ServerURL: base URL of the backend, scheme included.
//   - DatabasePath: SQLite file holding the token and preferences.
//   - RequestTimeout: per-request HTTP timeout.
//   - Language: forces the UI language; empty means detect it.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ServerURL      string        `env:"MINDANALYZER_SERVER_URL"`
	DatabasePath   string        `env:"MINDANALYZER_DB_PATH"`
	RequestTimeout time.Duration `env:"MINDANALYZER_REQUEST_TIMEOUT"`
	Language       string        `env:"MINDANALYZER_LANGUAGE"`
	LogLevel       string        `env:"MINDANALYZER_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:5000"
	c.DatabasePath = "mindanalyzer.db"
	c.RequestTimeout = 30 * time.Second
	c.Language = ""
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config from defaults, then the JSON file (if
// any), then the environment, then args (usually os.Args[1:]). Later
// sources take precedence over earlier ones.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if cfg.RequestTimeout <= 0 {
		return nil, fmt.Errorf("request timeout must be positive, got %s", cfg.RequestTimeout)
	}
	return cfg, nil
}
