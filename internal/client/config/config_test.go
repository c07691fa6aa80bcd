package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		ConfigEnvKey,
		"MINDANALYZER_SERVER_URL",
		"MINDANALYZER_DB_PATH",
		"MINDANALYZER_REQUEST_TIMEOUT",
		"MINDANALYZER_LANGUAGE",
		"MINDANALYZER_LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
}

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "http://localhost:5000", c.ServerURL)
	assert.Equal(t, "mindanalyzer.db", c.DatabasePath)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Empty(t, c.Language)
	assert.Equal(t, "warn", c.LogLevel)
}

func TestLoadConfig_DefaultsOnly(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(defaults(), cfg))
}

func TestLoadConfig_Precedence(t *testing.T) {
	clearEnv(t)
	path := writeTempJSON(t, "", "", map[string]any{
		"server_url":      "http://json:1",
		"database_path":   "json.db",
		"request_timeout": "5s",
		"log_level":       "debug",
	})
	t.Setenv("MINDANALYZER_SERVER_URL", "http://env:2")
	t.Setenv("MINDANALYZER_LANGUAGE", "ru")

	cfg, err := LoadConfig([]string{"-c", path, "-l", "en"})
	require.NoError(t, err)

	want := &Config{
		ServerURL:      "http://env:2",
		DatabasePath:   "json.db",
		RequestTimeout: 5 * time.Second,
		Language:       "en",
		LogLevel:       "debug",
	}
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestLoadConfig_EnvTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("MINDANALYZER_REQUEST_TIMEOUT", "1500ms")

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, cfg.RequestTimeout)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("bad env duration", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MINDANALYZER_REQUEST_TIMEOUT", "soon")
		_, err := LoadConfig(nil)
		require.Error(t, err)
	})

	t.Run("zero timeout", func(t *testing.T) {
		clearEnv(t)
		_, err := LoadConfig([]string{"-t", "0"})
		require.Error(t, err)
	})

	t.Run("missing config file", func(t *testing.T) {
		clearEnv(t)
		_, err := LoadConfig([]string{"-config", "/nonexistent/cfg.json"})
		require.Error(t, err)
	})
}
