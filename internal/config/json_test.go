package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	t.Run("loads from -config", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"database_driver": "pgx",
			"database_dsn":    "postgres://localhost/worklog",
			"log_file":        "",
			"log_level":       "warn",
			"no_color":        true,
		})

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg, []string{"-config", path})

		assert.Equal(t, &Config{
			DatabaseDriver: "pgx",
			DatabaseDSN:    "postgres://localhost/worklog",
			LogFile:        "",
			LogLevel:       "warn",
			NoColor:        true,
		}, cfg)
	})

	t.Run("missing keys keep current values", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{"log_level": "error"})

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg, []string{"-c", path})

		assert.Equal(t, "error", cfg.LogLevel)
		assert.Equal(t, "worklog.db", cfg.DatabaseDSN)
		assert.Equal(t, "worklog.log", cfg.LogFile)
	})

	t.Run("no flag leaves config untouched", func(t *testing.T) {
		cfg := &Config{DatabaseDSN: "keep.db"}
		parseJson(cfg, []string{"-d", "x.db"})
		assert.Equal(t, &Config{DatabaseDSN: "keep.db"}, cfg)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		require.Panics(t, func() { parseJson(&Config{}, []string{"-c", bad}) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "nope.json")
		require.Panics(t, func() { parseJson(&Config{}, []string{"-c", missing}) })
	})
}
