package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"address":                 "www.example:9000",
		"database_dsn":            "postgres://json",
		"secret_key":              "my_secret_key",
		"token_validity_duration": "12h",
		"environment":             "development",
		"gin_mode":                "debug",
		"base_path":               "/api/auth",
		"cors_allowed_origins":    "http://localhost:5173",
		"log_level":               "warn",
		"db_max_open_conns":       3,
		"db_max_idle_conns":       2,
		"shutdown_timeout":        "5s",
		"bcrypt_cost":             11,
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "www.example:9000", cfg.Address)
		assert.Equal(t, "postgres://json", cfg.DatabaseDSN)
		assert.Equal(t, "my_secret_key", cfg.SecretKey)
		assert.Equal(t, 12*time.Hour, cfg.TokenValidityDuration)
		assert.Equal(t, "development", cfg.Environment)
		assert.Equal(t, "debug", cfg.GinMode)
		assert.Equal(t, "/api/auth", cfg.BasePath)
		assert.Equal(t, "http://localhost:5173", cfg.CORSAllowedOrigins)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, 3, cfg.DBMaxOpenConns)
		assert.Equal(t, 2, cfg.DBMaxIdleConns)
		assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
		assert.Equal(t, 11, cfg.HashCost)
	})

	t.Run("absent keys keep earlier values", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{
			"secret_key": "only-secret",
		})
		os.Args = []string{"testbin", "-c", partial}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "only-secret", cfg.SecretKey)
		assert.Equal(t, ":8080", cfg.Address)
		assert.Equal(t, 24*time.Hour, cfg.TokenValidityDuration)
	})

	t.Run("no config flag → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{Address: "defaults:1234", SecretKey: "key", TokenValidityDuration: 2 * time.Minute}
		parseJson(cfg)

		assert.Equal(t, "defaults:1234", cfg.Address)
		assert.Equal(t, "key", cfg.SecretKey)
		assert.Equal(t, 2*time.Minute, cfg.TokenValidityDuration)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", filepath.Join(dir, "nope.json")}
		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
