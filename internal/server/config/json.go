package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/jwtauth/internal/flagx"
	"github.com/dmitrijs2005/jwtauth/internal/timex"
)

// JsonConfig is the on-disk shape of the optional JSON config file. Only
// keys present with non-zero values are copied into Config.
type JsonConfig struct {
	Address               string         `json:"address"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	Environment           string         `json:"environment"`
	GinMode               string         `json:"gin_mode"`
	BasePath              string         `json:"base_path"`
	CORSAllowedOrigins    string         `json:"cors_allowed_origins"`
	LogLevel              string         `json:"log_level"`
	DBMaxOpenConns        int            `json:"db_max_open_conns"`
	DBMaxIdleConns        int            `json:"db_max_idle_conns"`
	ShutdownTimeout       timex.Duration `json:"shutdown_timeout"`
	HashCost              int            `json:"bcrypt_cost"`
}

// parseJson loads configuration values from the JSON file named by the -c or
// -config flag. Without the flag nothing happens. An unreadable file or
// invalid JSON panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.ConfigPath(os.Args[1:])

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	overlayString(&config.Address, c.Address)
	overlayString(&config.DatabaseDSN, c.DatabaseDSN)
	overlayString(&config.SecretKey, c.SecretKey)
	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	overlayString(&config.Environment, c.Environment)
	overlayString(&config.GinMode, c.GinMode)
	overlayString(&config.BasePath, c.BasePath)
	overlayString(&config.CORSAllowedOrigins, c.CORSAllowedOrigins)
	overlayString(&config.LogLevel, c.LogLevel)
	if c.DBMaxOpenConns != 0 {
		config.DBMaxOpenConns = c.DBMaxOpenConns
	}
	if c.DBMaxIdleConns != 0 {
		config.DBMaxIdleConns = c.DBMaxIdleConns
	}
	if c.ShutdownTimeout.Duration != 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	if c.HashCost != 0 {
		config.HashCost = c.HashCost
	}
}

func overlayString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
