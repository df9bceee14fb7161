package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// loadEnvFiles loads each file into the process environment. Missing files
// are skipped; earlier files win because godotenv never overrides a variable
// that is already set.
func loadEnvFiles(files ...string) {
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

// parseEnv overlays values from environment variables. Unset or empty
// variables leave the current value alone; malformed numbers and durations
// panic, like a malformed JSON file does.
//
//	ADDRESS, DATABASE_DSN, JWT_SECRET, TOKEN_TTL, ENVIRONMENT, GIN_MODE,
//	BASE_PATH, CORS_ALLOWED_ORIGINS, LOG_LEVEL, DB_MAX_OPEN_CONNS,
//	DB_MAX_IDLE_CONNS, SHUTDOWN_TIMEOUT, BCRYPT_COST
func parseEnv(config *Config) {
	setString(&config.Address, "ADDRESS")
	setString(&config.DatabaseDSN, "DATABASE_DSN")
	setString(&config.SecretKey, "JWT_SECRET")
	setDuration(&config.TokenValidityDuration, "TOKEN_TTL")
	setString(&config.Environment, "ENVIRONMENT")
	setString(&config.GinMode, "GIN_MODE")
	setString(&config.BasePath, "BASE_PATH")
	setString(&config.CORSAllowedOrigins, "CORS_ALLOWED_ORIGINS")
	setString(&config.LogLevel, "LOG_LEVEL")
	setInt(&config.DBMaxOpenConns, "DB_MAX_OPEN_CONNS")
	setInt(&config.DBMaxIdleConns, "DB_MAX_IDLE_CONNS")
	setDuration(&config.ShutdownTimeout, "SHUTDOWN_TIMEOUT")
	setInt(&config.HashCost, "BCRYPT_COST")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		panic(err)
	}
	*dst = n
}

func setDuration(dst *time.Duration, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	*dst = d
}
