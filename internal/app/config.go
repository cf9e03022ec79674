package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Config holds application configuration from env
type Config struct {
	DataDir string `validate:"required"`
	// TableName is the base file name; the extension comes from the store.
	TableName  string `validate:"required"`
	SaveFormat string `validate:"oneof=csv json parquet"`
	// Timezone is the reference zone applied to naive timestamps.
	Timezone string `validate:"required"`
	LogLevel string `validate:"oneof=debug info warn error"`
	// StrictLoad makes a corrupt existing table fatal instead of silently empty.
	StrictLoad bool
}

// LoadConfig reads config from environment
func LoadConfig() *Config {
	cfg := &Config{
		DataDir:    getEnv("DATA_DIR", "data"),
		TableName:  getEnv("TABLE_NAME", "historical_ohlcv_15m"),
		SaveFormat: getEnv("SAVE_FORMAT", "csv"),
		Timezone:   getEnv("TIMEZONE", "America/New_York"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
	}
	if v, err := strconv.ParseBool(os.Getenv("STRICT_LOAD")); err == nil {
		cfg.StrictLoad = v
	}
	return cfg
}

// Validate checks the loaded config. Timezone resolution happens in the
// providers (LoadLocation is the real validator for zone names).
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// TablePath returns DataDir/TableName.ext for the chosen format.
func (c *Config) TablePath(ext string) string {
	return filepath.Join(c.DataDir, c.TableName+"."+ext)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
