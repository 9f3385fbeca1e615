package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config is the runtime configuration shared by the API server and the CLI.
type Config struct {
	Addr        string `toml:"addr"`
	Locale      string `toml:"locale"`
	LogLevel    string `toml:"log_level"`
	ServiceName string `toml:"service_name"`
	// Telemetry enables the OTLP trace, metric and log exporters.
	Telemetry bool `toml:"telemetry"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:        ":8080",
		Locale:      "en",
		LogLevel:    "info",
		ServiceName: "percent-calculator",
		Telemetry:   false,
	}
}

// Load resolves the configuration in order: defaults, the TOML file at path
// (or $PERCENT_CONFIG when path is empty), a .env file in the working
// directory, then process environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("PERCENT_CONFIG")
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := loadDotEnv(); err != nil {
		return Config{}, err
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// loadDotEnv loads environment variables from .env when present.
// Existing process environment variables are not overridden.
func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil {
		return nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("load .env: %w", err)
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("PERCENT_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("PERCENT_LOCALE"); v != "" {
		cfg.Locale = v
	}
	if v := os.Getenv("PERCENT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("OTEL_SERVICE_NAME"); v != "" {
		cfg.ServiceName = v
	}
	if v := os.Getenv("PERCENT_TELEMETRY"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse PERCENT_TELEMETRY: %w", err)
		}
		cfg.Telemetry = enabled
	}
	return nil
}
