package config

import (
	"fmt"
	"log/slog"

	"startrek/internal/shared/errors"
	"startrek/internal/shared/utils"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Logging LoggingConfig
}

type AppConfig struct {
	Environment string
}

type LoggingConfig struct {
	Level      string
	Format     string
	JSONFormat bool
}

var GlobalConfig *Config

func Init() error {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using system environment variables")
	}

	config, err := load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := config.validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	GlobalConfig = config
	return nil
}

func load() (*Config, error) {
	config := &Config{
		App:     loadAppConfig(),
		Logging: loadLoggingConfig(),
	}
	config.Logging.JSONFormat = config.IsProduction() || config.Logging.Format == "json"

	return config, nil
}

func loadAppConfig() AppConfig {
	return AppConfig{
		Environment: utils.GetEnv("ENVIRONMENT", "development"),
	}
}

func loadLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level:  utils.GetEnv("LOG_LEVEL", "info"),
		Format: utils.GetEnv("LOG_FORMAT", "text"),
	}
}

func (c *Config) validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.Validationf("LOG_LEVEL %q is not one of debug, info, warn, error", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return errors.Validationf("LOG_FORMAT %q is not one of text, json", c.Logging.Format)
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}
