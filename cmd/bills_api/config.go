package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/bills-db/internal/storage/factory"
	"github.com/DjordjeVuckovic/bills-db/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type BillsAPIConfig struct {
	LogLevel      slog.Level
	StorageConfig factory.StorageConfig
}

func (as *AppConfig) Load() (*BillsAPIConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/bills_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	return &BillsAPIConfig{
		LogLevel:      parseLogLevel(os.Getenv("LOG_LEVEL")),
		StorageConfig: *storageCfg,
	}, nil
}

func parseLogLevel(v string) slog.Level {
	if v == "" {
		return slog.LevelInfo
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(v)); err != nil {
		slog.Warn("Unknown LOG_LEVEL, using info", "value", v)
		return slog.LevelInfo
	}
	return level
}
