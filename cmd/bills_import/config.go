package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/bills-db/internal/storage/factory"
	"github.com/DjordjeVuckovic/bills-db/pkg/config/env"
)

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type AppConfig struct {
	ENV string
}

type BillsImportConfig struct {
	BillsPath string
	BatchSize int
	factory.StorageConfig
}

func (as *AppConfig) Load() (*BillsImportConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/bills_import/.env")
	if err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	billsPath := os.Getenv("BILLS_FILE")
	if billsPath == "" {
		slog.Error("BILLS_FILE environment variable is not set")
		return nil, fmt.Errorf("BILLS_FILE environment variable is not set")
	}

	batchSize := 0
	if v := os.Getenv("IMPORT_BATCH_SIZE"); v != "" {
		batchSize, err = strconv.Atoi(v)
		if err != nil || batchSize < 0 {
			return nil, fmt.Errorf("invalid IMPORT_BATCH_SIZE %q: must be a non-negative integer", v)
		}
	}

	return &BillsImportConfig{
		BillsPath:     billsPath,
		BatchSize:     batchSize,
		StorageConfig: *storageCfg,
	}, nil
}
