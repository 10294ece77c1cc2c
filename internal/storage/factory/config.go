package factory

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/bills-db/internal/storage"
	"github.com/DjordjeVuckovic/bills-db/internal/storage/pg"
	"github.com/DjordjeVuckovic/bills-db/internal/storage/sqlite"
)

type StorageConfig struct {
	storage.Type
	SQLite *sqlite.Config
	Pg     *pg.PoolConfig
}

func LoadEnv() (*StorageConfig, error) {
	storageType := (storage.Type)(os.Getenv("STORAGE_TYPE"))
	if storageType == "" {
		storageType = storage.SQLite
	}
	if storageType != storage.SQLite && storageType != storage.PG && storageType != storage.InMem {
		slog.Error("Invalid STORAGE_TYPE environment variable value", "value", storageType)
		return nil, fmt.Errorf(
			"invalid STORAGE_TYPE environment variable value: %s, expected one of %v",
			storageType,
			[]storage.Type{storage.SQLite, storage.PG, storage.InMem})
	}

	var sqliteCfg *sqlite.Config
	if storageType == storage.SQLite {
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = sqlite.DefaultPath
		}
		sqliteCfg = &sqlite.Config{Path: path}
	}

	var pgCfg *pg.PoolConfig
	if storageType == storage.PG {
		pgCfg = &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if pgCfg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}
	}

	return &StorageConfig{
		Type:   storageType,
		SQLite: sqliteCfg,
		Pg:     pgCfg,
	}, nil
}
