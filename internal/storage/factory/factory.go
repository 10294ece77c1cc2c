package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/bills-db/internal/storage"
	"github.com/DjordjeVuckovic/bills-db/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/bills-db/internal/storage/pg"
	"github.com/DjordjeVuckovic/bills-db/internal/storage/sqlite"
)

// NewStore opens the storage.Store selected by cfg.Type. The caller owns the
// returned store and must Close it.
func NewStore(ctx context.Context, cfg StorageConfig) (storage.Store, error) {
	switch cfg.Type {
	case storage.SQLite:
		if cfg.SQLite == nil {
			return nil, fmt.Errorf("sqlite storage selected but no sqlite config provided")
		}
		s, err := sqlite.Open(ctx, *cfg.SQLite)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite storage: %w", err)
		}
		return s, nil

	case storage.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("pg storage selected but no pg config provided")
		}
		s, err := pg.Open(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to open PostgreSQL storage: %w", err)
		}
		return s, nil

	case storage.InMem:
		return in_mem.NewInMemStore(), nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
