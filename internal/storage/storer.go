package storage

import (
	"context"

	"github.com/DjordjeVuckovic/bills-db/internal/domain"
)

// Storer upserts bills. SaveBulk is all-or-nothing: every bill is validated
// before the first write and all upserts share one transaction.
type Storer interface {
	SaveBulk(ctx context.Context, bills []domain.Bill) (int, error)
}

// Store is the full data-access contract a backend implements.
type Store interface {
	Storer
	Reader
	Ping(ctx context.Context) error
	Close() error
}

type Type string

const (
	SQLite Type = "sqlite"
	PG     Type = "pg"
	InMem  Type = "in_mem"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storage type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}
