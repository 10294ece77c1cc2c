package processor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/bills-db/internal/domain"
	"github.com/DjordjeVuckovic/bills-db/internal/storage"
)

// BulkOptions splits an import into independent transactions of Size bills.
// Disabled means the whole import is one transaction.
type BulkOptions struct {
	Enabled bool
	Size    int
}

type ImporterConfig struct {
	Name string
	Bulk *BulkOptions
}

type ImportStats struct {
	Total    int
	Imported int
	Batches  int
}

// BillImporter upserts a loaded set of bills through a storage.Storer.
type BillImporter struct {
	storer storage.Storer
	config *ImporterConfig
}

type ImporterOption func(importer *BillImporter)

// WithBulk commits every size bills in their own transaction. Non-positive
// sizes keep the single-transaction default.
func WithBulk(size int) ImporterOption {
	return func(importer *BillImporter) {
		if size <= 0 {
			return
		}
		importer.config.Bulk = &BulkOptions{Enabled: true, Size: size}
	}
}

func NewBillImporter(storer storage.Storer, opts ...ImporterOption) *BillImporter {
	i := &BillImporter{
		storer: storer,
		config: &ImporterConfig{
			Name: "bill-importer",
			Bulk: &BulkOptions{Enabled: false},
		},
	}

	for _, opt := range opts {
		opt(i)
	}

	return i
}

// Run stops at the first failing batch. Batches committed before it stay committed.
func (i *BillImporter) Run(ctx context.Context, bills []domain.Bill) (*ImportStats, error) {
	start := time.Now()
	stats := &ImportStats{Total: len(bills)}

	slog.Info("Starting bills import",
		"importer", i.config.Name,
		"bulk_enabled", i.config.Bulk.Enabled,
		"batch_size", i.config.Bulk.Size,
		"total", stats.Total,
	)

	if len(bills) == 0 {
		slog.Info("Nothing to import", "importer", i.config.Name)
		return stats, nil
	}

	for _, batch := range i.batches(bills) {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		n, err := i.storer.SaveBulk(ctx, batch)
		if err != nil {
			slog.Error("Error saving bills batch",
				"error", err,
				"importer", i.config.Name,
				"batch", stats.Batches+1,
				"count", len(batch),
			)
			return stats, fmt.Errorf("batch %d: %w", stats.Batches+1, err)
		}

		stats.Imported += n
		stats.Batches++
	}

	slog.Info("Bills import completed",
		"importer", i.config.Name,
		"imported", stats.Imported,
		"batches", stats.Batches,
		"duration", time.Since(start),
	)
	return stats, nil
}

func (i *BillImporter) batches(bills []domain.Bill) [][]domain.Bill {
	if !i.config.Bulk.Enabled || i.config.Bulk.Size >= len(bills) {
		return [][]domain.Bill{bills}
	}

	size := i.config.Bulk.Size
	out := make([][]domain.Bill, 0, (len(bills)+size-1)/size)
	for start := 0; start < len(bills); start += size {
		end := min(start+size, len(bills))
		out = append(out, bills[start:end])
	}
	return out
}
