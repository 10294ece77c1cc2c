package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/DjordjeVuckovic/bills-db/internal/processor"
	"github.com/DjordjeVuckovic/bills-db/internal/reader"
	"github.com/DjordjeVuckovic/bills-db/internal/storage/factory"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Bills import failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := NewAppConfig().Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	format, err := reader.FormatFromPath(cfg.BillsPath)
	if err != nil {
		return err
	}

	file, err := os.Open(cfg.BillsPath)
	if err != nil {
		return err
	}
	defer file.Close()

	bills, err := reader.NewBillLoader(file, format).Load(true)
	if err != nil {
		return err
	}
	slog.Info("Loaded bills file", "path", cfg.BillsPath, "count", len(bills))

	store, err := factory.NewStore(ctx, cfg.StorageConfig)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("Failed to close database", "error", err)
		}
	}()

	stats, err := processor.NewBillImporter(store, processor.WithBulk(cfg.BatchSize)).Run(ctx, bills)
	if err != nil {
		return err
	}

	slog.Info("Bills imported", "imported", stats.Imported, "batches", stats.Batches)
	return nil
}
