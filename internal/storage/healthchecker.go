package storage

import (
	"context"
	"log/slog"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthChecker reports the store healthy while it answers pings.
type HealthChecker struct {
	db Pinger
}

func NewHealthChecker(db Pinger) *HealthChecker {
	return &HealthChecker{
		db: db,
	}
}

func (hc *HealthChecker) Healthy(ctx context.Context) bool {
	if hc.db == nil {
		return false
	}

	if err := hc.db.Ping(ctx); err != nil {
		slog.Warn("Database health check failed", "error", err)
		return false
	}

	return true
}
