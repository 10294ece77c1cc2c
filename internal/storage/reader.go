package storage

import (
	"context"

	"github.com/DjordjeVuckovic/bills-db/internal/domain"
)

type Reader interface {
	// GetByNumber returns the bill with the exact billNumber, or nil (and no
	// error) when there is none.
	GetByNumber(ctx context.Context, billNumber string) (*domain.Bill, error)
	// SearchByTitle returns every bill whose title contains keyword as a
	// literal substring. Order is backend-defined; no match yields an empty slice.
	SearchByTitle(ctx context.Context, keyword string) ([]domain.Bill, error)
}
