package in_mem

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/DjordjeVuckovic/bills-db/internal/domain"
	"github.com/DjordjeVuckovic/bills-db/internal/storage"
)

var _ storage.Store = (*InMemStore)(nil)

// InMemStore keeps bills in a map. Title search folds case like SQLite's
// default LIKE.
type InMemStore struct {
	storageLock sync.RWMutex
	storage     map[string]domain.Bill
}

func NewInMemStore() *InMemStore {
	return &InMemStore{
		storage: make(map[string]domain.Bill),
	}
}

func (s *InMemStore) SaveBulk(ctx context.Context, bills []domain.Bill) (int, error) {
	if err := domain.ValidateAll(bills); err != nil {
		return 0, err
	}

	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	for _, b := range bills {
		s.storage[b.BillNumber] = cloneBill(b)
	}

	slog.Info("Successfully inserted bills into in-memory storage", "count", len(bills))
	return len(bills), nil
}

func (s *InMemStore) GetByNumber(ctx context.Context, billNumber string) (*domain.Bill, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	b, ok := s.storage[billNumber]
	if !ok {
		return nil, nil
	}
	out := cloneBill(b)
	return &out, nil
}

func (s *InMemStore) SearchByTitle(ctx context.Context, keyword string) ([]domain.Bill, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	needle := strings.ToLower(keyword)
	bills := make([]domain.Bill, 0)
	for _, b := range s.storage {
		if b.Title != nil && strings.Contains(strings.ToLower(*b.Title), needle) {
			bills = append(bills, cloneBill(b))
		}
	}
	return bills, nil
}

func (s *InMemStore) Ping(ctx context.Context) error {
	return nil
}

func (s *InMemStore) Close() error {
	return nil
}

func cloneBill(b domain.Bill) domain.Bill {
	out := b
	out.Title = cloneString(b.Title)
	out.ParliamentNumber = cloneString(b.ParliamentNumber)
	out.MemberInCharge = cloneString(b.MemberInCharge)
	out.Committee = cloneString(b.Committee)
	out.FilePath = cloneString(b.FilePath)
	out.SummarySnippet = cloneString(b.SummarySnippet)
	if b.BillURLs != nil {
		out.BillURLs = bytes.Clone(b.BillURLs)
	}
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
