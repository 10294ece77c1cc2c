package pg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/DjordjeVuckovic/bills-db/internal/domain"
	"github.com/DjordjeVuckovic/bills-db/internal/storage"
	"github.com/DjordjeVuckovic/bills-db/internal/storage/record"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	upsertStmt = "bills_upsert"
	getStmt    = "bills_get"
	searchStmt = "bills_search"
)

var statements = func() map[string]string {
	quoted := make([]string, len(record.Columns))
	updates := make([]string, 0, len(record.Columns)-1)
	for i, c := range record.Columns {
		quoted[i] = `"` + c + `"`
		if i > 0 {
			updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", quoted[i], quoted[i]))
		}
	}
	cols := strings.Join(quoted, ", ")

	return map[string]string{
		upsertStmt: `INSERT INTO bills (` + cols + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT ("billNumber") DO UPDATE SET ` + strings.Join(updates, ", "),
		getStmt:    `SELECT ` + cols + ` FROM bills WHERE "billNumber" = $1`,
		searchStmt: `SELECT ` + cols + ` FROM bills WHERE "title" LIKE $1 ESCAPE '` + storage.LikeEscape + `'`,
	}
}()

// prepareStatements is installed as the pool's AfterConnect hook so every
// connection has the bills statements ready before it serves a query.
func prepareStatements(ctx context.Context, conn *pgx.Conn) error {
	for name, sql := range statements {
		if _, err := conn.Prepare(ctx, name, sql); err != nil {
			return fmt.Errorf("failed to prepare %s: %w", name, err)
		}
	}
	return nil
}

var _ storage.Store = (*Store)(nil)

type Store struct {
	pool *ConnectionPool
	db   *pgxpool.Pool
}

// Open ensures the schema and creates a pool whose connections prepare the
// bills statements on connect.
func Open(ctx context.Context, cfg PoolConfig) (*Store, error) {
	if err := EnsureSchema(ctx, cfg.ConnStr); err != nil {
		return nil, err
	}

	cfg.AfterConnect = prepareStatements
	pool, err := NewConnectionPool(ctx, cfg)
	if err != nil {
		return nil, err
	}

	slog.Info("Connected to PostgreSQL database")
	return &Store{pool: pool, db: pool.GetConn()}, nil
}

func (s *Store) SaveBulk(ctx context.Context, bills []domain.Bill) (int, error) {
	if err := domain.ValidateAll(bills); err != nil {
		return 0, err
	}

	batch := &pgx.Batch{}
	for _, b := range bills {
		row, err := record.Encode(b)
		if err != nil {
			return 0, err
		}
		batch.Queue(upsertStmt, row.Args()...)
	}

	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		br := tx.SendBatch(ctx, batch)
		for _, b := range bills {
			if _, err := br.Exec(); err != nil {
				br.Close()
				return fmt.Errorf("failed to upsert bill %s: %w", b.BillNumber, err)
			}
		}
		return br.Close()
	})
	if err != nil {
		return 0, fmt.Errorf("failed to bulk upsert bills: %w", err)
	}

	slog.Info("Successfully inserted bills into database", "count", len(bills))
	return len(bills), nil
}

func (s *Store) GetByNumber(ctx context.Context, billNumber string) (*domain.Bill, error) {
	var row record.Row
	err := s.db.QueryRow(ctx, getStmt, billNumber).Scan(row.ScanDest()...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bill %s: %w", billNumber, err)
	}

	bill := record.Decode(row)
	return &bill, nil
}

func (s *Store) SearchByTitle(ctx context.Context, keyword string) ([]domain.Bill, error) {
	rows, err := s.db.Query(ctx, searchStmt, storage.ContainsPattern(keyword))
	if err != nil {
		return nil, fmt.Errorf("failed to execute search query: %w", err)
	}
	defer rows.Close()

	bills := make([]domain.Bill, 0)
	for rows.Next() {
		var row record.Row
		if err := rows.Scan(row.ScanDest()...); err != nil {
			return nil, fmt.Errorf("failed to scan bill: %w", err)
		}
		bills = append(bills, record.Decode(row))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	slog.Info("Search completed", "keyword", keyword, "results", len(bills))
	return bills, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) Close() error {
	s.pool.Close()
	slog.Info("Database connection closed")
	return nil
}
