package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/DjordjeVuckovic/bills-db/internal/domain"
	"github.com/DjordjeVuckovic/bills-db/internal/storage"
	"github.com/DjordjeVuckovic/bills-db/internal/storage/record"
)

var (
	selectColumns = strings.Join(record.Columns, ", ")

	upsertSQL = `
		INSERT INTO bills (` + selectColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(billNumber) DO UPDATE SET
			title = excluded.title,
			parliamentNumber = excluded.parliamentNumber,
			memberInCharge = excluded.memberInCharge,
			committee = excluded.committee,
			billUrls = excluded.billUrls,
			filePath = excluded.filePath,
			summarySnippet = excluded.summarySnippet
	`
	getSQL    = `SELECT ` + selectColumns + ` FROM bills WHERE billNumber = ?`
	searchSQL = `SELECT ` + selectColumns + ` FROM bills WHERE title LIKE ? ESCAPE '` + storage.LikeEscape + `'`
)

var _ storage.Store = (*Store)(nil)

// Store is the SQLite data-access layer. It owns db and the prepared statements
// built from it; Close releases both.
type Store struct {
	db *sql.DB

	upsertStmt *sql.Stmt
	getStmt    *sql.Stmt
	searchStmt *sql.Stmt
}

// Open opens the database at cfg.Path, ensures the schema and prepares statements.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	db, err := OpenDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	s, err := NewStore(ctx, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewStore prepares all statements against an initialized db. The returned
// Store takes ownership of db.
func NewStore(ctx context.Context, db *sql.DB) (*Store, error) {
	s := &Store{db: db}

	var err error
	if s.upsertStmt, err = db.PrepareContext(ctx, upsertSQL); err != nil {
		return nil, fmt.Errorf("failed to prepare upsert statement: %w", err)
	}
	if s.getStmt, err = db.PrepareContext(ctx, getSQL); err != nil {
		s.closeStmts()
		return nil, fmt.Errorf("failed to prepare get statement: %w", err)
	}
	if s.searchStmt, err = db.PrepareContext(ctx, searchSQL); err != nil {
		s.closeStmts()
		return nil, fmt.Errorf("failed to prepare search statement: %w", err)
	}

	return s, nil
}

func (s *Store) SaveBulk(ctx context.Context, bills []domain.Bill) (int, error) {
	if err := domain.ValidateAll(bills); err != nil {
		return 0, err
	}

	rows := make([]record.Row, len(bills))
	for i, b := range bills {
		row, err := record.Encode(b)
		if err != nil {
			return 0, err
		}
		rows[i] = row
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.Error("Failed to rollback bills transaction", "error", err)
		}
	}()

	stmt := tx.StmtContext(ctx, s.upsertStmt)
	defer stmt.Close()

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx, row.Args()...); err != nil {
			return 0, fmt.Errorf("failed to upsert bill %s: %w", row.BillNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit bills transaction: %w", err)
	}

	slog.Info("Successfully inserted bills into database", "count", len(rows))
	return len(rows), nil
}

func (s *Store) GetByNumber(ctx context.Context, billNumber string) (*domain.Bill, error) {
	var row record.Row
	err := s.getStmt.QueryRowContext(ctx, billNumber).Scan(row.ScanDest()...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bill %s: %w", billNumber, err)
	}

	bill := record.Decode(row)
	return &bill, nil
}

func (s *Store) SearchByTitle(ctx context.Context, keyword string) ([]domain.Bill, error) {
	rows, err := s.searchStmt.QueryContext(ctx, storage.ContainsPattern(keyword))
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
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	s.closeStmts()
	if err := s.db.Close(); err != nil {
		return err
	}
	slog.Info("Database connection closed")
	return nil
}

func (s *Store) closeStmts() {
	for _, stmt := range []*sql.Stmt{s.upsertStmt, s.getStmt, s.searchStmt} {
		if stmt != nil {
			_ = stmt.Close()
		}
	}
}
