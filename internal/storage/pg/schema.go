package pg

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS bills (
    "billNumber" TEXT PRIMARY KEY,
    "title" TEXT,
    "parliamentNumber" TEXT,
    "memberInCharge" TEXT,
    "committee" TEXT,
    "billUrls" TEXT,
    "filePath" TEXT,
    "summarySnippet" TEXT
);

CREATE INDEX IF NOT EXISTS idx_bills_title ON bills("title");
CREATE INDEX IF NOT EXISTS idx_bills_member_in_charge ON bills("memberInCharge");
`

// EnsureSchema creates the bills table and indexes over a dedicated connection,
// before the pool starts preparing statements against them.
func EnsureSchema(ctx context.Context, connStr string) error {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to DB: %w", err)
	}
	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to initialize database schema: %w", err)
	}
	return nil
}
