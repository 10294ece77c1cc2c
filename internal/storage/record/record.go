// Package record maps bills to and from their column representation.
package record

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/bills-db/internal/domain"
)

// Columns lists the bills table columns in the order Row.Args and Row.ScanDest use.
var Columns = []string{
	"billNumber",
	"title",
	"parliamentNumber",
	"memberInCharge",
	"committee",
	"billUrls",
	"filePath",
	"summarySnippet",
}

// Row is a bill as stored: one non-null key and seven nullable text columns.
type Row struct {
	BillNumber       string
	Title            sql.NullString
	ParliamentNumber sql.NullString
	MemberInCharge   sql.NullString
	Committee        sql.NullString
	BillURLs         sql.NullString
	FilePath         sql.NullString
	SummarySnippet   sql.NullString
}

// Encode converts a bill into its row form, serializing billUrls.
func Encode(b domain.Bill) (Row, error) {
	urls, err := domain.EncodeBillURLs(b.BillURLs)
	if err != nil {
		return Row{}, fmt.Errorf("failed to encode billUrls for bill %s: %w", b.BillNumber, err)
	}

	return Row{
		BillNumber:       b.BillNumber,
		Title:            nullString(b.Title),
		ParliamentNumber: nullString(b.ParliamentNumber),
		MemberInCharge:   nullString(b.MemberInCharge),
		Committee:        nullString(b.Committee),
		BillURLs:         nullString(urls),
		FilePath:         nullString(b.FilePath),
		SummarySnippet:   nullString(b.SummarySnippet),
	}, nil
}

// Decode converts a row back into a bill. It never fails: malformed billUrls
// text is logged and decoded as no value.
func Decode(r Row) domain.Bill {
	urls, err := domain.DecodeBillURLs(stringPtr(r.BillURLs))
	if err != nil {
		slog.Warn("Error parsing billUrls JSON", "billNumber", r.BillNumber, "error", err)
		urls = nil
	}

	return domain.Bill{
		BillNumber:       r.BillNumber,
		Title:            stringPtr(r.Title),
		ParliamentNumber: stringPtr(r.ParliamentNumber),
		MemberInCharge:   stringPtr(r.MemberInCharge),
		Committee:        stringPtr(r.Committee),
		BillURLs:         urls,
		FilePath:         stringPtr(r.FilePath),
		SummarySnippet:   stringPtr(r.SummarySnippet),
	}
}

// Args returns the row values in Columns order, for statement parameters.
func (r Row) Args() []any {
	return []any{
		r.BillNumber,
		r.Title,
		r.ParliamentNumber,
		r.MemberInCharge,
		r.Committee,
		r.BillURLs,
		r.FilePath,
		r.SummarySnippet,
	}
}

// ScanDest returns pointers to the row fields in Columns order.
func (r *Row) ScanDest() []any {
	return []any{
		&r.BillNumber,
		&r.Title,
		&r.ParliamentNumber,
		&r.MemberInCharge,
		&r.Committee,
		&r.BillURLs,
		&r.FilePath,
		&r.SummarySnippet,
	}
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
