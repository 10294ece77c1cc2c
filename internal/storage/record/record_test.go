package record

import (
	"database/sql"
	"testing"

	"github.com/DjordjeVuckovic/bills-db/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullBill(t *testing.T) domain.Bill {
	t.Helper()
	urls, err := domain.NewBillURLs([]map[string]string{
		{"label": "First Reading", "url": "https://example.org/c-10/1"},
		{"label": "Royal Assent", "url": "https://example.org/c-10/ra"},
	})
	require.NoError(t, err)

	return domain.Bill{
		BillNumber:       "C-10",
		Title:            domain.StringPtr("An Act respecting budgets"),
		ParliamentNumber: domain.StringPtr("44-1"),
		MemberInCharge:   domain.StringPtr("Hon. Member"),
		Committee:        domain.StringPtr("Finance"),
		BillURLs:         urls,
		FilePath:         domain.StringPtr("bills/c-10.pdf"),
		SummarySnippet:   domain.StringPtr("This enactment..."),
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		bill domain.Bill
	}{
		{name: "all fields", bill: fullBill(t)},
		{name: "only key", bill: domain.Bill{BillNumber: "S-2"}},
		{name: "empty strings kept", bill: domain.Bill{BillNumber: "S-3", Title: domain.StringPtr(""), Committee: domain.StringPtr("")}},
		{name: "object urls", bill: domain.Bill{BillNumber: "S-4", BillURLs: domain.BillURLs(`{"en":"https://a","fr":"https://b"}`)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, err := Encode(tt.bill)
			require.NoError(t, err)

			assert.Equal(t, tt.bill, Decode(row))
		})
	}
}

func TestEncode_NullsForAbsentFields(t *testing.T) {
	row, err := Encode(domain.Bill{BillNumber: "C-11", Title: domain.StringPtr("Budget Act")})
	require.NoError(t, err)

	assert.Equal(t, "C-11", row.BillNumber)
	assert.Equal(t, sql.NullString{String: "Budget Act", Valid: true}, row.Title)
	assert.False(t, row.ParliamentNumber.Valid)
	assert.False(t, row.MemberInCharge.Valid)
	assert.False(t, row.Committee.Valid)
	assert.False(t, row.BillURLs.Valid)
	assert.False(t, row.FilePath.Valid)
	assert.False(t, row.SummarySnippet.Valid)
}

func TestEncode_BillURLsAsText(t *testing.T) {
	row, err := Encode(fullBill(t))
	require.NoError(t, err)

	require.True(t, row.BillURLs.Valid)
	assert.JSONEq(t, `[
		{"label":"First Reading","url":"https://example.org/c-10/1"},
		{"label":"Royal Assent","url":"https://example.org/c-10/ra"}
	]`, row.BillURLs.String)
}

func TestEncode_RejectsInvalidBillURLs(t *testing.T) {
	_, err := Encode(domain.Bill{BillNumber: "C-12", BillURLs: domain.BillURLs(`{"broken"`)})
	assert.Error(t, err)
}

func TestDecode_MalformedBillURLsIsAbsent(t *testing.T) {
	row := Row{
		BillNumber: "C-13",
		Title:      sql.NullString{String: "Kept", Valid: true},
		BillURLs:   sql.NullString{String: `[{"url":`, Valid: true},
	}

	bill := Decode(row)

	assert.Nil(t, bill.BillURLs)
	require.NotNil(t, bill.Title)
	assert.Equal(t, "Kept", *bill.Title)
}

func TestRow_ArgsMatchColumns(t *testing.T) {
	var r Row
	assert.Len(t, r.Args(), len(Columns))
	assert.Len(t, r.ScanDest(), len(Columns))
}
