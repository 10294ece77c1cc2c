package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/bills-db/internal/apperr"
	"github.com/DjordjeVuckovic/bills-db/internal/domain"
	"github.com/DjordjeVuckovic/bills-db/internal/storage"
	"github.com/DjordjeVuckovic/bills-db/internal/storage/in_mem"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct {
	err error
}

func (f failingStore) SaveBulk(context.Context, []domain.Bill) (int, error) { return 0, f.err }
func (f failingStore) GetByNumber(context.Context, string) (*domain.Bill, error) {
	return nil, f.err
}
func (f failingStore) SearchByTitle(context.Context, string) ([]domain.Bill, error) {
	return nil, f.err
}
func (f failingStore) Ping(context.Context) error { return f.err }
func (f failingStore) Close() error               { return nil }

func newTestEcho(store storage.Store) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	NewBillsRouter(e, store).Bind()
	return e
}

func do(t *testing.T, e *echo.Echo, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded), rec.Body.String())
	}
	return rec, decoded
}

func TestInsertBills_Created(t *testing.T) {
	store := in_mem.NewInMemStore()
	e := newTestEcho(store)

	rec, body := do(t, e, http.MethodPost, "/api/bills", `[
		{"billNumber":"C-10","title":"An Act"},
		{"billNumber":"C-11","title":"Budget Act","billUrls":[{"label":"Text","url":"https://example.org/c-11"}]}
	]`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Successfully inserted 2 bills", body["message"])
	assert.Equal(t, float64(2), body["count"])

	got, err := store.GetByNumber(context.Background(), "C-11")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.JSONEq(t, `[{"label":"Text","url":"https://example.org/c-11"}]`, string(got.BillURLs))
}

func TestInsertBills_BadBodies(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "object", body: `{"billNumber":"C-1"}`, wantMsg: "Request body must be an array of bills"},
		{name: "empty body", body: ``, wantMsg: "Request body must be an array of bills"},
		{name: "empty array", body: `[]`, wantMsg: "Bills array cannot be empty"},
		{name: "array of numbers", body: `[1, 2]`, wantMsg: "Request body must be an array of bills"},
		{name: "missing billNumber", body: `[{"billNumber":"C-1"},{"title":"x"}]`, wantMsg: "invalid bill at index 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := in_mem.NewInMemStore()
			e := newTestEcho(store)

			rec, body := do(t, e, http.MethodPost, "/api/bills", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, body["error"], tt.wantMsg)

			got, err := store.GetByNumber(context.Background(), "C-1")
			require.NoError(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestInsertBills_StorageFailure(t *testing.T) {
	e := newTestEcho(failingStore{err: errors.New("database is locked")})

	rec, body := do(t, e, http.MethodPost, "/api/bills", `[{"billNumber":"C-1"}]`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to insert bills", body["error"])
	assert.Equal(t, "database is locked", body["details"])
}

func TestGetBill(t *testing.T) {
	store := in_mem.NewInMemStore()
	_, err := store.SaveBulk(context.Background(), []domain.Bill{
		{BillNumber: "C-10", Title: domain.StringPtr("An Act"), BillURLs: domain.BillURLs(`{"en":"https://example.org"}`)},
		{BillNumber: "C/12", Title: domain.StringPtr("Slashed")},
	})
	require.NoError(t, err)
	e := newTestEcho(store)

	rec, body := do(t, e, http.MethodGet, "/api/bills/C-10", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "C-10", body["billNumber"])
	assert.Equal(t, "An Act", body["title"])
	assert.Nil(t, body["committee"])
	assert.Contains(t, body, "committee")
	assert.Equal(t, map[string]any{"en": "https://example.org"}, body["billUrls"])

	rec, body = do(t, e, http.MethodGet, "/api/bills/C%2F12", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "C/12", body["billNumber"])
}

func TestGetBill_NotFound(t *testing.T) {
	e := newTestEcho(in_mem.NewInMemStore())

	rec, body := do(t, e, http.MethodGet, "/api/bills/X-1", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, `Bill with number "X-1" not found`, body["error"])
}

func TestGetBill_StorageFailure(t *testing.T) {
	e := newTestEcho(failingStore{err: errors.New("disk I/O error")})

	rec, body := do(t, e, http.MethodGet, "/api/bills/C-1", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to fetch bill", body["error"])
	assert.Equal(t, "disk I/O error", body["details"])
}

func TestSearchBills(t *testing.T) {
	store := in_mem.NewInMemStore()
	_, err := store.SaveBulk(context.Background(), []domain.Bill{
		{BillNumber: "C-10", Title: domain.StringPtr("An Act")},
		{BillNumber: "C-11", Title: domain.StringPtr("Budget Act")},
		{BillNumber: "C-12", Title: domain.StringPtr("Ways and Means")},
	})
	require.NoError(t, err)
	e := newTestEcho(store)

	rec, body := do(t, e, http.MethodGet, "/api/bills/search/%20Act%20", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Act", body["keyword"])
	assert.Equal(t, float64(2), body["count"])

	var numbers []string
	for _, b := range body["bills"].([]any) {
		numbers = append(numbers, b.(map[string]any)["billNumber"].(string))
	}
	assert.ElementsMatch(t, []string{"C-10", "C-11"}, numbers)
}

func TestSearchBills_NoMatchIsEmptyArray(t *testing.T) {
	e := newTestEcho(in_mem.NewInMemStore())

	rec, body := do(t, e, http.MethodGet, "/api/bills/search/Senate", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), body["count"])
	assert.Equal(t, []any{}, body["bills"])
}

func TestSearchBills_BlankKeyword(t *testing.T) {
	e := newTestEcho(in_mem.NewInMemStore())

	rec, body := do(t, e, http.MethodGet, "/api/bills/search/%20%20", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Search keyword cannot be empty", body["error"])
}

func TestSearchBills_StorageFailure(t *testing.T) {
	e := newTestEcho(failingStore{err: errors.New("boom")})

	rec, body := do(t, e, http.MethodGet, "/api/bills/search/Act", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to search bills", body["error"])
}
