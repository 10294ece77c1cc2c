package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/DjordjeVuckovic/bills-db/internal/apperr"
	"github.com/DjordjeVuckovic/bills-db/internal/domain"
	"github.com/DjordjeVuckovic/bills-db/internal/storage"
	"github.com/labstack/echo/v4"
)

type InsertBillsResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

type SearchBillsResponse struct {
	Keyword string        `json:"keyword"`
	Count   int           `json:"count"`
	Bills   []domain.Bill `json:"bills"`
}

type BillsRouter struct {
	e       *echo.Echo
	storage storage.Store
}

func NewBillsRouter(e *echo.Echo, storage storage.Store) *BillsRouter {
	return &BillsRouter{
		e:       e,
		storage: storage,
	}
}

func (r *BillsRouter) Bind() {
	g := r.e.Group("/api/bills")
	g.POST("", r.insertBillsHandler)
	g.GET("/search/:keyword", r.searchBillsHandler)
	g.GET("/:billNumber", r.getBillHandler)
}

// insertBillsHandler godoc
// @Summary Upsert bills
// @Description Inserts or replaces every bill in the array within a single transaction.
// @Tags bills
// @Accept json
// @Produce json
// @Param bills body []domain.Bill true "Bills to upsert"
// @Success 201 {object} InsertBillsResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/bills [post]
func (r *BillsRouter) insertBillsHandler(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return err
	}

	bills, err := parseBills(body)
	if err != nil {
		return err
	}

	count, err := r.storage.SaveBulk(c.Request().Context(), bills)
	if err != nil {
		return apperr.NewInternal("Failed to insert bills", err)
	}

	return c.JSON(http.StatusCreated, InsertBillsResponse{
		Message: fmt.Sprintf("Successfully inserted %d bills", count),
		Count:   count,
	})
}

// getBillHandler godoc
// @Summary Get a bill by number
// @Tags bills
// @Produce json
// @Param billNumber path string true "Bill number"
// @Success 200 {object} domain.Bill
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/bills/{billNumber} [get]
func (r *BillsRouter) getBillHandler(c echo.Context) error {
	billNumber := pathParam(c, "billNumber")

	bill, err := r.storage.GetByNumber(c.Request().Context(), billNumber)
	if err != nil {
		return apperr.NewInternal("Failed to fetch bill", err)
	}
	if bill == nil {
		return apperr.NewNotFound(fmt.Sprintf("Bill with number %q not found", billNumber))
	}

	return c.JSON(http.StatusOK, bill)
}

// searchBillsHandler godoc
// @Summary Search bills by title
// @Description Returns every bill whose title contains the keyword as a literal substring.
// @Tags bills
// @Produce json
// @Param keyword path string true "Title keyword"
// @Success 200 {object} SearchBillsResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/bills/search/{keyword} [get]
func (r *BillsRouter) searchBillsHandler(c echo.Context) error {
	keyword := strings.TrimSpace(pathParam(c, "keyword"))
	if keyword == "" {
		return apperr.NewValidation("Search keyword cannot be empty")
	}

	bills, err := r.storage.SearchByTitle(c.Request().Context(), keyword)
	if err != nil {
		return apperr.NewInternal("Failed to search bills", err)
	}

	return c.JSON(http.StatusOK, SearchBillsResponse{
		Keyword: keyword,
		Count:   len(bills),
		Bills:   bills,
	})
}

// parseBills accepts only a non-empty JSON array of bill objects.
func parseBills(body []byte) ([]domain.Bill, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, apperr.NewValidation("Request body must be an array of bills")
	}

	var bills []domain.Bill
	if err := json.Unmarshal(trimmed, &bills); err != nil {
		return nil, apperr.NewValidationWrap("Request body must be an array of bills", err)
	}
	if len(bills) == 0 {
		return nil, apperr.NewValidation("Bills array cannot be empty")
	}
	return bills, nil
}

// pathParam returns the decoded value of a path parameter. Echo matches on the
// raw path when the URL carries escapes it cannot normalise (e.g. %2F).
func pathParam(c echo.Context, name string) string {
	v := c.Param(name)
	if c.Request().URL.RawPath == "" {
		return v
	}
	if decoded, err := url.PathUnescape(v); err == nil {
		return decoded
	}
	return v
}
