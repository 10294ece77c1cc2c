package domain

import (
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/bills-db/internal/apperr"
)

// Bill is a legislative bill record. Every field except BillNumber is optional;
// a nil pointer (or nil BillURLs) means the value is absent and is stored as NULL.
type Bill struct {
	BillNumber       string   `json:"billNumber"`
	Title            *string  `json:"title"`
	ParliamentNumber *string  `json:"parliamentNumber"`
	MemberInCharge   *string  `json:"memberInCharge"`
	Committee        *string  `json:"committee"`
	BillURLs         BillURLs `json:"billUrls" swaggertype:"object"`
	FilePath         *string  `json:"filePath"`
	SummarySnippet   *string  `json:"summarySnippet"`
}

// Validate checks the fields required for persistence.
func (b Bill) Validate() error {
	if strings.TrimSpace(b.BillNumber) == "" {
		return apperr.NewValidation("each bill must have a billNumber")
	}
	return nil
}

// ValidateAll validates every bill and reports the index of the first invalid one.
func ValidateAll(bills []Bill) error {
	for i, b := range bills {
		if err := b.Validate(); err != nil {
			return apperr.NewValidationWrap(fmt.Sprintf("invalid bill at index %d", i), err)
		}
	}
	return nil
}

// StringPtr returns a pointer to s. Handy when building bills in code.
func StringPtr(s string) *string {
	return &s
}
