package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// BillURLs is the structured billUrls value of a bill, kept as compact JSON.
// A nil value means "no value". Values produced by UnmarshalJSON or NewBillURLs
// are always canonical, so encoding and decoding them round-trips exactly.
type BillURLs json.RawMessage

var errInvalidBillURLs = errors.New("billUrls is not valid JSON")

// NewBillURLs marshals v into its canonical BillURLs form.
func NewBillURLs(v any) (BillURLs, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal billUrls: %w", err)
	}
	return canonicalBillURLs(raw)
}

// Present reports whether the value is set.
func (u BillURLs) Present() bool {
	return len(u) > 0
}

// Value unmarshals the structured value into v.
func (u BillURLs) Value(v any) error {
	if !u.Present() {
		return nil
	}
	return json.Unmarshal(u, v)
}

func (u BillURLs) MarshalJSON() ([]byte, error) {
	if !u.Present() {
		return []byte("null"), nil
	}
	return u, nil
}

func (u *BillURLs) UnmarshalJSON(data []byte) error {
	c, err := canonicalBillURLs(data)
	if err != nil {
		return err
	}
	*u = c
	return nil
}

// EncodeBillURLs returns the storage text for u, or nil when u has no value.
func EncodeBillURLs(u BillURLs) (*string, error) {
	if !u.Present() {
		return nil, nil
	}
	c, err := canonicalBillURLs(u)
	if err != nil {
		return nil, err
	}
	s := string(c)
	return &s, nil
}

// DecodeBillURLs parses stored text back into a BillURLs. A nil or empty text
// decodes to no value; malformed text returns no value together with the error.
func DecodeBillURLs(text *string) (BillURLs, error) {
	if text == nil || *text == "" {
		return nil, nil
	}
	c, err := canonicalBillURLs([]byte(*text))
	if err != nil {
		return nil, err
	}
	return c, nil
}

func canonicalBillURLs(data []byte) (BillURLs, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if !json.Valid(trimmed) {
		return nil, errInvalidBillURLs
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidBillURLs, err)
	}
	return buf.Bytes(), nil
}
