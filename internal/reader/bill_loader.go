package reader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/DjordjeVuckovic/bills-db/internal/domain"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the loader format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported bills file extension %q: expected .json, .yaml or .yml", filepath.Ext(path))
	}
}

// BillLoader reads a list of bills from a JSON array or a YAML sequence.
type BillLoader struct {
	reader io.Reader
	format Format
}

func NewBillLoader(reader io.Reader, format Format) *BillLoader {
	return &BillLoader{
		reader: reader,
		format: format,
	}
}

func (l *BillLoader) Load(validate bool) ([]domain.Bill, error) {
	var bills []domain.Bill
	var err error

	switch l.format {
	case FormatJSON:
		err = json.NewDecoder(l.reader).Decode(&bills)
	case FormatYAML:
		bills, err = decodeYAML(l.reader)
	default:
		return nil, fmt.Errorf("unsupported bills format %q", l.format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode bills: %w", err)
	}

	if validate {
		if err := domain.ValidateAll(bills); err != nil {
			return nil, err
		}
	}
	return bills, nil
}

// decodeYAML goes through a generic value and JSON so billUrls keeps the same
// canonical form as bills posted over HTTP.
func decodeYAML(r io.Reader) ([]domain.Bill, error) {
	var raw []map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}

	var bills []domain.Bill
	if err := json.Unmarshal(data, &bills); err != nil {
		return nil, err
	}
	return bills, nil
}
