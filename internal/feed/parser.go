// Package feed decodes exported catalog files (delimited text,
// spreadsheet binary, markup) into canonical product and category
// records. Parsing operates on already-resident byte buffers only; no
// I/O happens here.
package feed

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	catalogdomain "github.com/smallbiznis/feedscope/internal/catalog/domain"
)

// RawRow is one loosely-typed parsed row: string-keyed, values are
// string, float64 or time.Time depending on what the container could
// preserve natively. Two reserved keys carry structured extras that
// survive no flat column model: parsed parameter pairs and the image
// count observed by the markup parser.
type RawRow map[string]any

const (
	keyParams     = "__params"
	keyImageCount = "__image_count"
)

var (
	// ErrUnsupportedFormat is returned for file extensions no parser
	// claims.
	ErrUnsupportedFormat = errors.New("unsupported_feed_format")
	// ErrEmptyFeed is returned when a recognized container decodes to
	// zero rows.
	ErrEmptyFeed = errors.New("empty_feed")
)

// Parse decodes data into raw rows. The container format is selected by
// file-name extension, not content sniffing. Empty input inside a valid
// container is an ErrEmptyFeed; malformed content inside rows is not an
// error here; it becomes issues downstream.
func Parse(data []byte, fileName string) ([]RawRow, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	var (
		rows []RawRow
		err  error
	)
	switch ext {
	case ".csv", ".tsv", ".txt":
		rows, err = parseDelimited(data)
	case ".xlsx", ".xls":
		rows, err = parseSpreadsheet(data)
	case ".xml":
		rows, err = parseMarkup(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyFeed
	}
	return rows, nil
}

// ParseProducts parses and canonicalizes a product feed.
func ParseProducts(data []byte, fileName string) ([]catalogdomain.ProductRecord, error) {
	rows, err := Parse(data, fileName)
	if err != nil {
		return nil, err
	}
	return CanonicalizeProducts(rows), nil
}

// ParseCategories parses and canonicalizes a category feed.
func ParseCategories(data []byte, fileName string) ([]catalogdomain.CategoryRecord, error) {
	rows, err := Parse(data, fileName)
	if err != nil {
		return nil, err
	}
	return CanonicalizeCategories(rows), nil
}
