package feed

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// parseDelimited reads a delimited-text feed. The separator is chosen by
// presence of ';' vs ',' in the header line, rows are zipped positionally
// against the header, and missing trailing fields default to empty
// strings. Non-UTF-8 input is decoded as Windows-1250, the encoding
// Czech shop exports ship in.
func parseDelimited(data []byte) ([]RawRow, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var reader io.Reader = bytes.NewReader(data)
	if !utf8.Valid(data) {
		reader = transform.NewReader(reader, charmap.Windows1250.NewDecoder())
	}

	headerLine := data
	if idx := bytes.IndexByte(data, '\n'); idx >= 0 {
		headerLine = data[:idx]
	}
	separator := ','
	if bytes.ContainsRune(headerLine, ';') {
		separator = ';'
	}

	r := csv.NewReader(reader)
	r.Comma = separator
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	all, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read delimited feed: %w", err)
	}
	if len(all) < 2 {
		return nil, nil
	}

	header := make([]string, len(all[0]))
	for i, h := range all[0] {
		header[i] = strings.TrimSpace(h)
	}

	rows := make([]RawRow, 0, len(all)-1)
	for _, record := range all[1:] {
		if isBlank(record) {
			continue
		}
		row := make(RawRow, len(header))
		for i, key := range header {
			if key == "" {
				continue
			}
			if i < len(record) {
				row[key] = strings.TrimSpace(record[i])
			} else {
				row[key] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
