package feed

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// parseSpreadsheet reads the first sheet of a spreadsheet-binary feed.
// Cells come back as raw values so spreadsheet serial dates survive as
// numbers for the canonicalizer to decode. Carriage-return artifacts in
// cell text are normalized to plain newlines.
func parseSpreadsheet(data []byte) ([]RawRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	all, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(all) < 2 {
		return nil, nil
	}

	header := make([]string, len(all[0]))
	for i, h := range all[0] {
		header[i] = strings.TrimSpace(normalizeNewlines(h))
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
				row[key] = strings.TrimSpace(normalizeNewlines(record[i]))
			} else {
				row[key] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
