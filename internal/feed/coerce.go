package feed

import (
	"strconv"
	"strings"
	"time"
)

// cellString renders any raw cell value as text.
func cellString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return ""
	}
}

// parseNumber accepts comma decimal separators and embedded whitespace
// (including non-breaking spaces used as thousand separators in
// localized exports). Failure yields (0, false), never an error: an
// unparsable number degrades to an absent field.
func parseNumber(s string) (float64, bool) {
	s = strings.Map(func(r rune) rune {
		if r == ' ' || r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", ".")
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseInt(s string) (int, bool) {
	n, ok := parseNumber(s)
	if !ok {
		return 0, false
	}
	return int(n), true
}

// Truthy tokens accepted by boolean coercion, matched case-insensitively.
// Anything else is false.
var truthyTokens = map[string]bool{
	"1": true, "true": true, "yes": true, "y": true, "on": true, "ano": true,
}

func parseBool(s string) bool {
	return truthyTokens[strings.ToLower(strings.TrimSpace(s))]
}

// Spreadsheet serial dates count days from this epoch.
var serialDateEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02.01.2006 15:04:05",
	"02.01.2006",
	"2.1.2006",
	"02/01/2006",
	"2006/01/02",
}

// parseDate accepts native time values, spreadsheet serial numbers and
// generic date strings. Unparsable values are silently dropped; the
// field becomes absent, not an error.
func parseDate(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case float64:
		return serialToDate(t), true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return time.Time{}, false
		}
		// Exports produced by spreadsheets sometimes leave serials as text.
		if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 59 && serial < 200000 {
			return serialToDate(serial), true
		}
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return parsed, true
			}
		}
	}
	return time.Time{}, false
}

func serialToDate(serial float64) time.Time {
	days := int(serial)
	frac := serial - float64(days)
	return serialDateEpoch.AddDate(0, 0, days).
		Add(time.Duration(frac * 24 * float64(time.Hour)))
}
