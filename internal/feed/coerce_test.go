package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"499", 499, true},
		{"499,90", 499.9, true},
		{"1 299,50", 1299.5, true},
		{"1 299", 1299, true}, // non-breaking space separator
		{"-12.5", -12.5, true},
		{"", 0, false},
		{"abc", 0, false},
	}
	for _, tc := range cases {
		got, ok := parseNumber(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		if ok {
			assert.InDelta(t, tc.want, got, 0.001, tc.in)
		}
	}
}

func TestParseBool(t *testing.T) {
	for _, truthy := range []string{"1", "true", "YES", "ano", "Ano", "on"} {
		assert.True(t, parseBool(truthy), truthy)
	}
	for _, falsy := range []string{"", "0", "false", "ne", "no", "vypnuto"} {
		assert.False(t, parseBool(falsy), falsy)
	}
}

func TestParseDateLayouts(t *testing.T) {
	cases := map[string]time.Time{
		"2025-06-01":          time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		"01.06.2025":          time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		"1.6.2025":            time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		"2025-06-01 13:30:00": time.Date(2025, 6, 1, 13, 30, 0, 0, time.UTC),
	}
	for in, want := range cases {
		got, ok := parseDate(in)
		require.True(t, ok, in)
		assert.True(t, got.Equal(want), in)
	}

	_, ok := parseDate("not a date")
	assert.False(t, ok)
}

func TestParseDateSerial(t *testing.T) {
	// Day 45809 of the 1899-12-30 epoch.
	want := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	got, ok := parseDate(45809.0)
	require.True(t, ok)
	assert.True(t, got.Equal(want), got)

	// Serials surviving as text decode the same way.
	got, ok = parseDate("45809")
	require.True(t, ok)
	assert.True(t, got.Equal(want), got)

	// A serial with a day fraction carries the time of day.
	got, ok = parseDate(45809.5)
	require.True(t, ok)
	assert.Equal(t, 12, got.Hour())
}
