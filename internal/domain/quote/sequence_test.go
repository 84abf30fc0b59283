package quote

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func hist(ids ...string) []Quote {
	out := make([]Quote, len(ids))
	for i, id := range ids {
		out[i] = Quote{SequenceID: id}
	}
	return out
}

func TestNextSequenceID(t *testing.T) {
	y2025 := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		history []Quote
		now     time.Time
		want    string
	}{
		{"empty history", nil, y2025, "250001"},
		{"continues current year", hist("250001", "250002", "240099"), y2025, "250003"},
		{"skips malformed", hist("25ABCD", "250005"), y2025, "250006"},
		{"only malformed", hist("25ABCD"), y2025, "250001"},
		{"other years only", hist("240099", "230001"), y2025, "250001"},
		{"unordered history", hist("250010", "250002", "250007"), y2025, "250011"},
		{"signed suffix is malformed", hist("25+100", "250003"), y2025, "250004"},
		{"new year resets", hist("259999"), time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), "260001"},
		{"counter past four digits", hist("259999"), y2025, "2510000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextSequenceID(tt.history, tt.now))
		})
	}
}

func TestNextSequenceID_Deterministic(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	h := hist("250004", "250001")
	assert.Equal(t, NextSequenceID(h, now), NextSequenceID(h, now))
}

func TestYearPrefix(t *testing.T) {
	assert.Equal(t, "05", YearPrefix(time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "25", YearPrefix(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
}
