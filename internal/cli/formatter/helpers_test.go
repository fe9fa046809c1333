package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRelativeDateFrom(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"today", now, "Today"},
		{"tomorrow", now.Add(24 * time.Hour), "Tomorrow"},
		{"yesterday", now.Add(-24 * time.Hour), "Yesterday"},
		{"5 days out", now.Add(5 * 24 * time.Hour), "In 5d"},
		{"3 weeks out", now.Add(21 * 24 * time.Hour), "In 3w"},
		{"3 months out", now.Add(90 * 24 * time.Hour), "In 3mo"},
		{"4 days ago", now.Add(-4 * 24 * time.Hour), "4d ago"},
		{"2 weeks ago", now.Add(-14 * 24 * time.Hour), "2w ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeDateFrom(tt.input, now))
		})
	}
}

func TestFollowUpDate(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "--", stripANSI(FollowUpDate(nil, now)))

	past := now.AddDate(0, 0, -3)
	assert.Equal(t, "3d ago", stripANSI(FollowUpDate(&past, now)))

	soon := now.AddDate(0, 0, 2)
	assert.Equal(t, "In 2d", stripANSI(FollowUpDate(&soon, now)))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "abc  ", PadRight("abc", 5))
	assert.Equal(t, "abcd…", PadRight("abcdef", 5))
	// Rune-aware: accented names must not overflow the column.
	assert.Equal(t, "Joã…", PadRight("João Silva", 4))
}

func TestTruncID(t *testing.T) {
	assert.Equal(t, "12345678", stripANSI(TruncID("123456789abc")))
	assert.Equal(t, "short", stripANSI(TruncID("short")))
}
