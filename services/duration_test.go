package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"zero", "00:00:00", 0},
		{"standard", "01:30:15", 5415},
		{"two digit hours", "05:03:00", 18180},
		{"hours past two digits", "100:00:00", 360000},
		{"missing seconds", "05:03", 18180},
		{"hours only", "2:", 7200},
		{"plain seconds", "90", 90},
		{"decimal seconds rounds", "90.4", 90},
		{"garbage", "abc", 0},
		{"empty", "", 0},
		{"whitespace", "   ", 0},
		{"negative number", "-5", 0},
		{"garbage component counts as zero", "aa:30:00", 1800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseDuration(tt.input))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		seconds  int
		expected string
	}{
		{"zero", 0, "00:00:00"},
		{"negative guards", -10, "00:00:00"},
		{"padded", 5415, "01:30:15"},
		{"hours unbounded", 360000, "100:00:00"},
		{"just under a minute", 59, "00:00:59"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDuration(tt.seconds))
		})
	}
}

func TestDurationRoundTrip(t *testing.T) {
	for _, s := range []int{1, 59, 60, 61, 3599, 3600, 3661, 86399, 86400, 360000, 999999} {
		assert.Equal(t, s, ParseDuration(FormatDuration(s)), "round trip for %d", s)
	}
}

func TestSecondsFromHours(t *testing.T) {
	assert.Equal(t, 3600, SecondsFromHours(1))
	assert.Equal(t, 5400, SecondsFromHours(1.5))
	assert.Equal(t, 0, SecondsFromHours(-2))
	assert.Equal(t, 0, SecondsFromHours(0))
}

func TestSecondsFromNumber(t *testing.T) {
	assert.Equal(t, 90, SecondsFromNumber(90))
	assert.Equal(t, 91, SecondsFromNumber(90.6))
	assert.Equal(t, 0, SecondsFromNumber(-1))
}
