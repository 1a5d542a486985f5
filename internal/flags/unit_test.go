package flags

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUnit_IsValid checks that only defined units pass validation.
func TestUnit_IsValid(t *testing.T) {
	for _, u := range []Unit{Nanoseconds, Microseconds, Milliseconds, Seconds, Minutes, Hours, Days, Weeks} {
		assert.True(t, u.IsValid(), u)
	}
	assert.False(t, Unit("fortnights").IsValid())
	assert.False(t, Unit("").IsValid())
}

// TestUnit_Duration verifies unit-to-duration conversion, including the
// fixed 24-hour day and 7-day week.
func TestUnit_Duration(t *testing.T) {
	tests := []struct {
		unit     Unit
		n        int
		expected time.Duration
	}{
		{Nanoseconds, 500, 500 * time.Nanosecond},
		{Milliseconds, 250, 250 * time.Millisecond},
		{Seconds, 30, 30 * time.Second},
		{Minutes, 10, 10 * time.Minute},
		{Hours, 2, 2 * time.Hour},
		{Days, 3, 72 * time.Hour},
		{Weeks, 1, 7 * 24 * time.Hour},
		{Seconds, 0, 0},
		{Seconds, -5, -5 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.unit.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.unit.Duration(tt.n))
		})
	}
}

// TestParseUnit verifies string-to-unit conversion, including case
// normalization and error cases.
func TestParseUnit(t *testing.T) {
	tests := []struct {
		input    string
		expected Unit
		hasError bool
	}{
		{"seconds", Seconds, false},
		{"minutes", Minutes, false},
		{"weeks", Weeks, false},
		{"Seconds", Seconds, false},
		{"HOURS", Hours, false},
		{" days ", Days, false},
		{"second", "", true},
		{"fortnights", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseUnit(tt.input)
			if tt.hasError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}
