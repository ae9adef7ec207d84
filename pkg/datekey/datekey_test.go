package datekey

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	t.Run("should zero-pad month and day", func(t *testing.T) {
		assert.Equal(t, "2026-01-05", Encode(2026, 1, 5))
		assert.Equal(t, "2026-12-31", Encode(2026, 12, 31))
	})
}

func TestMonthKey(t *testing.T) {
	t.Run("should point at the first day of the month", func(t *testing.T) {
		assert.Equal(t, "2026-03-01", MonthKey(2026, 3))
	})
}

func TestDecode(t *testing.T) {
	t.Run("should decode a valid key", func(t *testing.T) {
		y, m, d, err := Decode("2026-02-09")

		require.NoError(t, err)
		assert.Equal(t, 2026, y)
		assert.Equal(t, 2, m)
		assert.Equal(t, 9, d)
	})

	t.Run("should reject malformed keys", func(t *testing.T) {
		for _, key := range []string{"", "2026-1-5", "2026/01/05", "20260105", "2026-01-05T00:00", "abcd-ef-gh"} {
			_, _, _, err := Decode(key)
			assert.ErrorIs(t, err, ErrInvalidFormat, "key %q", key)
		}
	})

	t.Run("should round-trip every day of the tracked year", func(t *testing.T) {
		for date := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC); date.Year() == 2026; date = date.AddDate(0, 0, 1) {
			key := Encode(date.Year(), int(date.Month()), date.Day())
			y, m, d, err := Decode(key)

			require.NoError(t, err)
			assert.Equal(t, date.Year(), y)
			assert.Equal(t, int(date.Month()), m)
			assert.Equal(t, date.Day(), d)
		}
	})
}

func TestInMonth(t *testing.T) {
	t.Run("should match exact year and month only", func(t *testing.T) {
		assert.True(t, InMonth("2026-01-15", 2026, 1))
		assert.False(t, InMonth("2026-02-01", 2026, 1))
		// Dec 31 of the previous year must not leak into January.
		assert.False(t, InMonth("2025-12-31", 2026, 1))
	})

	t.Run("should never match malformed keys", func(t *testing.T) {
		assert.False(t, InMonth("not-a-key", 2026, 1))
	})
}

func TestIsCalendarKey(t *testing.T) {
	t.Run("should accept keys with plausible month and day", func(t *testing.T) {
		assert.True(t, IsCalendarKey("2026-01-06"))
		assert.True(t, IsCalendarKey("2026-12-31"))
	})

	t.Run("should reject pattern-matching keys outside calendar ranges", func(t *testing.T) {
		assert.False(t, IsCalendarKey("2026-13-40"))
		assert.False(t, IsCalendarKey("2026-00-10"))
		assert.False(t, IsCalendarKey("2026-01-00"))
		assert.False(t, IsCalendarKey("2026-01-32"))
	})

	t.Run("should reject malformed keys", func(t *testing.T) {
		assert.False(t, IsCalendarKey("2026/01/06"))
	})
}
