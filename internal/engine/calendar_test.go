package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name     string
		anchor   time.Time
		expected time.Time
	}{
		{
			name:     "monday stays monday",
			anchor:   date(2025, time.June, 2), // понедельник
			expected: date(2025, time.June, 2),
		},
		{
			name:     "wednesday goes back to monday",
			anchor:   date(2025, time.June, 4),
			expected: date(2025, time.June, 2),
		},
		{
			name:     "sunday belongs to the week started six days earlier",
			anchor:   date(2025, time.June, 8),
			expected: date(2025, time.June, 2),
		},
		{
			name:     "saturday",
			anchor:   date(2025, time.June, 7),
			expected: date(2025, time.June, 2),
		},
		{
			name:     "time of day is stripped",
			anchor:   time.Date(2025, time.June, 4, 18, 30, 12, 0, time.UTC),
			expected: date(2025, time.June, 2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StartOfWeek(tt.anchor))
		})
	}
}

func TestWindow(t *testing.T) {
	t.Run("seven days from monday of the anchor week", func(t *testing.T) {
		window := Window(date(2025, time.June, 4), 7, nil)

		require.Len(t, window, 7)
		assert.Equal(t, date(2025, time.June, 2), window[0])
		assert.Equal(t, date(2025, time.June, 8), window[6])

		// Дни строго последовательны
		for i := 1; i < len(window); i++ {
			assert.Equal(t, window[i-1].AddDate(0, 0, 1), window[i])
		}
	})

	t.Run("not-before floor drops leading dates without reordering", func(t *testing.T) {
		notBefore := date(2025, time.June, 4)
		window := Window(date(2025, time.June, 4), 7, &notBefore)

		require.Len(t, window, 5)
		assert.Equal(t, date(2025, time.June, 4), window[0])
		assert.Equal(t, date(2025, time.June, 8), window[4])
	})

	t.Run("floor after the whole window yields empty sequence", func(t *testing.T) {
		notBefore := date(2025, time.July, 1)
		window := Window(date(2025, time.June, 4), 7, &notBefore)

		assert.Empty(t, window)
	})

	t.Run("floor never lengthens the window", func(t *testing.T) {
		notBefore := date(2020, time.January, 1)
		window := Window(date(2025, time.June, 4), 7, &notBefore)

		assert.Len(t, window, 7)
	})

	t.Run("single day length", func(t *testing.T) {
		window := Window(date(2025, time.June, 4), 1, nil)

		require.Len(t, window, 1)
		assert.Equal(t, date(2025, time.June, 2), window[0])
	})

	t.Run("non-positive length", func(t *testing.T) {
		assert.Empty(t, Window(date(2025, time.June, 4), 0, nil))
		assert.Empty(t, Window(date(2025, time.June, 4), -3, nil))
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		notBefore := date(2025, time.June, 3)
		first := Window(date(2025, time.June, 6), 14, &notBefore)
		second := Window(date(2025, time.June, 6), 14, &notBefore)

		assert.Equal(t, first, second)
	})
}

func TestSingleDay(t *testing.T) {
	window := SingleDay(time.Date(2025, time.June, 4, 15, 45, 0, 0, time.UTC))

	require.Len(t, window, 1)
	assert.Equal(t, date(2025, time.June, 4), window[0])
}
