package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShift(t *testing.T) {
	for _, valid := range []string{"morning", "afternoon", "evening"} {
		shift, err := ParseShift(valid)
		require.NoError(t, err)
		assert.Equal(t, Shift(valid), shift)
	}

	for _, invalid := range []string{"", "night", "MORNING", "morning "} {
		_, err := ParseShift(invalid)
		assert.Error(t, err, "input %q", invalid)
	}
}

func TestParseShifts(t *testing.T) {
	t.Run("duplicates collapse, canonical order restored", func(t *testing.T) {
		shifts, err := ParseShifts([]string{"evening", "morning", "evening"})

		require.NoError(t, err)
		assert.Equal(t, []Shift{ShiftMorning, ShiftEvening}, shifts)
	})

	t.Run("empty list rejected", func(t *testing.T) {
		_, err := ParseShifts(nil)
		assert.Error(t, err)
	})

	t.Run("one bad shift fails the whole list", func(t *testing.T) {
		_, err := ParseShifts([]string{"morning", "night"})
		assert.Error(t, err)
	})
}
