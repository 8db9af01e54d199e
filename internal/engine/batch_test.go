package engine

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamspot/GS-CabinService/internal/domain"
	"github.com/glamspot/GS-CabinService/pkg/ptr"
	"github.com/glamspot/GS-CabinService/pkg/types"
)

func TestApplyBatch(t *testing.T) {
	today := date(2025, time.June, 2)
	pastDate := date(2025, time.May, 30)
	futureDate := date(2025, time.June, 10)
	morning := []domain.Shift{domain.ShiftMorning}

	t.Run("past dates are skipped, future dates are written", func(t *testing.T) {
		cabin := testCabin()

		result, err := ApplyBatch(cabin, []time.Time{pastDate, futureDate}, morning, 200, today)

		require.NoError(t, err)
		assert.Equal(t, []types.DateString{"2025-06-10"}, result.AppliedDates)
		assert.Equal(t, []types.DateString{"2025-05-30"}, result.SkippedPastDates)

		entry, ok := result.UpdatedCabin.Override("2025-06-10", domain.ShiftMorning)
		require.True(t, ok)
		require.NotNil(t, entry.Price)
		assert.Equal(t, 200.0, *entry.Price)

		// Прошедшая дата не записана
		_, ok = result.UpdatedCabin.Override("2025-05-30", domain.ShiftMorning)
		assert.False(t, ok)
	})

	t.Run("today is applicable", func(t *testing.T) {
		result, err := ApplyBatch(testCabin(), []time.Time{today}, morning, 150, today)

		require.NoError(t, err)
		assert.Equal(t, []types.DateString{"2025-06-02"}, result.AppliedDates)
		assert.Empty(t, result.SkippedPastDates)
	})

	t.Run("input cabin is never mutated", func(t *testing.T) {
		cabin := testCabin()
		cabin.SpecificDates["2025-06-10"] = map[domain.Shift]domain.OverrideEntry{
			domain.ShiftMorning: {Price: ptr.Ptr(50.0), Available: ptr.Ptr(false)},
		}

		_, err := ApplyBatch(cabin, []time.Time{futureDate}, morning, 200, today)

		require.NoError(t, err)
		entry := cabin.SpecificDates["2025-06-10"][domain.ShiftMorning]
		assert.Equal(t, 50.0, *entry.Price)
	})

	t.Run("existing cell keeps its availability, only price changes", func(t *testing.T) {
		cabin := testCabin()
		// Владелец намеренно закрыл утро 10 июня
		cabin.SpecificDates["2025-06-10"] = map[domain.Shift]domain.OverrideEntry{
			domain.ShiftMorning: {Available: ptr.Ptr(false)},
		}

		result, err := ApplyBatch(cabin, []time.Time{futureDate}, morning, 200, today)

		require.NoError(t, err)
		entry, ok := result.UpdatedCabin.Override("2025-06-10", domain.ShiftMorning)
		require.True(t, ok)
		assert.Equal(t, 200.0, *entry.Price)
		// Правка цены не расконсервировала закрытую смену
		require.NotNil(t, entry.Available)
		assert.False(t, *entry.Available)
	})

	t.Run("new cell inherits currently resolved availability", func(t *testing.T) {
		cabin := testCabin()
		cabin.BaseAvailability[domain.ShiftEvening] = false

		result, err := ApplyBatch(cabin, []time.Time{futureDate},
			[]domain.Shift{domain.ShiftMorning, domain.ShiftEvening}, 200, today)

		require.NoError(t, err)

		morningEntry, _ := result.UpdatedCabin.Override("2025-06-10", domain.ShiftMorning)
		require.NotNil(t, morningEntry.Available)
		assert.True(t, *morningEntry.Available)

		eveningEntry, _ := result.UpdatedCabin.Override("2025-06-10", domain.ShiftEvening)
		require.NotNil(t, eveningEntry.Available)
		assert.False(t, *eveningEntry.Available)
	})

	t.Run("idempotent: applying the same batch twice equals applying it once", func(t *testing.T) {
		cabin := testCabin()
		dates := []time.Time{futureDate, date(2025, time.June, 11)}
		shifts := []domain.Shift{domain.ShiftMorning, domain.ShiftAfternoon}

		once, err := ApplyBatch(cabin, dates, shifts, 175, today)
		require.NoError(t, err)

		twice, err := ApplyBatch(once.UpdatedCabin, dates, shifts, 175, today)
		require.NoError(t, err)

		assert.Equal(t, once.UpdatedCabin.SpecificDates, twice.UpdatedCabin.SpecificDates)
		assert.Equal(t, once.AppliedDates, twice.AppliedDates)
	})

	t.Run("untouched shifts and dates are preserved", func(t *testing.T) {
		cabin := testCabin()
		cabin.SpecificDates["2025-06-12"] = map[domain.Shift]domain.OverrideEntry{
			domain.ShiftEvening: {Price: ptr.Ptr(300.0)},
		}

		result, err := ApplyBatch(cabin, []time.Time{futureDate}, morning, 200, today)

		require.NoError(t, err)
		entry, ok := result.UpdatedCabin.Override("2025-06-12", domain.ShiftEvening)
		require.True(t, ok)
		assert.Equal(t, 300.0, *entry.Price)
	})

	t.Run("duplicate dates collapse", func(t *testing.T) {
		result, err := ApplyBatch(testCabin(), []time.Time{futureDate, futureDate, futureDate}, morning, 200, today)

		require.NoError(t, err)
		assert.Equal(t, []types.DateString{"2025-06-10"}, result.AppliedDates)
	})
}

func TestApplyBatch_Rejections(t *testing.T) {
	today := date(2025, time.June, 2)
	futureDate := date(2025, time.June, 10)
	morning := []domain.Shift{domain.ShiftMorning}

	t.Run("invalid prices", func(t *testing.T) {
		for _, price := range []float64{0, -5, math.NaN(), math.Inf(1), math.Inf(-1)} {
			_, err := ApplyBatch(testCabin(), []time.Time{futureDate}, morning, price, today)
			assert.ErrorIs(t, err, ErrInvalidPrice, "price %v", price)
		}
	})

	t.Run("all dates in the past", func(t *testing.T) {
		_, err := ApplyBatch(testCabin(), []time.Time{date(2025, time.May, 1), date(2025, time.May, 2)}, morning, 200, today)

		assert.ErrorIs(t, err, ErrNoApplicableDates)
	})

	t.Run("empty date set", func(t *testing.T) {
		_, err := ApplyBatch(testCabin(), nil, morning, 200, today)

		assert.ErrorIs(t, err, ErrNoApplicableDates)
	})

	t.Run("empty shift set", func(t *testing.T) {
		_, err := ApplyBatch(testCabin(), []time.Time{futureDate}, nil, 200, today)

		assert.ErrorIs(t, err, ErrInvalidSlotKey)
	})

	t.Run("unknown shift", func(t *testing.T) {
		_, err := ApplyBatch(testCabin(), []time.Time{futureDate}, []domain.Shift{"night"}, 200, today)

		assert.ErrorIs(t, err, ErrInvalidSlotKey)
	})

	t.Run("rejected batch leaves no partial effect", func(t *testing.T) {
		cabin := testCabin()

		_, err := ApplyBatch(cabin, []time.Time{date(2025, time.May, 1)}, morning, 200, today)

		require.ErrorIs(t, err, ErrNoApplicableDates)
		assert.Empty(t, cabin.SpecificDates)
	})
}
