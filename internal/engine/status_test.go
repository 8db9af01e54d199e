package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamspot/GS-CabinService/internal/domain"
	"github.com/glamspot/GS-CabinService/pkg/ptr"
	"github.com/glamspot/GS-CabinService/pkg/types"
)

func confirmedBooking(cabinID int64, bookingDate time.Time, shift domain.Shift) *domain.Booking {
	return &domain.Booking{
		ID:          1,
		UserID:      42,
		CabinID:     cabinID,
		BookingDate: bookingDate,
		Shift:       shift,
		Status:      domain.StatusConfirmed,
	}
}

func TestResolveSlot_Scenarios(t *testing.T) {
	today := date(2025, time.June, 2)        // понедельник
	futureMonday := date(2025, time.June, 9) // weekday 1

	newCabin := func() *domain.Cabin {
		cabin := testCabin()
		cabin.DefaultPricing[1] = map[domain.Shift]float64{domain.ShiftMorning: 100}
		return cabin
	}

	t.Run("open shift with weekday price resolves available", func(t *testing.T) {
		slot, err := ResolveSlot(newCabin(), futureMonday, domain.ShiftMorning, nil, today)

		require.NoError(t, err)
		assert.Equal(t, domain.SlotAvailable, slot.Status)
		require.NotNil(t, slot.Price)
		assert.Equal(t, 100.0, *slot.Price)
		assert.True(t, slot.IsBookable())
	})

	t.Run("manual closure wins over availability", func(t *testing.T) {
		cabin := newCabin()
		cabin.SpecificDates["2025-06-09"] = map[domain.Shift]domain.OverrideEntry{
			domain.ShiftMorning: {Available: ptr.Ptr(false)},
		}

		slot, err := ResolveSlot(cabin, futureMonday, domain.ShiftMorning, nil, today)

		require.NoError(t, err)
		assert.Equal(t, domain.SlotManuallyClosed, slot.Status)
		// Закрытая смена все равно несет цену - для зачеркнутого отображения
		require.NotNil(t, slot.Price)
		assert.Equal(t, 100.0, *slot.Price)
	})

	t.Run("confirmed booking wins over available", func(t *testing.T) {
		bookings := []*domain.Booking{confirmedBooking(10, futureMonday, domain.ShiftMorning)}

		slot, err := ResolveSlot(newCabin(), futureMonday, domain.ShiftMorning, bookings, today)

		require.NoError(t, err)
		assert.Equal(t, domain.SlotBooked, slot.Status)
		assert.False(t, slot.IsBookable())
	})

	t.Run("past date wins over everything", func(t *testing.T) {
		yesterday := date(2025, time.June, 1)
		cabin := newCabin()
		// Даже закрытие и бронирование не меняют статус прошедшего слота
		cabin.SpecificDates["2025-06-01"] = map[domain.Shift]domain.OverrideEntry{
			domain.ShiftMorning: {Available: ptr.Ptr(false)},
		}
		bookings := []*domain.Booking{confirmedBooking(10, yesterday, domain.ShiftMorning)}

		slot, err := ResolveSlot(cabin, yesterday, domain.ShiftMorning, bookings, today)

		require.NoError(t, err)
		assert.Equal(t, domain.SlotPastUnavailable, slot.Status)
		assert.Nil(t, slot.Price)
	})

	t.Run("today is not past", func(t *testing.T) {
		slot, err := ResolveSlot(newCabin(), today, domain.ShiftMorning, nil, today)

		require.NoError(t, err)
		assert.NotEqual(t, domain.SlotPastUnavailable, slot.Status)
	})

	t.Run("booked but then closed displays manually closed", func(t *testing.T) {
		// Порядок проверок фиксирован: ManuallyClosed идет раньше Booked
		cabin := newCabin()
		cabin.SpecificDates["2025-06-09"] = map[domain.Shift]domain.OverrideEntry{
			domain.ShiftMorning: {Available: ptr.Ptr(false)},
		}
		bookings := []*domain.Booking{confirmedBooking(10, futureMonday, domain.ShiftMorning)}

		slot, err := ResolveSlot(cabin, futureMonday, domain.ShiftMorning, bookings, today)

		require.NoError(t, err)
		assert.Equal(t, domain.SlotManuallyClosed, slot.Status)
	})
}

func TestResolveSlot_BookingFiltering(t *testing.T) {
	today := date(2025, time.June, 2)
	futureMonday := date(2025, time.June, 9)

	cabin := testCabin()

	tests := []struct {
		name     string
		booking  *domain.Booking
		expected domain.SlotStatus
	}{
		{
			name:     "pending booking does not block the slot",
			booking:  &domain.Booking{CabinID: 10, BookingDate: futureMonday, Shift: domain.ShiftMorning, Status: domain.StatusPending},
			expected: domain.SlotAvailable,
		},
		{
			name:     "cancelled booking does not block the slot",
			booking:  &domain.Booking{CabinID: 10, BookingDate: futureMonday, Shift: domain.ShiftMorning, Status: domain.StatusCancelled},
			expected: domain.SlotAvailable,
		},
		{
			name:     "booking for another shift does not block",
			booking:  confirmedBooking(10, futureMonday, domain.ShiftEvening),
			expected: domain.SlotAvailable,
		},
		{
			name:     "booking for another cabin does not block",
			booking:  confirmedBooking(99, futureMonday, domain.ShiftMorning),
			expected: domain.SlotAvailable,
		},
		{
			name:     "booking for another date does not block",
			booking:  confirmedBooking(10, date(2025, time.June, 10), domain.ShiftMorning),
			expected: domain.SlotAvailable,
		},
		{
			name:     "confirmed booking for the exact slot blocks",
			booking:  confirmedBooking(10, futureMonday, domain.ShiftMorning),
			expected: domain.SlotBooked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, err := ResolveSlot(cabin, futureMonday, domain.ShiftMorning, []*domain.Booking{tt.booking}, today)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, slot.Status)
		})
	}
}

func TestResolveSlot_InvalidInput(t *testing.T) {
	today := date(2025, time.June, 2)

	t.Run("unknown shift fails loudly", func(t *testing.T) {
		_, err := ResolveSlot(testCabin(), date(2025, time.June, 9), domain.Shift("night"), nil, today)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidSlotKey)
	})

	t.Run("zero date fails loudly", func(t *testing.T) {
		_, err := ResolveSlot(testCabin(), time.Time{}, domain.ShiftMorning, nil, today)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidSlotKey)
	})

	t.Run("malformed cabin snapshot fails loudly", func(t *testing.T) {
		cabin := testCabin()
		cabin.BaseAvailability = nil

		_, err := ResolveSlot(cabin, date(2025, time.June, 9), domain.ShiftMorning, nil, today)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidSlotKey)
	})
}

func TestResolveSlot_PastIsExhaustiveOverStatuses(t *testing.T) {
	// Свойство: для любой даты строго раньше сегодня резолвер возвращает
	// PastUnavailable вне зависимости от прайсинга, доступности и бронирований
	today := date(2025, time.June, 2)

	variants := []func(c *domain.Cabin) []*domain.Booking{
		func(c *domain.Cabin) []*domain.Booking { return nil },
		func(c *domain.Cabin) []*domain.Booking {
			c.SpecificDates["2025-05-26"] = map[domain.Shift]domain.OverrideEntry{
				domain.ShiftMorning: {Available: ptr.Ptr(false), Price: ptr.Ptr(70.0)},
			}
			return nil
		},
		func(c *domain.Cabin) []*domain.Booking {
			return []*domain.Booking{confirmedBooking(10, date(2025, time.May, 26), domain.ShiftMorning)}
		},
		func(c *domain.Cabin) []*domain.Booking {
			c.BaseAvailability[domain.ShiftMorning] = false
			return nil
		},
	}

	for i, variant := range variants {
		cabin := testCabin()
		bookings := variant(cabin)

		for _, day := range []time.Time{date(2025, time.May, 26), date(2025, time.June, 1)} {
			slot, err := ResolveSlot(cabin, day, domain.ShiftMorning, bookings, today)

			require.NoError(t, err)
			assert.Equal(t, domain.SlotPastUnavailable, slot.Status, "variant %d, date %s", i, types.NewDateString(day))
		}
	}
}
