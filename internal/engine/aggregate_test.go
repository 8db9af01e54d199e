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

// locationCabin кабина локации с фиксированной ценой на все смены
func locationCabin(id int64, flatPrice float64) *domain.Cabin {
	cabin := testCabin()
	cabin.ID = id
	cabin.Price = ptr.Ptr(flatPrice)
	return cabin
}

func TestAggregateLocation(t *testing.T) {
	today := date(2025, time.June, 2)
	futureMonday := date(2025, time.June, 9)
	window := SingleDay(futureMonday)
	dateKey := types.NewDateString(futureMonday)

	t.Run("two available one closed", func(t *testing.T) {
		closed := locationCabin(3, 90)
		closed.SpecificDates["2025-06-09"] = map[domain.Shift]domain.OverrideEntry{
			domain.ShiftMorning: {Available: ptr.Ptr(false)},
		}
		cabins := []*domain.Cabin{
			locationCabin(1, 100),
			locationCabin(2, 150),
			closed,
		}

		result, anomalies := AggregateLocation(cabins, nil, window, today)

		require.Empty(t, anomalies)
		agg := result[dateKey][domain.ShiftMorning]
		assert.Equal(t, 3, agg.TotalCabins)
		assert.Equal(t, 2, agg.AvailableCabins)
		assert.Equal(t, 1, agg.ManuallyClosedCount)
		require.NotNil(t, agg.AveragePrice)
		assert.Equal(t, 125.0, *agg.AveragePrice)
	})

	t.Run("average price is nil when nothing is available", func(t *testing.T) {
		closed := locationCabin(1, 100)
		closed.BaseAvailability[domain.ShiftMorning] = false
		booked := locationCabin(2, 150)
		bookings := []*domain.Booking{confirmedBooking(2, futureMonday, domain.ShiftMorning)}

		result, anomalies := AggregateLocation([]*domain.Cabin{closed, booked}, bookings, window, today)

		require.Empty(t, anomalies)
		agg := result[dateKey][domain.ShiftMorning]
		assert.Equal(t, 2, agg.TotalCabins)
		assert.Equal(t, 0, agg.AvailableCabins)
		assert.Nil(t, agg.AveragePrice)
	})

	t.Run("malformed cabin is skipped, not fatal", func(t *testing.T) {
		broken := locationCabin(7, 100)
		broken.BaseAvailability = nil

		result, anomalies := AggregateLocation([]*domain.Cabin{locationCabin(1, 100), broken, nil}, nil, window, today)

		require.Len(t, anomalies, 2)
		assert.Equal(t, int64(7), anomalies[0].CabinID)
		assert.Equal(t, int64(0), anomalies[1].CabinID)

		agg := result[dateKey][domain.ShiftMorning]
		assert.Equal(t, 1, agg.TotalCabins)
		assert.Equal(t, 1, agg.AvailableCabins)
	})

	t.Run("every window date and shift is present", func(t *testing.T) {
		weekWindow := Window(futureMonday, 7, nil)

		result, _ := AggregateLocation([]*domain.Cabin{locationCabin(1, 100)}, nil, weekWindow, today)

		require.Len(t, result, 7)
		for _, day := range weekWindow {
			byShift, ok := result[types.NewDateString(day)]
			require.True(t, ok)
			require.Len(t, byShift, len(domain.AllShifts))
		}
	})

	t.Run("available never exceeds total", func(t *testing.T) {
		cabins := []*domain.Cabin{locationCabin(1, 100), locationCabin(2, 200), locationCabin(3, 300)}
		weekWindow := Window(futureMonday, 7, nil)

		result, _ := AggregateLocation(cabins, nil, weekWindow, today)

		for _, byShift := range result {
			for _, agg := range byShift {
				assert.LessOrEqual(t, agg.AvailableCabins, agg.TotalCabins)
				// averagePrice определен ровно тогда, когда есть доступные кабины
				assert.Equal(t, agg.AvailableCabins > 0, agg.AveragePrice != nil)
			}
		}
	})

	t.Run("past dates in window count nothing as available", func(t *testing.T) {
		pastWindow := SingleDay(date(2025, time.May, 26))

		result, _ := AggregateLocation([]*domain.Cabin{locationCabin(1, 100)}, nil, pastWindow, today)

		agg := result["2025-05-26"][domain.ShiftMorning]
		assert.Equal(t, 1, agg.TotalCabins)
		assert.Equal(t, 0, agg.AvailableCabins)
		assert.Equal(t, 0, agg.ManuallyClosedCount)
		assert.Nil(t, agg.AveragePrice)
	})

	t.Run("empty cabin list", func(t *testing.T) {
		result, anomalies := AggregateLocation(nil, nil, window, today)

		require.Empty(t, anomalies)
		agg := result[dateKey][domain.ShiftMorning]
		assert.Equal(t, 0, agg.TotalCabins)
		assert.Nil(t, agg.AveragePrice)
	})
}
