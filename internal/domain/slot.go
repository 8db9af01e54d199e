package domain

import (
	"time"
)

// SlotStatus is the final state of one (cabin, date, shift) cell as an end
// user sees it. The four statuses are terminal and mutually exclusive.
type SlotStatus string

const (
	// SlotAvailable слот открыт и может быть забронирован
	SlotAvailable SlotStatus = "available"
	// SlotManuallyClosed владелец явно закрыл смену на эту дату
	SlotManuallyClosed SlotStatus = "manually_closed"
	// SlotBooked слот занят подтвержденным бронированием
	SlotBooked SlotStatus = "booked"
	// SlotPastUnavailable дата в прошлом; слот не бронируется и не редактируется
	SlotPastUnavailable SlotStatus = "past_unavailable"
)

// ResolvedSlot is the derived, never-persisted result of resolving one slot.
// It is computed fresh on every read; a changed input simply produces a new
// value on the next computation.
type ResolvedSlot struct {
	Date   time.Time
	Shift  Shift
	Status SlotStatus

	// Price is the resolved nominal price. Present for available, manually
	// closed (displayed struck through) and booked slots; nil for past slots.
	Price *float64
}

// IsBookable returns true if the slot can accept a new booking
func (s *ResolvedSlot) IsBookable() bool {
	return s.Status == SlotAvailable
}

// AggregateDayShift is the per-(location, date, shift) summary shown on
// location listings
type AggregateDayShift struct {
	TotalCabins         int
	AvailableCabins     int
	ManuallyClosedCount int

	// AveragePrice arithmetic mean over available cabins only;
	// nil (not zero) when no cabin is available.
	AveragePrice *float64
}
