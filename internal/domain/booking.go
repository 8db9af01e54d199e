package domain

import (
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a reservation of one (cabin, date, shift) slot
type Booking struct {
	ID         int64
	UserID     int64
	CabinID    int64
	LocationID int64

	BookingDate time.Time
	Shift       Shift
	Status      BookingStatus

	// Denormalized price resolved at booking time, kept for history
	Price float64

	Notes              *string
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BlockingStatuses статусы, при которых бронирование исключает слот из продажи.
// Единая точка подмены политики: сейчас блокирует только confirmed,
// pending слот не удерживает (что допускает двойное предложение слота,
// у которого есть неподтвержденная бронь).
var BlockingStatuses = []BookingStatus{
	StatusConfirmed,
}

// Blocks returns true if this booking removes the slot from sale
func (b *Booking) Blocks() bool {
	for _, status := range BlockingStatuses {
		if b.Status == status {
			return true
		}
	}
	return false
}

// IsActive returns true if the booking has not been cancelled
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// Matches returns true if the booking occupies the given (cabin, date, shift) slot
func (b *Booking) Matches(cabinID int64, date time.Time, shift Shift) bool {
	if b.CabinID != cabinID || b.Shift != shift {
		return false
	}
	y1, m1, d1 := b.BookingDate.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// CabinBookingsFilter фильтр для выборки бронирований кабины
type CabinBookingsFilter struct {
	CabinID         int64          // Обязательный параметр
	StartDate       *time.Time     // Начало периода (включительно), nil - без ограничения
	EndDate         *time.Time     // Конец периода (включительно), nil - без ограничения
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отмененные бронирования
}
