package models

import (
	"errors"
	"time"

	"github.com/glamspot/GS-CabinService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64   `json:"userId"`
	BookingID          int64   `json:"bookingId"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetCabinBookingsRequest запрос на получение бронирований кабины
type GetCabinBookingsRequest struct {
	UserID          int64      `json:"userId"`
	CabinID         int64      `json:"cabinId"`
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetCabinBookingsRequest) ToDomainFilter() (domain.CabinBookingsFilter, error) {
	filter := domain.CabinBookingsFilter{
		CabinID:         r.CabinID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(status) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled:
		return domain.BookingStatus(status), nil
	default:
		return "", ErrInvalidStatus
	}
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"userId"`
	CabinID     int64   `json:"cabinId"`
	LocationID  int64   `json:"locationId"`
	BookingDate string  `json:"bookingDate"` // "2025-10-15"
	Shift       string  `json:"shift"`
	Status      string  `json:"status"`
	Price       float64 `json:"price"`

	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomainBooking конвертирует domain.Booking в response модель
func FromDomainBooking(booking *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:                 booking.ID,
		UserID:             booking.UserID,
		CabinID:            booking.CabinID,
		LocationID:         booking.LocationID,
		BookingDate:        booking.BookingDate.Format(domain.DateFormat),
		Shift:              string(booking.Shift),
		Status:             string(booking.Status),
		Price:              booking.Price,
		Notes:              booking.Notes,
		CancellationReason: booking.CancellationReason,
		CreatedAt:          booking.CreatedAt,
		UpdatedAt:          booking.UpdatedAt,
	}

	if booking.CancelledAt != nil {
		cancelledAt := booking.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainBookingList конвертирует список domain.Booking в response модель
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	list := make([]BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		list = append(list, *FromDomainBooking(booking))
	}

	return &BookingListResponse{
		Bookings: list,
		Total:    len(list),
	}
}
