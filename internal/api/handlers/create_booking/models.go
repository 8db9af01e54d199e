package create_booking

import (
	"time"

	"github.com/glamspot/GS-CabinService/internal/domain"
	createBooking "github.com/glamspot/GS-CabinService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP запрос создания бронирования
type CreateBookingRequest struct {
	CabinID int64   `json:"cabinId"`
	Date    string  `json:"date"` // "2025-10-15"
	Shift   string  `json:"shift"`
	Notes   *string `json:"notes,omitempty"`
}

// ToUseCaseRequest создает запрос use case с парсингом даты
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:  userID,
		CabinID: r.CabinID,
		Date:    date,
		Shift:   r.Shift,
		Notes:   r.Notes,
	}, nil
}
