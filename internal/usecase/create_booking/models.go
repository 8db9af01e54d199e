package create_booking

import "time"

// Request запрос на создание бронирования
type Request struct {
	UserID  int64
	CabinID int64

	Date  time.Time
	Shift string

	Notes *string
}

// Response созданное бронирование
type Response struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"userId"`
	CabinID     int64   `json:"cabinId"`
	LocationID  int64   `json:"locationId"`
	BookingDate string  `json:"bookingDate"` // "2025-10-15"
	Shift       string  `json:"shift"`
	Status      string  `json:"status"`
	Price       float64 `json:"price"`

	Notes *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
