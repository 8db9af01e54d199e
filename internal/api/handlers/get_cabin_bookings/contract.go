package get_cabin_bookings

import (
	"context"

	"github.com/glamspot/GS-CabinService/internal/service/bookings/models"
)

type BookingService interface {
	GetCabinBookings(ctx context.Context, req *models.GetCabinBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
