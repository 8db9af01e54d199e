package get_cabin_calendar

import (
	"context"
	"time"

	"github.com/glamspot/GS-CabinService/internal/domain"
)

// PricingService интерфейс сервиса слоев прайсинга
type PricingService interface {
	// CabinSnapshot собирает кабину с недельной таблицей цен и переопределениями за период
	CabinSnapshot(ctx context.Context, cabinID int64, from, to time.Time) (*domain.Cabin, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetConfirmedByCabins(ctx context.Context, cabinIDs []int64, from, to time.Time) ([]*domain.Booking, error)
}

// MetricsRecorder интерфейс для учета метрик резолвинга
type MetricsRecorder interface {
	RecordSlotResolution(status string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
