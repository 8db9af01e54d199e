package create_booking

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
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetConfirmedByCabins(ctx context.Context, cabinIDs []int64, from, to time.Time) ([]*domain.Booking, error)
	// CountConfirmedForSlot повторная проверка занятости слота внутри транзакции
	CountConfirmedForSlot(ctx context.Context, cabinID int64, date time.Time, shift domain.Shift) (int, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
