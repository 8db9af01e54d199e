package apply_batch_pricing

import (
	"context"
	"time"

	"github.com/glamspot/GS-CabinService/internal/domain"
	pricingRepo "github.com/glamspot/GS-CabinService/internal/infra/storage/pricing"
)

// PricingService интерфейс сервиса слоев прайсинга
type PricingService interface {
	// CabinSnapshot собирает кабину с недельной таблицей цен и переопределениями за период
	CabinSnapshot(ctx context.Context, cabinID int64, from, to time.Time) (*domain.Cabin, error)
}

// PricingRepository интерфейс репозитория слоев прайсинга
type PricingRepository interface {
	UpsertOverrides(ctx context.Context, cabinID int64, rows []pricingRepo.OverrideRow) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder интерфейс для учета метрик пакетных правок
type MetricsRecorder interface {
	RecordBatchOverrides(result string, count int)
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
