package pricing

import (
	"context"
	"time"

	"github.com/glamspot/GS-CabinService/internal/domain"
	"github.com/glamspot/GS-CabinService/internal/infra/storage/pricing"
	"github.com/glamspot/GS-CabinService/internal/integrations/catalogservice"
	"github.com/glamspot/GS-CabinService/pkg/types"
)

// PricingRepository интерфейс репозитория слоев прайсинга
type PricingRepository interface {
	GetDefaultPricing(ctx context.Context, cabinID int64) (map[int]map[domain.Shift]float64, error)
	GetDefaultPricingForCabins(ctx context.Context, cabinIDs []int64) (map[int64]map[int]map[domain.Shift]float64, error)
	ReplaceDefaultPricing(ctx context.Context, cabinID int64, table map[int]map[domain.Shift]float64) error
	GetOverrides(ctx context.Context, cabinID int64, from, to time.Time) (map[types.DateString]map[domain.Shift]domain.OverrideEntry, error)
	GetOverridesForCabins(ctx context.Context, cabinIDs []int64, from, to time.Time) (map[int64]map[types.DateString]map[domain.Shift]domain.OverrideEntry, error)
	UpsertOverrides(ctx context.Context, cabinID int64, rows []pricing.OverrideRow) error
}

// CatalogServiceClient интерфейс клиента для CatalogService
type CatalogServiceClient interface {
	GetLocation(ctx context.Context, locationID int64) (*catalogservice.Location, error)
	GetCabin(ctx context.Context, cabinID int64) (*catalogservice.Cabin, error)
	GetLocationCabins(ctx context.Context, locationID int64) ([]catalogservice.Cabin, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
