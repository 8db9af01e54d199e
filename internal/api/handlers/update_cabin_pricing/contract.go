package update_cabin_pricing

import (
	"context"

	"github.com/glamspot/GS-CabinService/internal/service/pricing/models"
)

type PricingService interface {
	UpdateCabinPricing(ctx context.Context, req *models.UpdateCabinPricingRequest) (*models.CabinPricingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
