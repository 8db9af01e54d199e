package apply_batch_pricing

import (
	"context"

	applyBatchPricing "github.com/glamspot/GS-CabinService/internal/usecase/apply_batch_pricing"
)

type ApplyBatchPricingUseCase interface {
	Execute(ctx context.Context, req *applyBatchPricing.Request) (*applyBatchPricing.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
