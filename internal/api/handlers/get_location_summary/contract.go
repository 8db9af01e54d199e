package get_location_summary

import (
	"context"

	getLocationSummary "github.com/glamspot/GS-CabinService/internal/usecase/get_location_summary"
)

type GetLocationSummaryUseCase interface {
	Execute(ctx context.Context, req *getLocationSummary.Request) (*getLocationSummary.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
