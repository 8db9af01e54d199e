package get_cabin_calendar

import (
	"context"

	getCabinCalendar "github.com/glamspot/GS-CabinService/internal/usecase/get_cabin_calendar"
)

type GetCabinCalendarUseCase interface {
	Execute(ctx context.Context, req *getCabinCalendar.Request) (*getCabinCalendar.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
