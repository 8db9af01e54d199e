package apply_batch_pricing

import (
	"fmt"
	"time"

	"github.com/glamspot/GS-CabinService/internal/domain"
	"github.com/glamspot/GS-CabinService/internal/engine"
)

// validateRequest проверяет входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if req.CabinID <= 0 {
		return fmt.Errorf("%w: cabin id must be positive", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}

	// Целевые даты задаются ровно одним способом
	modes := 0
	if len(req.Dates) > 0 {
		modes++
	}
	if req.Month != nil {
		modes++
	}
	if len(req.Weekdays) > 0 {
		modes++
	}
	if modes != 1 {
		return fmt.Errorf("%w: exactly one of dates, month or weekdays must be set", ErrInvalidTarget)
	}

	if len(req.Dates) > domain.MaxBatchDates {
		return fmt.Errorf("%w: at most %d dates per batch", ErrInvalidTarget, domain.MaxBatchDates)
	}

	for _, weekday := range req.Weekdays {
		if weekday < 0 || weekday > 6 {
			return fmt.Errorf("%w: weekday must be 0-6, got %d", ErrInvalidTarget, weekday)
		}
	}

	return nil
}

// buildTargetDates разворачивает описание целевых дат в явный список
func buildTargetDates(req *Request, today time.Time) ([]time.Time, error) {
	switch {
	case len(req.Dates) > 0:
		dates := make([]time.Time, 0, len(req.Dates))
		for _, raw := range req.Dates {
			date, err := time.ParseInLocation(domain.DateFormat, raw, today.Location())
			if err != nil {
				return nil, fmt.Errorf("%w: malformed date %q", ErrInvalidTarget, raw)
			}
			dates = append(dates, date)
		}
		return dates, nil

	case req.Month != nil:
		month, err := time.ParseInLocation(domain.MonthFormat, *req.Month, today.Location())
		if err != nil {
			return nil, fmt.Errorf("%w: malformed month %q", ErrInvalidTarget, *req.Month)
		}
		return engine.DatesInMonth(month.Year(), month.Month(), today.Location()), nil

	default:
		weekdays := make([]time.Weekday, 0, len(req.Weekdays))
		for _, weekday := range req.Weekdays {
			weekdays = append(weekdays, time.Weekday(weekday))
		}
		return engine.WeekdayDatesInMonth(today, weekdays), nil
	}
}
