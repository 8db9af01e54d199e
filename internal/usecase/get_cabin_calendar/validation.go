package get_cabin_calendar

import (
	"fmt"

	"github.com/glamspot/GS-CabinService/internal/domain"
)

// validateRequest проверяет входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if req.CabinID <= 0 {
		return fmt.Errorf("%w: cabin id must be positive", ErrInvalidInput)
	}

	if req.Days != nil && (*req.Days < domain.MinWindowDays || *req.Days > domain.MaxWindowDays) {
		return fmt.Errorf("%w: days must be between %d and %d",
			ErrInvalidWindow, domain.MinWindowDays, domain.MaxWindowDays)
	}

	return nil
}
