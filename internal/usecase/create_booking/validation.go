package create_booking

import (
	"fmt"

	"github.com/glamspot/GS-CabinService/internal/domain"
)

// validateRequest проверяет входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}

	if req.CabinID <= 0 {
		return fmt.Errorf("%w: cabin id must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !domain.Shift(req.Shift).IsValid() {
		return fmt.Errorf("%w: unknown shift %q", ErrInvalidInput, req.Shift)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes longer than %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
