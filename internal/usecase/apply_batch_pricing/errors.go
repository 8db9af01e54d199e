package apply_batch_pricing

import "errors"

var (
	// ErrCabinNotFound возвращается, когда кабина не найдена
	ErrCabinNotFound = errors.New("cabin not found")

	// ErrAccessDenied возвращается, когда пользователь не владеет кабиной
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidPrice возвращается при неположительной или не конечной цене
	ErrInvalidPrice = errors.New("invalid price")

	// ErrNoApplicableDates возвращается, когда весь целевой набор дат в прошлом
	ErrNoApplicableDates = errors.New("no applicable dates: all target dates are in the past")

	// ErrInvalidTarget возвращается при некорректном описании целевых дат
	ErrInvalidTarget = errors.New("invalid target dates")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
