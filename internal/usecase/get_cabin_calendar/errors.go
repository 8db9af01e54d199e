package get_cabin_calendar

import "errors"

var (
	// ErrCabinNotFound возвращается, когда кабина не найдена
	ErrCabinNotFound = errors.New("cabin not found")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidWindow возвращается при некорректной длине окна календаря
	ErrInvalidWindow = errors.New("invalid calendar window length")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
