package get_location_summary

import "errors"

var (
	// ErrLocationNotFound возвращается, когда локация не найдена
	ErrLocationNotFound = errors.New("location not found")

	// ErrInvalidWindow возвращается при некорректной длине окна календаря
	ErrInvalidWindow = errors.New("invalid calendar window length")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
