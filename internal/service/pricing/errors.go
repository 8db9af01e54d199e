package pricing

import "errors"

var (
	// ErrCabinNotFound возвращается, когда кабина не найдена
	ErrCabinNotFound = errors.New("cabin not found")

	// ErrLocationNotFound возвращается, когда локация не найдена
	ErrLocationNotFound = errors.New("location not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
