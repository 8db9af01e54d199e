package catalogservice

import "errors"

var (
	// ErrLocationNotFound возвращается, когда локация не найдена в каталоге
	ErrLocationNotFound = errors.New("location not found in catalog")

	// ErrCabinNotFound возвращается, когда кабина не найдена в каталоге
	ErrCabinNotFound = errors.New("cabin not found in catalog")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("catalogservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("catalogservice client: invalid response")
)
