package create_booking

import "errors"

var (
	// ErrCabinNotFound возвращается, когда кабина не найдена
	ErrCabinNotFound = errors.New("cabin not found")

	// ErrSlotTaken возвращается, когда слот уже занят подтвержденным бронированием
	ErrSlotTaken = errors.New("slot is already booked")

	// ErrSlotClosed возвращается, когда смена закрыта владельцем или базово недоступна
	ErrSlotClosed = errors.New("slot is closed")

	// ErrDateInPast возвращается при попытке забронировать прошедшую дату
	ErrDateInPast = errors.New("booking date is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
