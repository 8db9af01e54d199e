package engine

import "errors"

var (
	// ErrInvalidSlotKey возвращается при некорректной смене или дате.
	// Ошибка программиста: резолверы падают громко, а не подставляют дефолт,
	// чтобы вызывающий код отличал "нет данных" от "кривой ввод".
	ErrInvalidSlotKey = errors.New("engine: invalid slot key")

	// ErrInvalidPrice возвращается при неположительной или не-конечной цене
	// в пакетном редактировании
	ErrInvalidPrice = errors.New("engine: invalid price")

	// ErrNoApplicableDates возвращается, когда весь набор дат пакетного
	// редактирования оказался в прошлом
	ErrNoApplicableDates = errors.New("engine: no applicable dates")
)
