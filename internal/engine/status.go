package engine

import (
	"fmt"
	"time"

	"github.com/glamspot/GS-CabinService/internal/domain"
)

// ResolveSlot вычисляет финальный статус и цену слота (cabin, date, shift),
// каким его видит конечный пользователь.
//
// Статусы проверяются строго по порядку, побеждает первое совпадение:
//
//  1. PastUnavailable - дата раньше начала сегодняшнего дня. Побеждает всегда:
//     слот в прошлом не бронируется и не редактируется.
//  2. ManuallyClosed - владелец явно закрыл смену на эту дату.
//  3. Booked - существует блокирующее бронирование на этот слот. Booked
//     побеждает Available: успешная бронь всегда подавляет повторную продажу
//     того же слота.
//  4. Available - ничего из перечисленного; слот несет резолвнутую цену.
//
// Порядок проверок менять нельзя: перестановка ManuallyClosed и Booked
// изменила бы то, что показывает забронированный, а затем закрытый слот.
//
// Некорректная смена или нулевая дата - ErrInvalidSlotKey, а не тихий дефолт.
func ResolveSlot(cabin *domain.Cabin, date time.Time, shift domain.Shift, bookings []*domain.Booking, today time.Time) (*domain.ResolvedSlot, error) {
	if !shift.IsValid() {
		return nil, fmt.Errorf("%w: unknown shift %q", ErrInvalidSlotKey, shift)
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: zero date", ErrInvalidSlotKey)
	}
	if err := cabin.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSlotKey, err)
	}

	slot := &domain.ResolvedSlot{
		Date:  StartOfDay(date),
		Shift: shift,
	}

	// 1. Прошлое побеждает все остальные слои
	if StartOfDay(date).Before(StartOfDay(today)) {
		slot.Status = domain.SlotPastUnavailable
		return slot, nil
	}

	nominal := ResolveNominal(cabin, date, shift)
	price := nominal.Price
	slot.Price = &price

	// 2. Ручное закрытие: цена остается для отображения зачеркнутой
	if !nominal.Available {
		slot.Status = domain.SlotManuallyClosed
		return slot, nil
	}

	// 3. Блокирующее бронирование подавляет продажу даже открытого слота
	if hasBlockingBooking(cabin.ID, date, shift, bookings) {
		slot.Status = domain.SlotBooked
		return slot, nil
	}

	// 4. Слот открыт
	slot.Status = domain.SlotAvailable
	return slot, nil
}

// hasBlockingBooking проверяет наличие блокирующего бронирования на слот.
// Политика блокировки задается domain.BlockingStatuses.
func hasBlockingBooking(cabinID int64, date time.Time, shift domain.Shift, bookings []*domain.Booking) bool {
	for _, booking := range bookings {
		if booking == nil || !booking.Blocks() {
			continue
		}
		if booking.Matches(cabinID, date, shift) {
			return true
		}
	}
	return false
}
