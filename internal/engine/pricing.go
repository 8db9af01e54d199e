package engine

import (
	"time"

	"github.com/glamspot/GS-CabinService/internal/domain"
	"github.com/glamspot/GS-CabinService/pkg/types"
)

// Nominal номинальное состояние ячейки (date, shift) до учета времени
// и бронирований: цена и флаг доступности из слоев прайсинга.
type Nominal struct {
	Price     float64
	Available bool
}

// ResolveNominal вычисляет номинальную цену и доступность для одной ячейки
// (date, shift), сливая слои данных по убыванию приоритета:
//
//  1. Явное available=false в переопределении даты закрывает смену.
//     Цена при этом все равно резолвится - закрытая смена может показывать
//     свою цену зачеркнутой.
//  2. Явное available=true либо отсутствие переопределения - доступность
//     берется из базовой готовности кабины работать в эту смену.
//  3. Цена: переопределение даты > недельная таблица по дню недели >
//     фиксированная цена кабины > платформенный fallback.
//
// Цена 0 или отрицательная трактуется как "не задана", никогда как "бесплатно".
//
// Чистая функция над snapshot кабины, без I/O.
func ResolveNominal(cabin *domain.Cabin, date time.Time, shift domain.Shift) Nominal {
	dateKey := types.NewDateString(date)
	entry, hasOverride := cabin.Override(dateKey, shift)

	available := cabin.BaseAvailability[shift]
	if hasOverride && entry.Available != nil && !*entry.Available {
		available = false
	}

	return Nominal{
		Price:     resolvePrice(cabin, entry, hasOverride, date, shift),
		Available: available,
	}
}

// resolvePrice проходит цепочку источников цены до первого положительного значения
func resolvePrice(cabin *domain.Cabin, entry domain.OverrideEntry, hasOverride bool, date time.Time, shift domain.Shift) float64 {
	if hasOverride && entry.Price != nil && *entry.Price > 0 {
		return *entry.Price
	}

	weekday := int(date.Weekday())
	if price := cabin.DefaultPrice(weekday, shift); price > 0 {
		return price
	}

	if cabin.Price != nil && *cabin.Price > 0 {
		return *cabin.Price
	}

	return domain.FallbackPrice
}
