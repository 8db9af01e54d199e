package engine

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/glamspot/GS-CabinService/internal/domain"
	"github.com/glamspot/GS-CabinService/pkg/types"
)

// BatchResult результат пакетного редактирования цен
type BatchResult struct {
	// UpdatedCabin копия snapshot с примененными переопределениями.
	// Исходная кабина не мутируется; персистентность - забота вызывающего.
	UpdatedCabin *domain.Cabin

	// AppliedDates даты (будущее и сегодня), в которые записана цена,
	// по возрастанию
	AppliedDates []types.DateString

	// SkippedPastDates прошедшие даты, отброшенные без записи, по возрастанию
	SkippedPastDates []types.DateString
}

// ApplyBatch записывает единую цену в слой переопределений для каждой пары
// (будущая дата, смена).
//
// Правила:
//   - цена должна быть конечной и > 0, иначе ErrInvalidPrice и никаких изменений;
//   - смены - непустое подмножество трех смен, иначе ErrInvalidSlotKey;
//   - прошедшие даты не записываются, а попадают в SkippedPastDates;
//   - если после отброса прошлого не осталось ни одной даты - ErrNoApplicableDates,
//     изменений нет (пакет атомарен на уровне вызова);
//   - для существующей ячейки меняется ТОЛЬКО цена, поле available не трогается;
//   - для новой ячейки available наследуется из текущей резолвнутой доступности
//     смены. Это ключевое свойство корректности: пакетная смена цены никогда
//     не открывает и не закрывает смену побочным эффектом - иначе правка цены
//     могла бы втихую расконсервировать смену, которую владелец закрыл намеренно.
//
// Повторное применение того же пакета с той же ценой дает ту же таблицу
// переопределений (идемпотентность).
func ApplyBatch(cabin *domain.Cabin, targetDates []time.Time, targetShifts []domain.Shift, price float64, today time.Time) (*BatchResult, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return nil, fmt.Errorf("%w: price must be a finite number > 0, got %v", ErrInvalidPrice, price)
	}

	if len(targetShifts) == 0 {
		return nil, fmt.Errorf("%w: empty shift set", ErrInvalidSlotKey)
	}
	for _, shift := range targetShifts {
		if !shift.IsValid() {
			return nil, fmt.Errorf("%w: unknown shift %q", ErrInvalidSlotKey, shift)
		}
	}

	if err := cabin.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSlotKey, err)
	}

	applied, skipped := partitionDates(targetDates, today)
	if len(applied) == 0 {
		return nil, ErrNoApplicableDates
	}

	overrides := cabin.CloneOverrides()

	for _, date := range applied {
		dateKey := types.NewDateString(date)
		byShift := overrides[dateKey]
		if byShift == nil {
			byShift = make(map[domain.Shift]domain.OverrideEntry, len(targetShifts))
			overrides[dateKey] = byShift
		}

		for _, shift := range targetShifts {
			newPrice := price
			entry, exists := byShift[shift]
			if exists {
				// Существующая ячейка: available остается как был
				entry.Price = &newPrice
				byShift[shift] = entry
				continue
			}

			// Новая ячейка наследует текущую резолвнутую доступность смены,
			// резолвим по исходному snapshot (цена на доступность не влияет)
			inherited := ResolveNominal(cabin, date, shift).Available
			byShift[shift] = domain.OverrideEntry{
				Price:     &newPrice,
				Available: &inherited,
			}
		}
	}

	updated := *cabin
	updated.SpecificDates = overrides

	return &BatchResult{
		UpdatedCabin:     &updated,
		AppliedDates:     toDateStrings(applied),
		SkippedPastDates: toDateStrings(skipped),
	}, nil
}

// partitionDates разбивает даты на применимые (сегодня и позже) и прошедшие.
// Дубликаты отбрасываются, обе части отсортированы по возрастанию.
func partitionDates(dates []time.Time, today time.Time) (applied, skipped []time.Time) {
	todayStart := StartOfDay(today)
	seen := make(map[types.DateString]bool, len(dates))

	for _, date := range dates {
		day := StartOfDay(date)
		key := types.NewDateString(day)
		if seen[key] {
			continue
		}
		seen[key] = true

		if day.Before(todayStart) {
			skipped = append(skipped, day)
		} else {
			applied = append(applied, day)
		}
	}

	sort.Slice(applied, func(i, j int) bool { return applied[i].Before(applied[j]) })
	sort.Slice(skipped, func(i, j int) bool { return skipped[i].Before(skipped[j]) })
	return applied, skipped
}

func toDateStrings(dates []time.Time) []types.DateString {
	result := make([]types.DateString, len(dates))
	for i, date := range dates {
		result[i] = types.NewDateString(date)
	}
	return result
}
