package domain

import (
	"fmt"
	"time"

	"github.com/glamspot/GS-CabinService/pkg/types"
)

// OverrideEntry is a sparse per-date exception for a single (date, shift) cell.
// Either field may be absent: a batch price edit creates entries without touching
// availability, and a manual closure may exist without a price.
type OverrideEntry struct {
	Price     *float64
	Available *bool
}

// Cabin is an in-memory snapshot of one rentable work stall and its pricing
// layers. Snapshots are assembled per request from the catalog service and the
// pricing storage and are never mutated by the engine; every resolution reads
// the snapshot as-is.
type Cabin struct {
	ID         int64
	LocationID int64
	OwnerID    int64
	Name       string

	// BaseAvailability default willingness to operate each shift
	BaseAvailability map[Shift]bool

	// DefaultPricing weekly price table keyed by weekday number 0-6 (Sunday = 0)
	DefaultPricing map[int]map[Shift]float64

	// SpecificDates per-date overrides layered on top of the weekly defaults
	SpecificDates map[types.DateString]map[Shift]OverrideEntry

	// Price optional flat last-resort price before the platform fallback
	Price *float64

	CreatedAt time.Time
}

// Override возвращает переопределение для (date, shift), если оно есть
func (c *Cabin) Override(date types.DateString, shift Shift) (OverrideEntry, bool) {
	byShift, ok := c.SpecificDates[date]
	if !ok {
		return OverrideEntry{}, false
	}
	entry, ok := byShift[shift]
	return entry, ok
}

// DefaultPrice возвращает цену из недельной таблицы для дня недели 0-6,
// 0 означает "не задана"
func (c *Cabin) DefaultPrice(weekday int, shift Shift) float64 {
	byShift, ok := c.DefaultPricing[weekday]
	if !ok {
		return 0
	}
	return byShift[shift]
}

// Validate проверяет, что snapshot пригоден для резолвинга.
// Агрегатор локации пропускает кабины с невалидным snapshot вместо
// прерывания всей агрегации.
func (c *Cabin) Validate() error {
	if c == nil {
		return fmt.Errorf("cabin is nil")
	}
	if c.ID <= 0 {
		return fmt.Errorf("cabin id must be positive, got %d", c.ID)
	}
	if c.BaseAvailability == nil {
		return fmt.Errorf("cabin id=%d has no base availability", c.ID)
	}
	for date, byShift := range c.SpecificDates {
		if _, err := date.Time(); err != nil {
			return fmt.Errorf("cabin id=%d has malformed override date %q", c.ID, date)
		}
		for shift := range byShift {
			if !shift.IsValid() {
				return fmt.Errorf("cabin id=%d has malformed override shift %q for %s", c.ID, shift, date)
			}
		}
	}
	return nil
}

// CloneOverrides возвращает глубокую копию таблицы переопределений.
// Используется пакетным редактором, чтобы не мутировать исходный snapshot.
func (c *Cabin) CloneOverrides() map[types.DateString]map[Shift]OverrideEntry {
	cloned := make(map[types.DateString]map[Shift]OverrideEntry, len(c.SpecificDates))
	for date, byShift := range c.SpecificDates {
		clonedShifts := make(map[Shift]OverrideEntry, len(byShift))
		for shift, entry := range byShift {
			clonedEntry := OverrideEntry{}
			if entry.Price != nil {
				price := *entry.Price
				clonedEntry.Price = &price
			}
			if entry.Available != nil {
				available := *entry.Available
				clonedEntry.Available = &available
			}
			clonedShifts[shift] = clonedEntry
		}
		cloned[date] = clonedShifts
	}
	return cloned
}

// Location represents a physical venue owning a collection of cabins
type Location struct {
	ID      int64
	OwnerID int64
	Name    string
	City    string
	Address string

	// CabinsCount denormalized counter from the catalog service. Known to go
	// stale; aggregation always counts the live cabin list instead.
	CabinsCount int

	CreatedAt time.Time
}
