package models

import (
	"errors"
	"strconv"

	"github.com/glamspot/GS-CabinService/internal/domain"
	"github.com/glamspot/GS-CabinService/internal/integrations/catalogservice"
	"github.com/glamspot/GS-CabinService/pkg/types"
)

var (
	// ErrInvalidWeekday возвращается при некорректном дне недели
	ErrInvalidWeekday = errors.New("invalid weekday: must be 0-6")

	// ErrInvalidShift возвращается при некорректной смене
	ErrInvalidShift = errors.New("invalid shift")

	// ErrInvalidPrice возвращается при некорректной цене
	ErrInvalidPrice = errors.New("invalid price: must be positive")
)

// Request модели

// UpdateCabinPricingRequest запрос на замену недельной таблицы цен кабины.
// Внешний ключ - день недели строкой ("0"-"6", воскресенье = "0"),
// внутренний - смена.
type UpdateCabinPricingRequest struct {
	UserID         int64                         `json:"userId"`
	CabinID        int64                         `json:"cabinId"`
	DefaultPricing map[string]map[string]float64 `json:"defaultPricing"`
}

// ToDomainPricing конвертирует wire-форму недельной таблицы в domain-форму
func (r *UpdateCabinPricingRequest) ToDomainPricing() (map[int]map[domain.Shift]float64, error) {
	table := make(map[int]map[domain.Shift]float64, len(r.DefaultPricing))

	for weekdayStr, byShift := range r.DefaultPricing {
		weekday, err := strconv.Atoi(weekdayStr)
		if err != nil || weekday < 0 || weekday > 6 {
			return nil, ErrInvalidWeekday
		}

		row := make(map[domain.Shift]float64, len(byShift))
		for shiftStr, price := range byShift {
			shift, err := domain.ParseShift(shiftStr)
			if err != nil {
				return nil, ErrInvalidShift
			}
			if price <= 0 {
				return nil, ErrInvalidPrice
			}
			row[shift] = price
		}
		table[weekday] = row
	}

	return table, nil
}

// Response модели

// CabinPricingResponse ответ с текущими слоями прайсинга кабины
type CabinPricingResponse struct {
	CabinID        int64                         `json:"cabinId"`
	FlatPrice      *float64                      `json:"flatPrice,omitempty"`
	DefaultPricing map[string]map[string]float64 `json:"defaultPricing"`
}

// FromDomainPricing конвертирует domain-форму недельной таблицы в wire-форму
func FromDomainPricing(cabinID int64, flatPrice *float64, table map[int]map[domain.Shift]float64) *CabinPricingResponse {
	wire := make(map[string]map[string]float64, len(table))
	for weekday, byShift := range table {
		row := make(map[string]float64, len(byShift))
		for shift, price := range byShift {
			row[string(shift)] = price
		}
		wire[strconv.Itoa(weekday)] = row
	}

	return &CabinPricingResponse{
		CabinID:        cabinID,
		FlatPrice:      flatPrice,
		DefaultPricing: wire,
	}
}

// ToDomainCabin собирает domain.Cabin из каталожной модели и слоев прайсинга
func ToDomainCabin(
	cabin *catalogservice.Cabin,
	defaultPricing map[int]map[domain.Shift]float64,
	overrides map[types.DateString]map[domain.Shift]domain.OverrideEntry,
) *domain.Cabin {
	baseAvailability := make(map[domain.Shift]bool, len(cabin.BaseAvailability))
	for shiftStr, open := range cabin.BaseAvailability {
		if shift, err := domain.ParseShift(shiftStr); err == nil {
			baseAvailability[shift] = open
		}
	}

	return &domain.Cabin{
		ID:               cabin.ID,
		LocationID:       cabin.LocationID,
		OwnerID:          cabin.OwnerID,
		Name:             cabin.Name,
		BaseAvailability: baseAvailability,
		DefaultPricing:   defaultPricing,
		SpecificDates:    overrides,
		Price:            cabin.BasePrice,
		CreatedAt:        cabin.CreatedAt,
	}
}

// ToDomainLocation конвертирует каталожную модель локации в domain-форму
func ToDomainLocation(location *catalogservice.Location) *domain.Location {
	return &domain.Location{
		ID:          location.ID,
		OwnerID:     location.OwnerID,
		Name:        location.Name,
		City:        location.City,
		Address:     location.Address,
		CabinsCount: location.CabinsCount,
	}
}
