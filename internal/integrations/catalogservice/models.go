package catalogservice

import "time"

// Location модель локации из CatalogService
type Location struct {
	ID          int64  `json:"id"`
	OwnerID     int64  `json:"owner_id"`
	Name        string `json:"name"`
	City        string `json:"city"`
	Address     string `json:"address"`
	CabinsCount int    `json:"cabins_count"`
}

// Cabin модель кабины из CatalogService
type Cabin struct {
	ID               int64           `json:"id"`
	LocationID       int64           `json:"location_id"`
	OwnerID          int64           `json:"owner_id"`
	Name             string          `json:"name"`
	BaseAvailability map[string]bool `json:"base_availability"` // смена → открыта ли в принципе
	BasePrice        *float64        `json:"base_price,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// ErrorResponse модель ошибки от CatalogService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
