package get_location_summary

import "time"

// Request запрос на получение сводки доступности локации
type Request struct {
	LocationID int64

	// Date якорная дата окна, nil - сегодня
	Date *time.Time

	// Days длина окна в днях, nil - неделя по умолчанию
	Days *int
}

// ShiftSummary агрегат одной смены по всем кабинам локации
type ShiftSummary struct {
	Shift               string   `json:"shift"`
	TotalCabins         int      `json:"totalCabins"`
	AvailableCabins     int      `json:"availableCabins"`
	ManuallyClosedCount int      `json:"manuallyClosedCount"`
	AveragePrice        *float64 `json:"averagePrice,omitempty"`
}

// DaySummary агрегаты одного календарного дня
type DaySummary struct {
	Date   string         `json:"date"` // "2025-10-15"
	Shifts []ShiftSummary `json:"shifts"`
}

// Response сводка доступности локации
type Response struct {
	LocationID   int64        `json:"locationId"`
	LocationName string       `json:"locationName"`
	City         string       `json:"city"`
	CabinsCount  int          `json:"cabinsCount"`
	Days         []DaySummary `json:"days"`
}
