package get_cabin_calendar

import "time"

// Request запрос на получение календаря кабины
type Request struct {
	CabinID int64

	// Date якорная дата окна, nil - сегодня
	Date *time.Time

	// Days длина окна в днях, nil - неделя по умолчанию.
	// При Days = 1 возвращается только якорная дата,
	// иначе окно выравнивается на понедельник недели якорной даты.
	Days *int
}

// SlotView один расчётный слот (смена) в ответе
type SlotView struct {
	Shift    string   `json:"shift"`
	Status   string   `json:"status"`
	Price    *float64 `json:"price,omitempty"`
	Bookable bool     `json:"bookable"`
}

// DayView слоты одного календарного дня
type DayView struct {
	Date   string     `json:"date"` // "2025-10-15"
	Shifts []SlotView `json:"shifts"`
}

// Response календарь кабины
type Response struct {
	CabinID   int64     `json:"cabinId"`
	CabinName string    `json:"cabinName"`
	Days      []DayView `json:"days"`
}
