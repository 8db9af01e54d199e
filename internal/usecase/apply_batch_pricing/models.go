package apply_batch_pricing

// Request запрос на пакетную правку цен в слое переопределений.
// Целевые даты задаются ровно одним из трех способов:
// явным списком Dates, полным месяцем Month или повторением
// по дням недели Weekdays в текущем месяце.
type Request struct {
	UserID  int64
	CabinID int64

	Price  float64
	Shifts []string

	Dates    []string `json:"dates,omitempty"`    // ["2025-10-15", ...]
	Month    *string  `json:"month,omitempty"`    // "2025-10"
	Weekdays []int    `json:"weekdays,omitempty"` // 0-6, воскресенье = 0
}

// Response результат пакетной правки
type Response struct {
	CabinID          int64    `json:"cabinId"`
	Price            float64  `json:"price"`
	Shifts           []string `json:"shifts"`
	AppliedDates     []string `json:"appliedDates"`
	SkippedPastDates []string `json:"skippedPastDates"`
}
