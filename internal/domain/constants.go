package domain

// Default values
const (
	// FallbackPrice платформенная цена последней инстанции, когда ни
	// переопределение, ни недельная таблица, ни фиксированная цена кабины
	// не заданы
	FallbackPrice = 100.0

	// DefaultWindowDays длина календарного окна по умолчанию (неделя)
	DefaultWindowDays = 7
)

// Business validation constants
const (
	MinWindowDays = 1
	MaxWindowDays = 31

	MaxBatchDates = 366 // не больше года дат в одном пакетном редактировании

	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)
