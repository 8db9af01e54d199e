package domain

import "fmt"

// Shift represents one of the three fixed daily time blocks a cabin is rented in
type Shift string

const (
	ShiftMorning   Shift = "morning"
	ShiftAfternoon Shift = "afternoon"
	ShiftEvening   Shift = "evening"
)

// AllShifts перечисляет смены в каноническом порядке обхода
// (утро → день → вечер). Порядок фиксирован для детерминизма агрегаций и тестов.
var AllShifts = []Shift{ShiftMorning, ShiftAfternoon, ShiftEvening}

// IsValid returns true if the shift is one of the three known shifts
func (s Shift) IsValid() bool {
	switch s {
	case ShiftMorning, ShiftAfternoon, ShiftEvening:
		return true
	default:
		return false
	}
}

// ParseShift парсит смену из строки запроса
func ParseShift(s string) (Shift, error) {
	shift := Shift(s)
	if !shift.IsValid() {
		return "", fmt.Errorf("unknown shift %q", s)
	}
	return shift, nil
}

// ParseShifts парсит непустой список смен, отбрасывая дубликаты
// и сохраняя канонический порядок
func ParseShifts(raw []string) ([]Shift, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("shifts list is empty")
	}

	requested := make(map[Shift]bool, len(raw))
	for _, s := range raw {
		shift, err := ParseShift(s)
		if err != nil {
			return nil, err
		}
		requested[shift] = true
	}

	shifts := make([]Shift, 0, len(requested))
	for _, shift := range AllShifts {
		if requested[shift] {
			shifts = append(shifts, shift)
		}
	}
	return shifts, nil
}
