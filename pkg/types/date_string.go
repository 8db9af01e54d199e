package types

import (
	"fmt"
	"time"
)

// DateStringLayout канонический формат календарной даты (YYYY-MM-DD)
const DateStringLayout = "2006-01-02"

// DateString календарная дата в каноническом формате YYYY-MM-DD.
// Используется как ключ таблицы переопределений и во всех wire-моделях.
// Лексикографическое сравнение строк совпадает с хронологическим порядком.
type DateString string

// NewDateString создает DateString из time.Time (время отбрасывается)
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(DateStringLayout))
}

// NewDateStringFromString парсит и валидирует строку даты
func NewDateStringFromString(s string) (DateString, error) {
	if _, err := time.Parse(DateStringLayout, s); err != nil {
		return "", fmt.Errorf("invalid date %q: expected format YYYY-MM-DD", s)
	}
	return DateString(s), nil
}

// Time возвращает дату как time.Time (полночь, UTC)
func (d DateString) Time() (time.Time, error) {
	return time.Parse(DateStringLayout, string(d))
}

// MustTime возвращает дату как time.Time, паникует при невалидной дате.
// Использовать только для значений, прошедших через NewDateString*.
func (d DateString) MustTime() time.Time {
	t, err := d.Time()
	if err != nil {
		panic(err)
	}
	return t
}

// Weekday возвращает номер дня недели 0-6, где воскресенье = 0
func (d DateString) Weekday() (int, error) {
	t, err := d.Time()
	if err != nil {
		return 0, err
	}
	return int(t.Weekday()), nil
}

// Before сравнивает даты хронологически
func (d DateString) Before(other DateString) bool {
	return string(d) < string(other)
}

// String реализует fmt.Stringer
func (d DateString) String() string {
	return string(d)
}
