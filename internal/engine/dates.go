package engine

import "time"

// Построители целевых наборов дат для пакетного редактирования.
// Третий вариант - явный список дат - приходит от клиента как есть.

// DatesInMonth возвращает все дни указанного месяца по возрастанию
func DatesInMonth(year int, month time.Month, loc *time.Location) []time.Time {
	if loc == nil {
		loc = time.UTC
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	// День 0 следующего месяца = последний день текущего
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()

	dates := make([]time.Time, 0, lastDay)
	for i := 0; i < lastDay; i++ {
		dates = append(dates, first.AddDate(0, 0, i))
	}
	return dates
}

// WeekdayDatesInMonth возвращает дни месяца anchor, попадающие на указанные
// дни недели, по возрастанию. Используется для рекуррентных правок вида
// "все понедельники и среды текущего месяца".
func WeekdayDatesInMonth(anchor time.Time, weekdays []time.Weekday) []time.Time {
	if len(weekdays) == 0 {
		return []time.Time{}
	}

	wanted := make(map[time.Weekday]bool, len(weekdays))
	for _, wd := range weekdays {
		wanted[wd] = true
	}

	var matched []time.Time
	for _, date := range DatesInMonth(anchor.Year(), anchor.Month(), anchor.Location()) {
		if wanted[date.Weekday()] {
			matched = append(matched, date)
		}
	}
	return matched
}
