package engine

import "time"

// StartOfDay обнуляет время, оставляя только дату
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek возвращает понедельник недели, содержащей t (ISO-неделя,
// понедельник = первый день)
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)

	// time.Weekday: Sunday = 0, ISO: Monday = 1 ... Sunday = 7
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7 // воскресенье
	}
	return day.AddDate(0, 0, -offset)
}

// Window генерирует length последовательных календарных дней, начиная с
// понедельника недели, содержащей anchor. Если задан notBefore, даты строго
// раньше него выбрасываются: последовательность может стать короче length,
// но никогда не длиннее и не меняет порядок.
//
// Чистая функция: детерминирована для одинаковых входов, системные часы
// не читаются.
func Window(anchor time.Time, length int, notBefore *time.Time) []time.Time {
	if length <= 0 {
		return []time.Time{}
	}

	start := StartOfWeek(anchor)

	var floor time.Time
	if notBefore != nil {
		floor = StartOfDay(*notBefore)
	}

	dates := make([]time.Time, 0, length)
	for i := 0; i < length; i++ {
		date := start.AddDate(0, 0, i)
		if notBefore != nil && date.Before(floor) {
			continue
		}
		dates = append(dates, date)
	}
	return dates
}

// SingleDay возвращает окно из одного дня
func SingleDay(date time.Time) []time.Time {
	return []time.Time{StartOfDay(date)}
}

// sameDay проверяет, что две даты относятся к одному календарному дню
func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
