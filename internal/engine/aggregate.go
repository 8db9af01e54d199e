package engine

import (
	"time"

	"github.com/glamspot/GS-CabinService/internal/domain"
	"github.com/glamspot/GS-CabinService/pkg/types"
)

// CabinAnomaly описывает кабину, пропущенную агрегатором из-за невалидного
// snapshot. Движок чистый и сам не логирует - вызывающий код решает,
// что делать с аномалиями.
type CabinAnomaly struct {
	CabinID int64
	Reason  string
}

// AggregateLocation агрегирует по всем кабинам локации статусы слотов для
// каждой (date, shift) пары окна.
//
// totalCabins считается по живому списку кабин, а не по денормализованному
// счетчику локации - тому нельзя доверять. averagePrice - среднее по
// доступным кабинам; nil, а не ноль, когда доступных нет (деления на ноль
// не бывает).
//
// Агрегация - чистая свертка. Кабина с невалидным snapshot пропускается
// целиком и попадает в список аномалий; одна кривая кабина не роняет
// агрегацию всей локации.
func AggregateLocation(cabins []*domain.Cabin, bookings []*domain.Booking, window []time.Time, today time.Time) (map[types.DateString]map[domain.Shift]domain.AggregateDayShift, []CabinAnomaly) {
	var anomalies []CabinAnomaly

	// Отбираем валидные кабины один раз, до свертки
	valid := make([]*domain.Cabin, 0, len(cabins))
	for _, cabin := range cabins {
		if err := cabin.Validate(); err != nil {
			var id int64
			if cabin != nil {
				id = cabin.ID
			}
			anomalies = append(anomalies, CabinAnomaly{CabinID: id, Reason: err.Error()})
			continue
		}
		valid = append(valid, cabin)
	}

	result := make(map[types.DateString]map[domain.Shift]domain.AggregateDayShift, len(window))

	// Обход детерминирован: даты по возрастанию, смены утро → день → вечер
	for _, date := range window {
		dateKey := types.NewDateString(date)
		byShift := make(map[domain.Shift]domain.AggregateDayShift, len(domain.AllShifts))

		for _, shift := range domain.AllShifts {
			agg := domain.AggregateDayShift{TotalCabins: len(valid)}
			var priceSum float64

			for _, cabin := range valid {
				slot, err := ResolveSlot(cabin, date, shift, bookings, today)
				if err != nil {
					// Validate выше отсек невалидные snapshot, сюда попадать
					// не должны; на всякий случай кабина просто не учитывается
					continue
				}

				switch slot.Status {
				case domain.SlotAvailable:
					agg.AvailableCabins++
					if slot.Price != nil {
						priceSum += *slot.Price
					}
				case domain.SlotManuallyClosed:
					agg.ManuallyClosedCount++
				}
			}

			if agg.AvailableCabins > 0 {
				avg := priceSum / float64(agg.AvailableCabins)
				agg.AveragePrice = &avg
			}

			byShift[shift] = agg
		}

		result[dateKey] = byShift
	}

	return result, anomalies
}
