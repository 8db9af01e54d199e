package get_location_summary

import (
	"context"
	"errors"
	"fmt"

	"github.com/glamspot/GS-CabinService/internal/domain"
	"github.com/glamspot/GS-CabinService/internal/engine"
	pricingService "github.com/glamspot/GS-CabinService/internal/service/pricing"
	"github.com/glamspot/GS-CabinService/pkg/types"
)

// UseCase use case для сводки доступности локации: по каждому дню окна и
// каждой смене считаются агрегаты по всем кабинам локации
type UseCase struct {
	pricingService PricingService
	bookingRepo    BookingRepository
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	pricing PricingService,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		pricingService: pricing,
		bookingRepo:    bookingRepo,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case получения сводки локации
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetLocationSummary: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время и строим окно
	now := uc.timeProvider.Now()
	today := engine.StartOfDay(now)

	anchor := today
	if req.Date != nil {
		anchor = engine.StartOfDay(*req.Date)
	}

	days := domain.DefaultWindowDays
	if req.Days != nil {
		days = *req.Days
	}

	window := engine.Window(anchor, days, nil)
	from, to := window[0], window[len(window)-1]

	uc.logger.Info("GetLocationSummary: location=%d, window=%s..%s",
		req.LocationID, from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	// 3. Собираем локацию и снапшоты всех её кабин
	location, cabins, err := uc.pricingService.CabinSnapshots(ctx, req.LocationID, from, to)
	if err != nil {
		if errors.Is(err, pricingService.ErrLocationNotFound) {
			uc.logger.Warn("GetLocationSummary: location id=%d not found", req.LocationID)
			return nil, ErrLocationNotFound
		}
		uc.logger.Error("GetLocationSummary: failed to build snapshots for location id=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: failed to build cabin snapshots: %v", ErrInternal, err)
	}

	// 4. Загружаем блокирующие бронирования всех кабин за окно
	cabinIDs := make([]int64, 0, len(cabins))
	for _, cabin := range cabins {
		cabinIDs = append(cabinIDs, cabin.ID)
	}

	bookings, err := uc.bookingRepo.GetConfirmedByCabins(ctx, cabinIDs, from, to)
	if err != nil {
		uc.logger.Error("GetLocationSummary: failed to load bookings for location id=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: failed to load bookings: %v", ErrInternal, err)
	}

	// 5. Агрегируем. Кабины с некорректными данными пропускаются
	// поштучно и попадают в аномалии, агрегация не прерывается.
	aggregates, anomalies := engine.AggregateLocation(cabins, bookings, window, today)
	for _, anomaly := range anomalies {
		uc.logger.Warn("GetLocationSummary: skipped malformed cabin id=%d at location id=%d: %s",
			anomaly.CabinID, req.LocationID, anomaly.Reason)
	}

	// 6. Выкладываем агрегаты в ответ в каноническом порядке дат и смен
	responseDays := make([]DaySummary, 0, len(window))
	for _, day := range window {
		key := types.NewDateString(day)
		byShift := aggregates[key]

		daySummary := DaySummary{
			Date:   string(key),
			Shifts: make([]ShiftSummary, 0, len(domain.AllShifts)),
		}

		for _, shift := range domain.AllShifts {
			agg := byShift[shift]
			daySummary.Shifts = append(daySummary.Shifts, ShiftSummary{
				Shift:               string(shift),
				TotalCabins:         agg.TotalCabins,
				AvailableCabins:     agg.AvailableCabins,
				ManuallyClosedCount: agg.ManuallyClosedCount,
				AveragePrice:        agg.AveragePrice,
			})
		}

		responseDays = append(responseDays, daySummary)
	}

	uc.logger.Info("GetLocationSummary: aggregated %d days over %d cabins for location=%d",
		len(responseDays), len(cabins), req.LocationID)

	return &Response{
		LocationID:   location.ID,
		LocationName: location.Name,
		City:         location.City,
		CabinsCount:  len(cabins),
		Days:         responseDays,
	}, nil
}
