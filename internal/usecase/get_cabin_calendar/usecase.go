package get_cabin_calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glamspot/GS-CabinService/internal/domain"
	"github.com/glamspot/GS-CabinService/internal/engine"
	pricingService "github.com/glamspot/GS-CabinService/internal/service/pricing"
	"github.com/glamspot/GS-CabinService/pkg/types"
)

// UseCase use case для получения календаря кабины: окно дат,
// в котором каждая (дата, смена) разрешена в финальный статус и цену
type UseCase struct {
	pricingService PricingService
	bookingRepo    BookingRepository
	metrics        MetricsRecorder
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	pricing PricingService,
	bookingRepo BookingRepository,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		pricingService: pricing,
		bookingRepo:    bookingRepo,
		metrics:        metrics,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case получения календаря кабины
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCabinCalendar: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время и вычисляем границы окна
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

	from, to := windowBounds(anchor, days)

	uc.logger.Info("GetCabinCalendar: cabin=%d, window=%s..%s",
		req.CabinID, from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	// 3. Собираем снапшот кабины со слоями прайсинга за окно
	cabin, err := uc.pricingService.CabinSnapshot(ctx, req.CabinID, from, to)
	if err != nil {
		if errors.Is(err, pricingService.ErrCabinNotFound) {
			uc.logger.Warn("GetCabinCalendar: cabin id=%d not found", req.CabinID)
			return nil, ErrCabinNotFound
		}
		uc.logger.Error("GetCabinCalendar: failed to build snapshot for cabin id=%d: %v", req.CabinID, err)
		return nil, fmt.Errorf("%w: failed to build cabin snapshot: %v", ErrInternal, err)
	}

	// 4. Строим окно дат. Кабина не продается раньше даты своего создания,
	// поэтому дата создания служит нижней границей окна.
	var notBefore *time.Time
	if !cabin.CreatedAt.IsZero() {
		floor := engine.StartOfDay(cabin.CreatedAt)
		notBefore = &floor
	}

	var window []time.Time
	if days == 1 {
		window = engine.SingleDay(anchor)
	} else {
		window = engine.Window(anchor, days, notBefore)
	}

	// 5. Загружаем блокирующие бронирования за окно
	bookings, err := uc.bookingRepo.GetConfirmedByCabins(ctx, []int64{req.CabinID}, from, to)
	if err != nil {
		uc.logger.Error("GetCabinCalendar: failed to load bookings for cabin id=%d: %v", req.CabinID, err)
		return nil, fmt.Errorf("%w: failed to load bookings: %v", ErrInternal, err)
	}

	// 6. Разрешаем каждую (дата, смена) в финальный статус
	responseDays := make([]DayView, 0, len(window))
	for _, day := range window {
		dayView := DayView{
			Date:   string(types.NewDateString(day)),
			Shifts: make([]SlotView, 0, len(domain.AllShifts)),
		}

		for _, shift := range domain.AllShifts {
			slot, err := engine.ResolveSlot(cabin, day, shift, bookings, today)
			if err != nil {
				uc.logger.Error("GetCabinCalendar: failed to resolve slot cabin=%d date=%s shift=%s: %v",
					req.CabinID, day.Format(domain.DateFormat), shift, err)
				return nil, fmt.Errorf("%w: failed to resolve slot: %v", ErrInternal, err)
			}

			uc.metrics.RecordSlotResolution(string(slot.Status))

			dayView.Shifts = append(dayView.Shifts, SlotView{
				Shift:    string(shift),
				Status:   string(slot.Status),
				Price:    slot.Price,
				Bookable: slot.IsBookable(),
			})
		}

		responseDays = append(responseDays, dayView)
	}

	uc.logger.Info("GetCabinCalendar: resolved %d days for cabin=%d", len(responseDays), req.CabinID)

	return &Response{
		CabinID:   cabin.ID,
		CabinName: cabin.Name,
		Days:      responseDays,
	}, nil
}

// windowBounds возвращает границы периода загрузки данных для окна.
// Для окна длиннее одного дня левая граница выравнивается на понедельник.
func windowBounds(anchor time.Time, days int) (from, to time.Time) {
	if days == 1 {
		return anchor, anchor
	}
	from = engine.StartOfWeek(anchor)
	to = from.AddDate(0, 0, days-1)
	return from, to
}
