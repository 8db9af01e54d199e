package apply_batch_pricing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glamspot/GS-CabinService/internal/domain"
	"github.com/glamspot/GS-CabinService/internal/engine"
	pricingRepo "github.com/glamspot/GS-CabinService/internal/infra/storage/pricing"
	pricingService "github.com/glamspot/GS-CabinService/internal/service/pricing"
	"github.com/glamspot/GS-CabinService/pkg/types"
)

// UseCase use case пакетной правки цен: единая цена записывается в слой
// переопределений для целевого набора (дата, смена) пар. Прошедшие даты
// пропускаются, доступность существующих ячеек не меняется.
type UseCase struct {
	pricingService PricingService
	pricingRepo    PricingRepository
	txManager      TransactionManager
	metrics        MetricsRecorder
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	pricing PricingService,
	repo PricingRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		pricingService: pricing,
		pricingRepo:    repo,
		txManager:      txManager,
		metrics:        metrics,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case пакетной правки цен
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ApplyBatchPricing: validation failed: %v", err)
		return nil, err
	}

	shifts, err := domain.ParseShifts(req.Shifts)
	if err != nil {
		uc.logger.Warn("ApplyBatchPricing: invalid shifts %v: %v", req.Shifts, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Получаем текущее время и разворачиваем целевые даты
	now := uc.timeProvider.Now()
	today := engine.StartOfDay(now)

	targetDates, err := buildTargetDates(req, today)
	if err != nil {
		uc.logger.Warn("ApplyBatchPricing: failed to build target dates: %v", err)
		return nil, err
	}
	if len(targetDates) == 0 {
		return nil, ErrNoApplicableDates
	}

	from, to := dateBounds(targetDates)

	uc.logger.Info("ApplyBatchPricing: user=%d, cabin=%d, price=%.2f, %d target dates in %s..%s",
		req.UserID, req.CabinID, req.Price, len(targetDates),
		from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	// 3. Собираем снапшот кабины за целевой период
	cabin, err := uc.pricingService.CabinSnapshot(ctx, req.CabinID, from, to)
	if err != nil {
		if errors.Is(err, pricingService.ErrCabinNotFound) {
			uc.logger.Warn("ApplyBatchPricing: cabin id=%d not found", req.CabinID)
			return nil, ErrCabinNotFound
		}
		uc.logger.Error("ApplyBatchPricing: failed to build snapshot for cabin id=%d: %v", req.CabinID, err)
		return nil, fmt.Errorf("%w: failed to build cabin snapshot: %v", ErrInternal, err)
	}

	// 4. Проверяем права владельца
	if cabin.OwnerID != req.UserID {
		uc.logger.Warn("ApplyBatchPricing: access denied for user=%d to cabin id=%d", req.UserID, req.CabinID)
		return nil, ErrAccessDenied
	}

	// 5. Применяем пакетную правку к снапшоту
	result, err := engine.ApplyBatch(cabin, targetDates, shifts, req.Price, today)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrInvalidPrice):
			uc.logger.Warn("ApplyBatchPricing: rejected price %v for cabin id=%d", req.Price, req.CabinID)
			return nil, fmt.Errorf("%w: %v", ErrInvalidPrice, err)
		case errors.Is(err, engine.ErrNoApplicableDates):
			uc.logger.Info("ApplyBatchPricing: all target dates in the past for cabin id=%d", req.CabinID)
			return nil, ErrNoApplicableDates
		case errors.Is(err, engine.ErrInvalidSlotKey):
			uc.logger.Warn("ApplyBatchPricing: invalid slot key for cabin id=%d: %v", req.CabinID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			uc.logger.Error("ApplyBatchPricing: engine error for cabin id=%d: %v", req.CabinID, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	// 6. Переносим затронутые ячейки обновленного снапшота в хранилище.
	// Запись идет одним upsert-ом в транзакции: либо вся пачка, либо ничего.
	rows := make([]pricingRepo.OverrideRow, 0, len(result.AppliedDates)*len(shifts))
	for _, date := range result.AppliedDates {
		for _, shift := range shifts {
			entry, ok := result.UpdatedCabin.SpecificDates[date][shift]
			if !ok {
				continue
			}
			rows = append(rows, pricingRepo.OverrideRow{
				Date:      date,
				Shift:     shift,
				Price:     entry.Price,
				Available: entry.Available,
			})
		}
	}

	err = uc.txManager.Do(ctx, func(ctx context.Context) error {
		return uc.pricingRepo.UpsertOverrides(ctx, req.CabinID, rows)
	})
	if err != nil {
		uc.logger.Error("ApplyBatchPricing: failed to persist overrides for cabin id=%d: %v", req.CabinID, err)
		return nil, fmt.Errorf("%w: failed to persist overrides: %v", ErrInternal, err)
	}

	uc.metrics.RecordBatchOverrides("applied", len(rows))
	uc.metrics.RecordBatchOverrides("skipped_past", len(result.SkippedPastDates)*len(shifts))

	uc.logger.Info("ApplyBatchPricing: cabin=%d, applied %d dates, skipped %d past dates",
		req.CabinID, len(result.AppliedDates), len(result.SkippedPastDates))

	return &Response{
		CabinID:          req.CabinID,
		Price:            req.Price,
		Shifts:           shiftsToStrings(shifts),
		AppliedDates:     datesToStrings(result.AppliedDates),
		SkippedPastDates: datesToStrings(result.SkippedPastDates),
	}, nil
}

// dateBounds возвращает минимальную и максимальную дату списка
func dateBounds(dates []time.Time) (from, to time.Time) {
	from, to = dates[0], dates[0]
	for _, date := range dates[1:] {
		if date.Before(from) {
			from = date
		}
		if date.After(to) {
			to = date
		}
	}
	return from, to
}

func shiftsToStrings(shifts []domain.Shift) []string {
	out := make([]string, 0, len(shifts))
	for _, shift := range shifts {
		out = append(out, string(shift))
	}
	return out
}

func datesToStrings(dates []types.DateString) []string {
	out := make([]string, 0, len(dates))
	for _, date := range dates {
		out = append(out, string(date))
	}
	return out
}
