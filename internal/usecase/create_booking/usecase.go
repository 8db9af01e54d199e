package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/glamspot/GS-CabinService/internal/domain"
	"github.com/glamspot/GS-CabinService/internal/engine"
	bookingRepo "github.com/glamspot/GS-CabinService/internal/infra/storage/booking"
	pricingService "github.com/glamspot/GS-CabinService/internal/service/pricing"
)

// UseCase use case создания бронирования. Слот резолвится движком в момент
// создания; расчётная цена денормализуется в бронирование и больше не меняется,
// даже если владелец потом поменяет прайсинг.
type UseCase struct {
	pricingService PricingService
	bookingRepo    BookingRepository
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	pricing PricingService,
	repo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		pricingService: pricing,
		bookingRepo:    repo,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	shift := domain.Shift(req.Shift)

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()
	today := engine.StartOfDay(now)
	date := engine.StartOfDay(req.Date)

	uc.logger.Info("CreateBooking: user=%d, cabin=%d, date=%s, shift=%s",
		req.UserID, req.CabinID, date.Format(domain.DateFormat), shift)

	// 3. Резолвинг слота и вставка идут в одной сериализуемой транзакции,
	// плюс частичный уникальный индекс по подтвержденным бронированиям
	// на стороне БД. Два конкурентных запроса на один слот не могут
	// подтвердиться оба.
	var created *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		cabin, err := uc.pricingService.CabinSnapshot(txCtx, req.CabinID, date, date)
		if err != nil {
			if errors.Is(err, pricingService.ErrCabinNotFound) {
				return ErrCabinNotFound
			}
			return fmt.Errorf("%w: failed to build cabin snapshot: %v", ErrInternal, err)
		}

		bookings, err := uc.bookingRepo.GetConfirmedByCabins(txCtx, []int64{req.CabinID}, date, date)
		if err != nil {
			return fmt.Errorf("%w: failed to load bookings: %v", ErrInternal, err)
		}

		slot, err := engine.ResolveSlot(cabin, date, shift, bookings, today)
		if err != nil {
			return fmt.Errorf("%w: failed to resolve slot: %v", ErrInvalidInput, err)
		}

		switch slot.Status {
		case domain.SlotAvailable:
			// Слот свободен, продолжаем
		case domain.SlotPastUnavailable:
			return ErrDateInPast
		case domain.SlotManuallyClosed:
			return ErrSlotClosed
		case domain.SlotBooked:
			return ErrSlotTaken
		}

		// Повторная проверка занятости уже внутри транзакции
		count, err := uc.bookingRepo.CountConfirmedForSlot(txCtx, req.CabinID, date, shift)
		if err != nil {
			return fmt.Errorf("%w: failed to recheck slot: %v", ErrInternal, err)
		}
		if count > 0 {
			return ErrSlotTaken
		}

		booking := &domain.Booking{
			UserID:      req.UserID,
			CabinID:     req.CabinID,
			LocationID:  cabin.LocationID,
			BookingDate: date,
			Shift:       shift,
			Status:      domain.StatusConfirmed,
			Price:       *slot.Price,
			Notes:       req.Notes,
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				return ErrSlotTaken
			}
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrCabinNotFound),
			errors.Is(err, ErrSlotTaken),
			errors.Is(err, ErrSlotClosed),
			errors.Is(err, ErrDateInPast),
			errors.Is(err, ErrInvalidInput):
			uc.logger.Warn("CreateBooking: rejected for user=%d, cabin=%d: %v", req.UserID, req.CabinID, err)
			return nil, err
		default:
			uc.logger.Error("CreateBooking: failed for user=%d, cabin=%d: %v", req.UserID, req.CabinID, err)
			if errors.Is(err, ErrInternal) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CreateBooking: booking id=%d created for user=%d, cabin=%d, price=%.2f",
		created.ID, req.UserID, req.CabinID, created.Price)

	return &Response{
		ID:          created.ID,
		UserID:      created.UserID,
		CabinID:     created.CabinID,
		LocationID:  created.LocationID,
		BookingDate: created.BookingDate.Format(domain.DateFormat),
		Shift:       string(created.Shift),
		Status:      string(created.Status),
		Price:       created.Price,
		Notes:       created.Notes,
		CreatedAt:   created.CreatedAt,
	}, nil
}
