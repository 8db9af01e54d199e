package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/glamspot/GS-CabinService/internal/domain"
	bookingRepo "github.com/glamspot/GS-CabinService/internal/infra/storage/booking"
	"github.com/glamspot/GS-CabinService/internal/integrations/catalogservice"
	"github.com/glamspot/GS-CabinService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo   BookingRepository
	catalogClient CatalogServiceClient
	logger        Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	catalogClient CatalogServiceClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:   bookingRepo,
		catalogClient: catalogClient,
		logger:        logger,
	}
}

// GetByID получает бронирование по ID.
// Пользователь видит только своё бронирование или бронирование
// кабины, которой он владеет.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkUserAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetCabinBookings получает бронирования кабины с фильтрацией по периоду
// и статусу. Доступно только владельцу кабины.
func (s *Service) GetCabinBookings(ctx context.Context, req *models.GetCabinBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetCabinBookings: fetching bookings for cabin=%d, user=%d", req.CabinID, req.UserID)

	// Проверяем права владельца через каталог
	if err := s.checkOwnerAccess(ctx, req.CabinID, req.UserID); err != nil {
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetCabinBookings: invalid filter for cabin=%d: %v", req.CabinID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.GetByCabinWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetCabinBookings: repository error for cabin=%d: %v", req.CabinID, err)
		return nil, fmt.Errorf("%w: GetCabinBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCabinBookings: fetched %d bookings for cabin=%d", len(bookings), req.CabinID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование.
// Отменить может автор бронирования или владелец кабины.
func (s *Service) Cancel(ctx context.Context, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: user=%d cancelling booking id=%d", req.UserID, req.BookingID)

	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if err := s.checkUserAccess(ctx, booking, req.UserID); err != nil {
		s.logger.Warn("Cancel: access denied for user=%d to booking id=%d", req.UserID, req.BookingID)
		return nil, err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d in status=%s cannot be cancelled", req.BookingID, booking.Status)
		return nil, ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, req.BookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrCannotCancel) {
			return nil, ErrCannotCancel
		}
		s.logger.Error("Cancel: failed to cancel booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	cancelled, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		s.logger.Error("Cancel: failed to reload booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Cancel - reload error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking id=%d successfully cancelled", req.BookingID)
	return models.FromDomainBooking(cancelled), nil
}

// checkUserAccess проверяет, что пользователь - автор бронирования
// или владелец кабины
func (s *Service) checkUserAccess(ctx context.Context, booking *domain.Booking, userID int64) error {
	if booking.UserID == userID {
		return nil
	}

	cabin, err := s.catalogClient.GetCabin(ctx, booking.CabinID)
	if err != nil {
		if errors.Is(err, catalogservice.ErrCabinNotFound) {
			return ErrAccessDenied
		}
		return fmt.Errorf("%w: checkUserAccess - catalog error: %v", ErrInternal, err)
	}

	if cabin.OwnerID != userID {
		return ErrAccessDenied
	}
	return nil
}

// checkOwnerAccess проверяет, что пользователь владеет кабиной
func (s *Service) checkOwnerAccess(ctx context.Context, cabinID, userID int64) error {
	cabin, err := s.catalogClient.GetCabin(ctx, cabinID)
	if err != nil {
		if errors.Is(err, catalogservice.ErrCabinNotFound) {
			s.logger.Warn("checkOwnerAccess: cabin id=%d not found", cabinID)
			return ErrCabinNotFound
		}
		return fmt.Errorf("%w: checkOwnerAccess - catalog error: %v", ErrInternal, err)
	}

	if cabin.OwnerID != userID {
		s.logger.Warn("checkOwnerAccess: access denied for user=%d to cabin id=%d", userID, cabinID)
		return ErrAccessDenied
	}
	return nil
}
