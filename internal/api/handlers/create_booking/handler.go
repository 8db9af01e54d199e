package create_booking

import (
	"errors"
	"net/http"

	"github.com/glamspot/GS-CabinService/internal/api/handlers"
	"github.com/glamspot/GS-CabinService/internal/api/middleware"
	createBooking "github.com/glamspot/GS-CabinService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgCabinNotFound      = "кабина не найдена"
	msgSlotTaken          = "слот уже забронирован"
	msgSlotClosed         = "смена закрыта для бронирования"
	msgDateInPast         = "дата бронирования в прошлом"
	msgUnauthorized       = "пользователь не аутентифицирован"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrCabinNotFound):
			h.logger.Warn("POST /bookings - Cabin not found: user_id=%d, cabin_id=%d", userID, req.CabinID)
			handlers.RespondNotFound(w, msgCabinNotFound)

		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: user_id=%d, cabin_id=%d, date=%s, shift=%s",
				userID, req.CabinID, req.Date, req.Shift)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createBooking.ErrSlotClosed):
			h.logger.Warn("POST /bookings - Slot closed: user_id=%d, cabin_id=%d, date=%s, shift=%s",
				userID, req.CabinID, req.Date, req.Shift)
			handlers.RespondConflict(w, msgSlotClosed)

		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /bookings - Date in past: user_id=%d, cabin_id=%d, date=%s", userID, req.CabinID, req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed: user_id=%d, cabin_id=%d, error=%v", userID, req.CabinID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, user_id=%d, cabin_id=%d", result.ID, userID, req.CabinID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
