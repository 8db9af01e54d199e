package get_user_bookings

import (
	"errors"
	"net/http"

	"github.com/glamspot/GS-CabinService/internal/api/handlers"
	"github.com/glamspot/GS-CabinService/internal/api/middleware"
	bookingService "github.com/glamspot/GS-CabinService/internal/service/bookings"
	"github.com/glamspot/GS-CabinService/internal/service/bookings/models"
)

const (
	msgInvalidStatus = "некорректный статус бронирования"
	msgUnauthorized  = "пользователь не аутентифицирован"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
// Query params: status (опционально: pending|confirmed|cancelled)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	req := &models.GetUserBookingsRequest{UserID: userID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetUserBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookingService.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid status: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /bookings - Failed: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved: user_id=%d, count=%d", userID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
