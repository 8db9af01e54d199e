package get_cabin_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/glamspot/GS-CabinService/internal/api/handlers"
	"github.com/glamspot/GS-CabinService/internal/api/middleware"
	"github.com/glamspot/GS-CabinService/internal/domain"
	bookingService "github.com/glamspot/GS-CabinService/internal/service/bookings"
	"github.com/glamspot/GS-CabinService/internal/service/bookings/models"
)

const (
	msgInvalidCabinID = "некорректный ID кабины"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput   = "некорректные параметры запроса"
	msgCabinNotFound  = "кабина не найдена"
	msgAccessDenied   = "доступ запрещен"
	msgUnauthorized   = "пользователь не аутентифицирован"
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

// Handle GET /api/v1/cabins/{cabinId}/bookings
// Query params: startDate, endDate (YYYY-MM-DD), status, includeInactive
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	cabinID, err := strconv.ParseInt(vars["cabinId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /cabins/{id}/bookings - Invalid cabin ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCabinID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	req := &models.GetCabinBookingsRequest{
		UserID:          userID,
		CabinID:         cabinID,
		IncludeInactive: r.URL.Query().Get("includeInactive") == "true",
	}

	if startStr := r.URL.Query().Get("startDate"); startStr != "" {
		start, err := time.Parse(domain.DateFormat, startStr)
		if err != nil {
			h.logger.Warn("GET /cabins/{id}/bookings - Invalid start date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &start
	}

	if endStr := r.URL.Query().Get("endDate"); endStr != "" {
		end, err := time.Parse(domain.DateFormat, endStr)
		if err != nil {
			h.logger.Warn("GET /cabins/{id}/bookings - Invalid end date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &end
	}

	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetCabinBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookingService.ErrCabinNotFound):
			h.logger.Warn("GET /cabins/{id}/bookings - Cabin not found: cabin_id=%d", cabinID)
			handlers.RespondNotFound(w, msgCabinNotFound)

		case errors.Is(err, bookingService.ErrAccessDenied):
			h.logger.Warn("GET /cabins/{id}/bookings - Access denied: user_id=%d, cabin_id=%d", userID, cabinID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookingService.ErrInvalidInput):
			h.logger.Warn("GET /cabins/{id}/bookings - Invalid input: cabin_id=%d, error=%v", cabinID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /cabins/{id}/bookings - Failed: user_id=%d, cabin_id=%d, error=%v", userID, cabinID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /cabins/{id}/bookings - Bookings retrieved: cabin_id=%d, count=%d", cabinID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
