package get_cabin_calendar

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/glamspot/GS-CabinService/internal/api/handlers"
	"github.com/glamspot/GS-CabinService/internal/domain"
	getCabinCalendar "github.com/glamspot/GS-CabinService/internal/usecase/get_cabin_calendar"
)

const (
	msgInvalidCabinID = "некорректный ID кабины"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDays    = "некорректная длина окна"
	msgCabinNotFound  = "кабина не найдена"
)

type Handler struct {
	useCase GetCabinCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCabinCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/cabins/{cabinId}/calendar
// Query params: date (опционально, YYYY-MM-DD), days (опционально, 1-31)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	cabinID, err := strconv.ParseInt(vars["cabinId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /cabins/{id}/calendar - Invalid cabin ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCabinID)
		return
	}

	useCaseReq := &getCabinCalendar.Request{CabinID: cabinID}

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /cabins/{id}/calendar - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		useCaseReq.Date = &date
	}

	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil {
			h.logger.Warn("GET /cabins/{id}/calendar - Invalid days: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
		useCaseReq.Days = &days
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getCabinCalendar.ErrCabinNotFound):
			h.logger.Warn("GET /cabins/{id}/calendar - Cabin not found: cabin_id=%d", cabinID)
			handlers.RespondNotFound(w, msgCabinNotFound)

		case errors.Is(err, getCabinCalendar.ErrInvalidWindow):
			h.logger.Warn("GET /cabins/{id}/calendar - Invalid window: cabin_id=%d", cabinID)
			handlers.RespondBadRequest(w, msgInvalidDays)

		case errors.Is(err, getCabinCalendar.ErrInvalidInput):
			h.logger.Warn("GET /cabins/{id}/calendar - Invalid input: cabin_id=%d, error=%v", cabinID, err)
			handlers.RespondBadRequest(w, msgInvalidCabinID)

		default:
			h.logger.Error("GET /cabins/{id}/calendar - Failed: cabin_id=%d, error=%v", cabinID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /cabins/{id}/calendar - Calendar resolved: cabin_id=%d, days=%d", cabinID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}
