package get_location_summary

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/glamspot/GS-CabinService/internal/api/handlers"
	"github.com/glamspot/GS-CabinService/internal/domain"
	getLocationSummary "github.com/glamspot/GS-CabinService/internal/usecase/get_location_summary"
)

const (
	msgInvalidLocationID = "некорректный ID локации"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDays       = "некорректная длина окна"
	msgLocationNotFound  = "локация не найдена"
)

type Handler struct {
	useCase GetLocationSummaryUseCase
	logger  Logger
}

func NewHandler(useCase GetLocationSummaryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/locations/{locationId}/summary
// Query params: date (опционально, YYYY-MM-DD), days (опционально, 1-31)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	locationID, err := strconv.ParseInt(vars["locationId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /locations/{id}/summary - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	useCaseReq := &getLocationSummary.Request{LocationID: locationID}

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /locations/{id}/summary - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		useCaseReq.Date = &date
	}

	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil {
			h.logger.Warn("GET /locations/{id}/summary - Invalid days: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
		useCaseReq.Days = &days
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getLocationSummary.ErrLocationNotFound):
			h.logger.Warn("GET /locations/{id}/summary - Location not found: location_id=%d", locationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, getLocationSummary.ErrInvalidWindow):
			h.logger.Warn("GET /locations/{id}/summary - Invalid window: location_id=%d", locationID)
			handlers.RespondBadRequest(w, msgInvalidDays)

		case errors.Is(err, getLocationSummary.ErrInvalidInput):
			h.logger.Warn("GET /locations/{id}/summary - Invalid input: location_id=%d, error=%v", locationID, err)
			handlers.RespondBadRequest(w, msgInvalidLocationID)

		default:
			h.logger.Error("GET /locations/{id}/summary - Failed: location_id=%d, error=%v", locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /locations/{id}/summary - Summary aggregated: location_id=%d, cabins=%d", locationID, result.CabinsCount)
	handlers.RespondJSON(w, http.StatusOK, result)
}
