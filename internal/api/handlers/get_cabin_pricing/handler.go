package get_cabin_pricing

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/glamspot/GS-CabinService/internal/api/handlers"
	"github.com/glamspot/GS-CabinService/internal/api/middleware"
	pricingService "github.com/glamspot/GS-CabinService/internal/service/pricing"
)

const (
	msgInvalidCabinID = "некорректный ID кабины"
	msgCabinNotFound  = "кабина не найдена"
	msgAccessDenied   = "доступ запрещен"
	msgUnauthorized   = "пользователь не аутентифицирован"
)

type Handler struct {
	service PricingService
	logger  Logger
}

func NewHandler(service PricingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/cabins/{cabinId}/pricing
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	cabinID, err := strconv.ParseInt(vars["cabinId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /cabins/{id}/pricing - Invalid cabin ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCabinID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	result, err := h.service.GetCabinPricing(r.Context(), cabinID, userID)
	if err != nil {
		switch {
		case errors.Is(err, pricingService.ErrCabinNotFound):
			h.logger.Warn("GET /cabins/{id}/pricing - Cabin not found: cabin_id=%d", cabinID)
			handlers.RespondNotFound(w, msgCabinNotFound)

		case errors.Is(err, pricingService.ErrAccessDenied):
			h.logger.Warn("GET /cabins/{id}/pricing - Access denied: user_id=%d, cabin_id=%d", userID, cabinID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /cabins/{id}/pricing - Failed: cabin_id=%d, error=%v", cabinID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /cabins/{id}/pricing - Pricing retrieved: cabin_id=%d", cabinID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
