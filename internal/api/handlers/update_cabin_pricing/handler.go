package update_cabin_pricing

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/glamspot/GS-CabinService/internal/api/handlers"
	"github.com/glamspot/GS-CabinService/internal/api/middleware"
	pricingService "github.com/glamspot/GS-CabinService/internal/service/pricing"
	"github.com/glamspot/GS-CabinService/internal/service/pricing/models"
)

const (
	msgInvalidCabinID     = "некорректный ID кабины"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPricing     = "некорректная недельная таблица цен"
	msgCabinNotFound      = "кабина не найдена"
	msgAccessDenied       = "доступ запрещен"
	msgUnauthorized       = "пользователь не аутентифицирован"
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

// UpdatePricingRequest HTTP запрос замены недельной таблицы цен
type UpdatePricingRequest struct {
	DefaultPricing map[string]map[string]float64 `json:"defaultPricing"`
}

// Handle PUT /api/v1/cabins/{cabinId}/pricing
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	cabinID, err := strconv.ParseInt(vars["cabinId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /cabins/{id}/pricing - Invalid cabin ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCabinID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req UpdatePricingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /cabins/{id}/pricing - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateCabinPricing(r.Context(), &models.UpdateCabinPricingRequest{
		UserID:         userID,
		CabinID:        cabinID,
		DefaultPricing: req.DefaultPricing,
	})
	if err != nil {
		switch {
		case errors.Is(err, pricingService.ErrCabinNotFound):
			h.logger.Warn("PUT /cabins/{id}/pricing - Cabin not found: cabin_id=%d", cabinID)
			handlers.RespondNotFound(w, msgCabinNotFound)

		case errors.Is(err, pricingService.ErrAccessDenied):
			h.logger.Warn("PUT /cabins/{id}/pricing - Access denied: user_id=%d, cabin_id=%d", userID, cabinID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, pricingService.ErrInvalidInput):
			h.logger.Warn("PUT /cabins/{id}/pricing - Invalid pricing table: cabin_id=%d, error=%v", cabinID, err)
			handlers.RespondBadRequest(w, msgInvalidPricing)

		default:
			h.logger.Error("PUT /cabins/{id}/pricing - Failed: user_id=%d, cabin_id=%d, error=%v", userID, cabinID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /cabins/{id}/pricing - Pricing replaced: cabin_id=%d", cabinID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
