package apply_batch_pricing

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/glamspot/GS-CabinService/internal/api/handlers"
	"github.com/glamspot/GS-CabinService/internal/api/middleware"
	applyBatchPricing "github.com/glamspot/GS-CabinService/internal/usecase/apply_batch_pricing"
)

const (
	msgInvalidCabinID     = "некорректный ID кабины"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgCabinNotFound      = "кабина не найдена"
	msgAccessDenied       = "доступ запрещен"
	msgInvalidPrice       = "некорректная цена"
	msgInvalidTarget      = "некорректное описание целевых дат"
	msgNoApplicableDates  = "все целевые даты в прошлом"
	msgUnauthorized       = "пользователь не аутентифицирован"
)

type Handler struct {
	useCase ApplyBatchPricingUseCase
	logger  Logger
}

func NewHandler(useCase ApplyBatchPricingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/cabins/{cabinId}/pricing/batch
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	cabinID, err := strconv.ParseInt(vars["cabinId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /cabins/{id}/pricing/batch - Invalid cabin ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCabinID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req BatchPricingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cabins/{id}/pricing/batch - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID, cabinID))
	if err != nil {
		switch {
		case errors.Is(err, applyBatchPricing.ErrCabinNotFound):
			h.logger.Warn("POST /cabins/{id}/pricing/batch - Cabin not found: cabin_id=%d", cabinID)
			handlers.RespondNotFound(w, msgCabinNotFound)

		case errors.Is(err, applyBatchPricing.ErrAccessDenied):
			h.logger.Warn("POST /cabins/{id}/pricing/batch - Access denied: user_id=%d, cabin_id=%d", userID, cabinID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, applyBatchPricing.ErrInvalidPrice):
			h.logger.Warn("POST /cabins/{id}/pricing/batch - Invalid price: cabin_id=%d, price=%v", cabinID, req.Price)
			handlers.RespondBadRequest(w, msgInvalidPrice)

		case errors.Is(err, applyBatchPricing.ErrNoApplicableDates):
			h.logger.Warn("POST /cabins/{id}/pricing/batch - No applicable dates: cabin_id=%d", cabinID)
			handlers.RespondBadRequest(w, msgNoApplicableDates)

		case errors.Is(err, applyBatchPricing.ErrInvalidTarget), errors.Is(err, applyBatchPricing.ErrInvalidInput):
			h.logger.Warn("POST /cabins/{id}/pricing/batch - Invalid input: cabin_id=%d, error=%v", cabinID, err)
			handlers.RespondBadRequest(w, msgInvalidTarget)

		default:
			h.logger.Error("POST /cabins/{id}/pricing/batch - Failed: user_id=%d, cabin_id=%d, error=%v", userID, cabinID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cabins/{id}/pricing/batch - Batch applied: cabin_id=%d, applied=%d, skipped=%d",
		cabinID, len(result.AppliedDates), len(result.SkippedPastDates))
	handlers.RespondJSON(w, http.StatusOK, result)
}
