package apply_batch_pricing

import (
	applyBatchPricing "github.com/glamspot/GS-CabinService/internal/usecase/apply_batch_pricing"
)

// BatchPricingRequest HTTP запрос пакетной правки цен
type BatchPricingRequest struct {
	Price  float64  `json:"price"`
	Shifts []string `json:"shifts"`

	Dates    []string `json:"dates,omitempty"`
	Month    *string  `json:"month,omitempty"`
	Weekdays []int    `json:"weekdays,omitempty"`
}

// ToUseCaseRequest создает запрос use case
func (r *BatchPricingRequest) ToUseCaseRequest(userID, cabinID int64) *applyBatchPricing.Request {
	return &applyBatchPricing.Request{
		UserID:   userID,
		CabinID:  cabinID,
		Price:    r.Price,
		Shifts:   r.Shifts,
		Dates:    r.Dates,
		Month:    r.Month,
		Weekdays: r.Weekdays,
	}
}
