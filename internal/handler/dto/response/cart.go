package response

import (
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/domain/order"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/usecase"
)

// ValidateCartResponse is the live-cart validation shape: a null corrected
// draft means the submitted draft needed no change.
type ValidateCartResponse struct {
	CorrectedDraftOrder *order.DraftOrder `json:"correctedDraftOrder"`
	RemovedItemNames    []string          `json:"removedItemNames"`
}

// ValidateReorderResponse is the reorder shape: surviving items only, no
// corrected draft.
type ValidateReorderResponse struct {
	ValidItems       []order.LineItem `json:"validItems"`
	RemovedItemNames []string         `json:"removedItemNames"`
}

func FromValidationResult(result *usecase.ValidationResult) *ValidateCartResponse {
	return &ValidateCartResponse{
		CorrectedDraftOrder: result.Corrected,
		RemovedItemNames:    result.RemovedItemNames,
	}
}

func FromReorderResult(result *usecase.ValidationResult) *ValidateReorderResponse {
	items := result.ValidItems
	if items == nil {
		items = []order.LineItem{}
	}
	return &ValidateReorderResponse{
		ValidItems:       items,
		RemovedItemNames: result.RemovedItemNames,
	}
}
