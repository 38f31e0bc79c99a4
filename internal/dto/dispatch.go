package dto

import "github.com/billyhq/billing_backend/internal/core/domain"

// DispatchResult is the outcome of a gateway dispatch, whether it came from
// the mutating call or from the idempotency lookup.
type DispatchResult struct {
	ProcessorURI string                   `json:"processorURI"`
	Status       domain.TransactionStatus `json:"status"`
}
