package services

import (
	"context"

	"github.com/billyhq/billing_backend/internal/core/domain"
)

// ReconciliationSvcFacade applies deferred events to durable state.
type ReconciliationSvcFacade interface {
	// Apply records the event and recomputes the owning transaction's and
	// invoice's statuses from full history, atomically. A redelivered event
	// fails with apperrors.ErrDuplicateEvent and leaves no partial state.
	Apply(ctx context.Context, action domain.DeferredEvent) error
}
