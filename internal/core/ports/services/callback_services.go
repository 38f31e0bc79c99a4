package services

import (
	"context"

	"github.com/billyhq/billing_backend/internal/core/domain"
	"github.com/billyhq/billing_backend/internal/dto"
)

// CallbackSvcFacade validates inbound gateway callbacks and turns them into
// deferred reconciliation actions.
type CallbackSvcFacade interface {
	// Resolve re-fetches the event named by the payload from the gateway,
	// maps its status and resolves the tagged transaction within the calling
	// company's scope. Returns (nil, nil) when the event carries no
	// transaction tag: not every gateway event is billing-relevant.
	Resolve(ctx context.Context, company domain.Company, payload dto.CallbackPayload) (*domain.DeferredEvent, error)
}
