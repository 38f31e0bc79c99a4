package services

import (
	"context"

	"github.com/billyhq/billing_backend/internal/core/domain"
	"github.com/billyhq/billing_backend/internal/dto"
)

// DispatcherSvcFacade performs mutating gateway operations with at-most-once
// semantics across retries. ConfigureAPIKey must be called before any other
// method; violating that is a programmer error, not a retryable failure.
type DispatcherSvcFacade interface {
	// ConfigureAPIKey sets the gateway credential for this dispatcher.
	ConfigureAPIKey(apiKey string)

	// Debit charges the transaction's funding instrument.
	Debit(ctx context.Context, txn domain.Transaction) (*dto.DispatchResult, error)

	// Credit pays out to the transaction's funding instrument.
	Credit(ctx context.Context, txn domain.Transaction) (*dto.DispatchResult, error)

	// Refund reverses the original DEBIT the transaction references. A refund
	// never fetches a funding instrument of its own.
	Refund(ctx context.Context, txn domain.Transaction) (*dto.DispatchResult, error)

	// CreateCustomer creates the gateway-side customer record and returns its URI.
	CreateCustomer(ctx context.Context, customer domain.Customer) (string, error)

	// PrepareCustomer associates a funding instrument with the gateway-side
	// customer record. A nil URI is a valid no-op.
	PrepareCustomer(ctx context.Context, customer domain.Customer, fundingInstrumentURI *string) error

	// ValidateCustomer checks a customer processor URI against the gateway.
	ValidateCustomer(ctx context.Context, processorURI string) error

	// ValidateFundingInstrument checks a funding instrument URI against the gateway.
	ValidateFundingInstrument(ctx context.Context, fundingInstrumentURI string) error

	// RegisterCallback registers a company's callback URL with the gateway.
	RegisterCallback(ctx context.Context, company domain.Company, url string) error
}
