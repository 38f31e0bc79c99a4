package repositories

import (
	"context"

	"github.com/billyhq/billing_backend/internal/core/domain"
)

// EventReader defines read operations for transaction event data
type EventReader interface {
	// FindEventsByTransactionID retrieves all recorded events for a
	// transaction, ordered by occurred_at descending then processor id
	// descending.
	FindEventsByTransactionID(ctx context.Context, transactionID string) ([]domain.TransactionEvent, error)
}

// EventWriter defines write operations for transaction event data
type EventWriter interface {
	// ApplyEvent executes the dedup check, the event insert, and the
	// transaction and invoice status recomputation as one atomic unit.
	// A second event with the same (company_id, processor_id) fails with
	// apperrors.ErrDuplicateEvent, enforced by a database unique constraint
	// so that concurrent redeliveries cannot both win.
	ApplyEvent(ctx context.Context, event domain.TransactionEvent) error
}

// EventRepositoryFacade combines event read and write operations
type EventRepositoryFacade interface {
	EventReader
	EventWriter
}
