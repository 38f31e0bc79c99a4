package repositories

import (
	"context"

	"github.com/billyhq/billing_backend/internal/core/domain"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by its unique identifier.
	// Caller is responsible for enforcing company scope on the result.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindTransactionsByInvoiceID retrieves all transactions of an invoice.
	FindTransactionsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransactionDispatch records the outcome of a gateway dispatch:
	// the processor URI, the mapped canonical status and the new submission
	// status, in one statement.
	UpdateTransactionDispatch(ctx context.Context, transactionID, processorURI string, status domain.TransactionStatus, submitStatus domain.SubmitStatus) error

	// UpdateTransactionSubmitStatus moves a transaction's submission lifecycle.
	UpdateTransactionSubmitStatus(ctx context.Context, transactionID string, submitStatus domain.SubmitStatus) error
}

// TransactionRepositoryFacade combines transaction read and write operations
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
