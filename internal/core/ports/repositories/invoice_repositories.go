package repositories

import (
	"context"

	"github.com/billyhq/billing_backend/internal/core/domain"
)

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice by id within a company's scope.
	FindInvoiceByID(ctx context.Context, companyID, invoiceID string) (*domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoice data
type InvoiceWriter interface {
	// SaveInvoice persists a new invoice together with its transactions.
	SaveInvoice(ctx context.Context, invoice domain.Invoice, transactions []domain.Transaction) error
}

// InvoiceRepositoryFacade combines invoice read and write operations
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
