package services

import (
	"context"

	"github.com/billyhq/billing_backend/internal/core/domain"
	"github.com/billyhq/billing_backend/internal/dto"
)

// InvoiceSvcFacade exposes invoice operations to the billing-cycle caller.
type InvoiceSvcFacade interface {
	// CreateInvoice persists an invoice with its staged transactions.
	CreateInvoice(ctx context.Context, companyID string, req dto.CreateInvoiceRequest) (*domain.Invoice, error)

	// GetInvoiceByID retrieves an invoice with its transactions, scoped to the company.
	GetInvoiceByID(ctx context.Context, companyID, invoiceID string) (*domain.Invoice, error)

	// SettleInvoice dispatches every staged or retrying transaction of the
	// invoice through the idempotent dispatcher.
	SettleInvoice(ctx context.Context, companyID, invoiceID string) (*dto.SettleInvoiceResponse, error)
}
