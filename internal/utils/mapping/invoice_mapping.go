package mapping

import (
	"github.com/billyhq/billing_backend/internal/core/domain"
	"github.com/billyhq/billing_backend/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:   d.InvoiceID,
		CompanyID:   d.CompanyID,
		CustomerID:  d.CustomerID,
		Amount:      d.Amount,
		Status:      models.InvoiceStatus(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:   m.InvoiceID,
		CompanyID:   m.CompanyID,
		CustomerID:  m.CustomerID,
		Amount:      m.Amount,
		Status:      domain.InvoiceStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
