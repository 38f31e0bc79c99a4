package mapping

import (
	"github.com/billyhq/billing_backend/internal/core/domain"
	"github.com/billyhq/billing_backend/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:        d.TransactionID,
		InvoiceID:            d.InvoiceID,
		CompanyID:            d.CompanyID,
		TransactionType:      models.TransactionType(d.TransactionType),
		Amount:               d.Amount,
		FundingInstrumentURI: d.FundingInstrumentURI,
		ReferenceTo:          d.ReferenceTo,
		ProcessorURI:         d.ProcessorURI,
		Status:               models.TransactionStatus(d.Status),
		SubmitStatus:         models.SubmitStatus(d.SubmitStatus),
		AppearsOnStatementAs: d.AppearsOnStatementAs,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:        m.TransactionID,
		InvoiceID:            m.InvoiceID,
		CompanyID:            m.CompanyID,
		TransactionType:      domain.TransactionType(m.TransactionType),
		Amount:               m.Amount,
		FundingInstrumentURI: m.FundingInstrumentURI,
		ReferenceTo:          m.ReferenceTo,
		ProcessorURI:         m.ProcessorURI,
		Status:               domain.TransactionStatus(m.Status),
		SubmitStatus:         domain.SubmitStatus(m.SubmitStatus),
		AppearsOnStatementAs: m.AppearsOnStatementAs,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}
