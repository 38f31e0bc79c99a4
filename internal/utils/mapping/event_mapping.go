package mapping

import (
	"github.com/billyhq/billing_backend/internal/core/domain"
	"github.com/billyhq/billing_backend/internal/models"
)

// ToModelTransactionEvent converts a domain TransactionEvent to its model
func ToModelTransactionEvent(d domain.TransactionEvent) models.TransactionEvent {
	return models.TransactionEvent{
		EventID:       d.EventID,
		CompanyID:     d.CompanyID,
		TransactionID: d.TransactionID,
		ProcessorID:   d.ProcessorID,
		Status:        models.TransactionStatus(d.Status),
		OccurredAt:    d.OccurredAt,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainTransactionEvent converts a model TransactionEvent to its domain form
func ToDomainTransactionEvent(m models.TransactionEvent) domain.TransactionEvent {
	return domain.TransactionEvent{
		EventID:       m.EventID,
		CompanyID:     m.CompanyID,
		TransactionID: m.TransactionID,
		ProcessorID:   m.ProcessorID,
		Status:        domain.TransactionStatus(m.Status),
		OccurredAt:    m.OccurredAt,
		CreatedAt:     m.CreatedAt,
	}
}
