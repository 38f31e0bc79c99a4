package models

import "time"

// TransactionEvent is the database representation of an immutable gateway
// event record. (company_id, processor_id) carries a unique constraint: it is
// the authoritative dedup gate for redelivered callbacks.
type TransactionEvent struct {
	EventID       string            `json:"eventID"`       // Primary Key
	CompanyID     string            `json:"companyID"`     // FK -> companies.company_id (Not Null)
	TransactionID string            `json:"transactionID"` // FK -> transactions.transaction_id (Not Null)
	ProcessorID   string            `json:"processorID"`   // Gateway event id
	Status        TransactionStatus `json:"status"`
	OccurredAt    time.Time         `json:"occurredAt"`
	CreatedAt     time.Time         `json:"createdAt"`
}
