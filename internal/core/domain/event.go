package domain

import "time"

// TransactionEvent is an immutable fact recorded from a gateway callback.
// ProcessorID is the gateway-assigned event id, unique within a company.
// OccurredAt is the gateway's authoritative timestamp of when the underlying
// state change actually happened; local ingestion time is irrelevant to
// ordering. Events are created once per distinct processor id and never
// updated or deleted.
type TransactionEvent struct {
	EventID       string            `json:"eventID"`     // Primary Key (e.g., UUID)
	CompanyID     string            `json:"companyID"`   // FK -> Company.companyID (Not Null)
	TransactionID string            `json:"transactionID"` // FK -> Transaction.transactionID (Not Null)
	ProcessorID   string            `json:"processorID"` // Gateway event id; unique per company
	Status        TransactionStatus `json:"status"`
	OccurredAt    time.Time         `json:"occurredAt"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// DeferredEvent is the validated outcome of a callback resolution, captured as
// a value object and applied later inside an explicit storage transaction.
// This decouples callback acknowledgment from state mutation.
type DeferredEvent struct {
	CompanyID     string
	TransactionID string
	ProcessorID   string
	Status        TransactionStatus
	OccurredAt    time.Time
}

// StatusFromEvents derives a transaction's canonical status from its full
// event history: the event with the greatest OccurredAt wins. Ties on
// OccurredAt are broken by the greater ProcessorID so the result never
// depends on delivery order. Returns false when there are no events.
func StatusFromEvents(events []TransactionEvent) (TransactionStatus, bool) {
	if len(events) == 0 {
		return "", false
	}
	latest := events[0]
	for _, e := range events[1:] {
		if e.OccurredAt.After(latest.OccurredAt) ||
			(e.OccurredAt.Equal(latest.OccurredAt) && e.ProcessorID > latest.ProcessorID) {
			latest = e
		}
	}
	return latest.Status, true
}
