package domain

import "github.com/shopspring/decimal"

// TransactionType indicates the kind of money movement a transaction intends.
type TransactionType string

const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
	Refund TransactionType = "REFUND"
)

// TransactionStatus is the canonical status every gateway-specific status
// string is normalized into.
type TransactionStatus string

const (
	TransactionPending    TransactionStatus = "PENDING"
	TransactionProcessing TransactionStatus = "PROCESSING"
	TransactionSucceeded  TransactionStatus = "SUCCEEDED"
	TransactionFailed     TransactionStatus = "FAILED"
)

// SubmitStatus tracks the submission lifecycle of a transaction against the
// gateway, independent of its canonical status.
type SubmitStatus string

const (
	SubmitStaged   SubmitStatus = "STAGED"
	SubmitRetrying SubmitStatus = "RETRYING"
	SubmitDone     SubmitStatus = "DONE"
	SubmitFailed   SubmitStatus = "FAILED"
	SubmitCanceled SubmitStatus = "CANCELED"
)

// Transaction represents one intended money movement owned by an Invoice.
// A REFUND carries ReferenceTo pointing at the original DEBIT (whose
// submission must be DONE) and has no funding instrument of its own.
// Transactions are never physically deleted; submission state can move to
// CANCELED or FAILED but the record persists for audit.
type Transaction struct {
	TransactionID        string            `json:"transactionID"` // Primary Key (e.g., UUID)
	InvoiceID            string            `json:"invoiceID"`     // FK -> Invoice.invoiceID (Not Null)
	CompanyID            string            `json:"companyID"`     // FK -> Company.companyID (Not Null)
	TransactionType      TransactionType   `json:"transactionType"`
	Amount               decimal.Decimal   `json:"amount"` // Positive value; precise decimal type
	FundingInstrumentURI *string           `json:"fundingInstrumentURI"`
	ReferenceTo          *string           `json:"referenceTo"`  // Original DEBIT a REFUND targets
	ProcessorURI         *string           `json:"processorURI"` // Gateway resource, absent until dispatched
	Status               TransactionStatus `json:"status"`
	SubmitStatus         SubmitStatus      `json:"submitStatus"`
	AppearsOnStatementAs string            `json:"appearsOnStatementAs"`
	AuditFields
}
