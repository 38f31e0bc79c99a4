package models

import "github.com/shopspring/decimal"

// TransactionType indicates the kind of money movement a transaction intends.
type TransactionType string

const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
	Refund TransactionType = "REFUND"
)

// TransactionStatus mirrors the canonical transaction status values.
type TransactionStatus string

const (
	TransactionPending    TransactionStatus = "PENDING"
	TransactionProcessing TransactionStatus = "PROCESSING"
	TransactionSucceeded  TransactionStatus = "SUCCEEDED"
	TransactionFailed     TransactionStatus = "FAILED"
)

// SubmitStatus mirrors the submission lifecycle values.
type SubmitStatus string

const (
	SubmitStaged   SubmitStatus = "STAGED"
	SubmitRetrying SubmitStatus = "RETRYING"
	SubmitDone     SubmitStatus = "DONE"
	SubmitFailed   SubmitStatus = "FAILED"
	SubmitCanceled SubmitStatus = "CANCELED"
)

// Transaction is the database representation of one intended money movement.
// Note: Amount should use a precise decimal type like github.com/shopspring/decimal
type Transaction struct {
	TransactionID        string            `json:"transactionID"` // Primary Key
	InvoiceID            string            `json:"invoiceID"`     // FK -> invoices.invoice_id (Not Null)
	CompanyID            string            `json:"companyID"`     // FK -> companies.company_id (Not Null)
	TransactionType      TransactionType   `json:"transactionType"`
	Amount               decimal.Decimal   `json:"amount"` // Positive value
	FundingInstrumentURI *string           `json:"fundingInstrumentURI"` // Nullable; absent for refunds
	ReferenceTo          *string           `json:"referenceTo"`          // Nullable; set for refunds
	ProcessorURI         *string           `json:"processorURI"`         // Nullable until dispatched
	Status               TransactionStatus `json:"status"`
	SubmitStatus         SubmitStatus      `json:"submitStatus"`
	AppearsOnStatementAs string            `json:"appearsOnStatementAs"`
	AuditFields
}
