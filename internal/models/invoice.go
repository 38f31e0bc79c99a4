package models

import "github.com/shopspring/decimal"

// InvoiceStatus mirrors the derived invoice status values.
type InvoiceStatus string

const (
	InvoicePending    InvoiceStatus = "PENDING"
	InvoiceProcessing InvoiceStatus = "PROCESSING"
	InvoiceSucceeded  InvoiceStatus = "SUCCEEDED"
	InvoiceFailed     InvoiceStatus = "FAILED"
)

// Invoice is the database representation of a billable aggregate.
type Invoice struct {
	InvoiceID  string          `json:"invoiceID"`  // Primary Key
	CompanyID  string          `json:"companyID"`  // FK -> companies.company_id (Not Null)
	CustomerID string          `json:"customerID"` // FK -> customers.customer_id (Not Null)
	Amount     decimal.Decimal `json:"amount"`
	Status     InvoiceStatus   `json:"status"`
	AuditFields
}
