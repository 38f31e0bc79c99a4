package domain

import "github.com/shopspring/decimal"

// InvoiceStatus is derived from the statuses of the invoice's transactions,
// never set directly. FAILED is sticky and overrides any other derived value.
type InvoiceStatus string

const (
	InvoicePending    InvoiceStatus = "PENDING"
	InvoiceProcessing InvoiceStatus = "PROCESSING"
	InvoiceSucceeded  InvoiceStatus = "SUCCEEDED"
	InvoiceFailed     InvoiceStatus = "FAILED"
)

// Invoice is a billable aggregate owning an ordered set of transactions for
// one customer.
type Invoice struct {
	InvoiceID  string          `json:"invoiceID"`  // Primary Key (e.g., UUID)
	CompanyID  string          `json:"companyID"`  // FK -> Company.companyID (Not Null)
	CustomerID string          `json:"customerID"` // FK -> Customer.customerID (Not Null)
	Amount     decimal.Decimal `json:"amount"`
	Status     InvoiceStatus   `json:"status"`
	// Relationships - often loaded separately
	Transactions []Transaction `json:"transactions,omitempty"`
	AuditFields
}

// DeriveInvoiceStatus recomputes an invoice's status from the statuses of all
// its transactions. The least-favorable status wins: any FAILED makes the
// invoice FAILED, otherwise any PROCESSING makes it PROCESSING, otherwise any
// PENDING makes it PENDING, and only when every transaction SUCCEEDED does
// the invoice become SUCCEEDED. A FAILED current status is sticky.
func DeriveInvoiceStatus(current InvoiceStatus, statuses []TransactionStatus) InvoiceStatus {
	if current == InvoiceFailed {
		return InvoiceFailed
	}
	if len(statuses) == 0 {
		return InvoicePending
	}
	var hasProcessing, hasPending bool
	for _, s := range statuses {
		switch s {
		case TransactionFailed:
			return InvoiceFailed
		case TransactionProcessing:
			hasProcessing = true
		case TransactionPending:
			hasPending = true
		}
	}
	switch {
	case hasProcessing:
		return InvoiceProcessing
	case hasPending:
		return InvoicePending
	default:
		return InvoiceSucceeded
	}
}
