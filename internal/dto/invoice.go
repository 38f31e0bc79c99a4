package dto

import (
	"time"

	"github.com/billyhq/billing_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest describes one transaction staged under a new invoice.
type CreateTransactionRequest struct {
	TransactionType      domain.TransactionType `json:"transactionType" binding:"required"`
	Amount               decimal.Decimal        `json:"amount" binding:"required"`
	FundingInstrumentURI *string                `json:"fundingInstrumentURI"`
	ReferenceTo          *string                `json:"referenceTo"`
	AppearsOnStatementAs string                 `json:"appearsOnStatementAs"`
}

// CreateInvoiceRequest is the payload for creating an invoice with its
// staged transactions.
type CreateInvoiceRequest struct {
	CustomerID   string                     `json:"customerID" binding:"required"`
	Amount       decimal.Decimal            `json:"amount" binding:"required"`
	Transactions []CreateTransactionRequest `json:"transactions" binding:"required,min=1"`
}

// TransactionResponse is the API shape of a transaction.
type TransactionResponse struct {
	TransactionID        string                   `json:"transactionID"`
	InvoiceID            string                   `json:"invoiceID"`
	TransactionType      domain.TransactionType   `json:"transactionType"`
	Amount               decimal.Decimal          `json:"amount"`
	FundingInstrumentURI *string                  `json:"fundingInstrumentURI,omitempty"`
	ReferenceTo          *string                  `json:"referenceTo,omitempty"`
	ProcessorURI         *string                  `json:"processorURI,omitempty"`
	Status               domain.TransactionStatus `json:"status"`
	SubmitStatus         domain.SubmitStatus      `json:"submitStatus"`
	CreatedAt            time.Time                `json:"createdAt"`
}

// InvoiceResponse is the API shape of an invoice.
type InvoiceResponse struct {
	InvoiceID    string                `json:"invoiceID"`
	CustomerID   string                `json:"customerID"`
	Amount       decimal.Decimal       `json:"amount"`
	Status       domain.InvoiceStatus  `json:"status"`
	Transactions []TransactionResponse `json:"transactions,omitempty"`
	CreatedAt    time.Time             `json:"createdAt"`
}

// SettleInvoiceResponse summarizes a settlement run over an invoice.
type SettleInvoiceResponse struct {
	InvoiceID  string           `json:"invoiceID"`
	Dispatched []DispatchResult `json:"dispatched"`
	Failed     []string         `json:"failed,omitempty"` // transaction ids whose dispatch errored
}

// ToTransactionResponse converts a domain transaction to its API shape.
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:        t.TransactionID,
		InvoiceID:            t.InvoiceID,
		TransactionType:      t.TransactionType,
		Amount:               t.Amount,
		FundingInstrumentURI: t.FundingInstrumentURI,
		ReferenceTo:          t.ReferenceTo,
		ProcessorURI:         t.ProcessorURI,
		Status:               t.Status,
		SubmitStatus:         t.SubmitStatus,
		CreatedAt:            t.CreatedAt,
	}
}

// ToInvoiceResponse converts a domain invoice to its API shape.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		InvoiceID:  inv.InvoiceID,
		CustomerID: inv.CustomerID,
		Amount:     inv.Amount,
		Status:     inv.Status,
		CreatedAt:  inv.CreatedAt,
	}
	for _, t := range inv.Transactions {
		resp.Transactions = append(resp.Transactions, ToTransactionResponse(t))
	}
	return resp
}
