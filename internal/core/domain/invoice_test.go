package domain_test

import (
	"testing"

	"github.com/billyhq/billing_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestDeriveInvoiceStatus(t *testing.T) {
	tests := []struct {
		name     string
		current  domain.InvoiceStatus
		statuses []domain.TransactionStatus
		want     domain.InvoiceStatus
	}{
		{
			name:     "no transactions defaults to pending",
			current:  domain.InvoicePending,
			statuses: nil,
			want:     domain.InvoicePending,
		},
		{
			name:    "all succeeded",
			current: domain.InvoiceProcessing,
			statuses: []domain.TransactionStatus{
				domain.TransactionSucceeded,
				domain.TransactionSucceeded,
			},
			want: domain.InvoiceSucceeded,
		},
		{
			name:    "any failed overrides everything",
			current: domain.InvoiceProcessing,
			statuses: []domain.TransactionStatus{
				domain.TransactionSucceeded,
				domain.TransactionFailed,
				domain.TransactionProcessing,
			},
			want: domain.InvoiceFailed,
		},
		{
			name:    "processing beats pending and succeeded",
			current: domain.InvoicePending,
			statuses: []domain.TransactionStatus{
				domain.TransactionSucceeded,
				domain.TransactionProcessing,
				domain.TransactionPending,
			},
			want: domain.InvoiceProcessing,
		},
		{
			name:    "pending beats succeeded",
			current: domain.InvoicePending,
			statuses: []domain.TransactionStatus{
				domain.TransactionSucceeded,
				domain.TransactionPending,
			},
			want: domain.InvoicePending,
		},
		{
			name:    "failed is sticky even when all transactions succeeded",
			current: domain.InvoiceFailed,
			statuses: []domain.TransactionStatus{
				domain.TransactionSucceeded,
			},
			want: domain.InvoiceFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.DeriveInvoiceStatus(tt.current, tt.statuses)
			assert.Equal(t, tt.want, got)
		})
	}
}
