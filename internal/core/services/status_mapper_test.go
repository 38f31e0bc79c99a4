package services_test

import (
	"testing"

	"github.com/billyhq/billing_backend/internal/core/domain"
	"github.com/billyhq/billing_backend/internal/core/services"
	"github.com/stretchr/testify/assert"
)

func TestMapGatewayStatus(t *testing.T) {
	testCases := []struct {
		gatewayStatus string
		expected      domain.TransactionStatus
	}{
		{"pending", domain.TransactionPending},
		{"succeeded", domain.TransactionSucceeded},
		{"paid", domain.TransactionSucceeded},
		{"failed", domain.TransactionFailed},
		{"reversed", domain.TransactionFailed},
		// Unknown and empty statuses default to pending so a new gateway
		// status never drops an event.
		{"disputed", domain.TransactionPending},
		{"", domain.TransactionPending},
	}

	for _, tc := range testCases {
		t.Run(tc.gatewayStatus, func(t *testing.T) {
			assert.Equal(t, tc.expected, services.MapGatewayStatus(tc.gatewayStatus))
		})
	}
}
