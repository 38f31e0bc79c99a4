package dto

import (
	"time"

	"github.com/billyhq/billing_backend/internal/core/domain"
)

// CreateCustomerRequest is the payload for creating a customer. When
// FundingInstrumentURI is set, the customer is prepared with it right after
// the gateway-side record is created.
type CreateCustomerRequest struct {
	FundingInstrumentURI *string `json:"fundingInstrumentURI"`
}

// CustomerResponse is the API shape of a customer.
type CustomerResponse struct {
	CustomerID   string    `json:"customerID"`
	ProcessorURI *string   `json:"processorURI,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToCustomerResponse converts a domain customer to its API shape.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:   c.CustomerID,
		ProcessorURI: c.ProcessorURI,
		CreatedAt:    c.CreatedAt,
	}
}
