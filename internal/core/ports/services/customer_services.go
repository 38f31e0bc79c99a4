package services

import (
	"context"

	"github.com/billyhq/billing_backend/internal/core/domain"
	"github.com/billyhq/billing_backend/internal/dto"
)

// CustomerSvcFacade exposes customer operations.
type CustomerSvcFacade interface {
	// CreateCustomer persists a customer and creates its gateway-side record.
	CreateCustomer(ctx context.Context, companyID string, req dto.CreateCustomerRequest) (*domain.Customer, error)

	// GetCustomerByID retrieves a customer scoped to the company.
	GetCustomerByID(ctx context.Context, companyID, customerID string) (*domain.Customer, error)
}
