package repositories

import (
	"context"

	"github.com/billyhq/billing_backend/internal/core/domain"
)

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	// FindCustomerByID retrieves a customer by id within a company's scope.
	FindCustomerByID(ctx context.Context, companyID, customerID string) (*domain.Customer, error)
}

// CustomerWriter defines write operations for customer data
type CustomerWriter interface {
	// SaveCustomer persists a new customer with its gateway record URI
	// already resolved.
	SaveCustomer(ctx context.Context, customer domain.Customer) error
}

// CustomerRepositoryFacade combines customer read and write operations
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
