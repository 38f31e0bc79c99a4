package repositories

import (
	"context"

	"github.com/billyhq/billing_backend/internal/core/domain"
)

// CompanyReader defines read operations for company data
type CompanyReader interface {
	// FindCompanyByID retrieves a company by its unique identifier.
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)

	// FindCompanyByCallbackKey retrieves the company owning a callback key.
	// Used to authenticate inbound gateway callbacks.
	FindCompanyByCallbackKey(ctx context.Context, callbackKey string) (*domain.Company, error)
}

// CompanyWriter defines write operations for company data
type CompanyWriter interface {
	// SaveCompany persists a new company.
	SaveCompany(ctx context.Context, company domain.Company) error
}

// CompanyRepositoryFacade combines company read and write operations
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
}
