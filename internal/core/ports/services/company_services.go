package services

import (
	"context"

	"github.com/billyhq/billing_backend/internal/core/domain"
	"github.com/billyhq/billing_backend/internal/dto"
)

// CompanySvcFacade exposes company onboarding.
type CompanySvcFacade interface {
	// CreateCompany persists a new company with freshly generated API and
	// callback keys and registers the company's callback URL with the
	// gateway.
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*domain.Company, error)
}
