package dto

import (
	"time"

	"github.com/billyhq/billing_backend/internal/core/domain"
)

// CreateCompanyRequest is the payload for onboarding a company.
type CreateCompanyRequest struct {
	Name string `json:"name" binding:"required"`
}

// CompanyResponse is the API shape of a company. API and callback keys are
// only ever shown to the company itself: on creation, and on an
// authenticated read of its own record.
type CompanyResponse struct {
	CompanyID   string    `json:"companyID"`
	Name        string    `json:"name"`
	APIKey      string    `json:"apiKey"`
	CallbackKey string    `json:"callbackKey"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToCompanyResponse converts a domain company to its API shape.
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:   c.CompanyID,
		Name:        c.Name,
		APIKey:      c.APIKey,
		CallbackKey: c.CallbackKey,
		CreatedAt:   c.CreatedAt,
	}
}
