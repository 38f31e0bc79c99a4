package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/billyhq/billing_backend/internal/apperrors"
	"github.com/billyhq/billing_backend/internal/core/domain"
	portsrepo "github.com/billyhq/billing_backend/internal/core/ports/repositories"
	portssvc "github.com/billyhq/billing_backend/internal/core/ports/services"
	"github.com/billyhq/billing_backend/internal/dto"
	"github.com/billyhq/billing_backend/internal/middleware"
)

// companyService provides company onboarding.
type companyService struct {
	companyRepo     portsrepo.CompanyRepositoryFacade
	dispatcher      portssvc.DispatcherSvcFacade
	callbackBaseURL string
}

// NewCompanyService creates a new CompanyService. callbackBaseURL is the
// externally reachable base of this deployment; callback URLs registered
// with the gateway are formed under it.
func NewCompanyService(companyRepo portsrepo.CompanyRepositoryFacade, dispatcher portssvc.DispatcherSvcFacade, callbackBaseURL string) portssvc.CompanySvcFacade {
	return &companyService{
		companyRepo:     companyRepo,
		dispatcher:      dispatcher,
		callbackBaseURL: strings.TrimSuffix(callbackBaseURL, "/"),
	}
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

// CreateCompany implements portssvc.CompanySvcFacade.
func (s *companyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*domain.Company, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	company := domain.Company{
		CompanyID:   uuid.NewString(),
		Name:        req.Name,
		APIKey:      uuid.NewString(),
		CallbackKey: uuid.NewString(),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
		logger.Error("Failed to save company", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save company: %w", err)
	}

	callbackURL := s.callbackBaseURL + "/callbacks/" + company.CallbackKey
	if err := s.dispatcher.RegisterCallback(ctx, company, callbackURL); err != nil {
		if errors.Is(err, apperrors.ErrNotConfigured) {
			// No gateway credential yet; the company is usable and the
			// callback can be registered once the credential is set.
			logger.Warn("Gateway credential not configured, callback registration deferred",
				slog.String("company_id", company.CompanyID),
			)
		} else {
			return nil, fmt.Errorf("failed to register callback for company %s: %w", company.CompanyID, err)
		}
	}

	logger.Info("Company created successfully",
		slog.String("company_id", company.CompanyID),
		slog.String("name", company.Name),
	)
	return &company, nil
}
