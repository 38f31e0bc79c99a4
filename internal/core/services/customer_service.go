package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/billyhq/billing_backend/internal/core/domain"
	portsrepo "github.com/billyhq/billing_backend/internal/core/ports/repositories"
	portssvc "github.com/billyhq/billing_backend/internal/core/ports/services"
	"github.com/billyhq/billing_backend/internal/dto"
	"github.com/billyhq/billing_backend/internal/middleware"
)

// customerService provides customer creation and lookup.
type customerService struct {
	customerRepo portsrepo.CustomerRepositoryFacade
	dispatcher   portssvc.DispatcherSvcFacade
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade, dispatcher portssvc.DispatcherSvcFacade) portssvc.CustomerSvcFacade {
	return &customerService{
		customerRepo: customerRepo,
		dispatcher:   dispatcher,
	}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

// CreateCustomer implements portssvc.CustomerSvcFacade.
func (s *customerService) CreateCustomer(ctx context.Context, companyID string, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	customer := domain.Customer{
		CustomerID: uuid.NewString(),
		CompanyID:  companyID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	// Gateway record first, local row second: a gateway failure persists
	// nothing, and a save failure leaves only a gateway record tagged with
	// the customer id, never a local customer without a gateway counterpart.
	processorURI, err := s.dispatcher.CreateCustomer(ctx, customer)
	if err != nil {
		return nil, fmt.Errorf("failed to create gateway customer: %w", err)
	}
	customer.ProcessorURI = &processorURI

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		logger.Error("Failed to save customer", slog.String("error", err.Error()), slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}

	if req.FundingInstrumentURI != nil {
		if err := s.dispatcher.PrepareCustomer(ctx, customer, req.FundingInstrumentURI); err != nil {
			return nil, fmt.Errorf("failed to prepare customer: %w", err)
		}
	}

	logger.Info("Customer created successfully", slog.String("customer_id", customer.CustomerID), slog.String("company_id", companyID))
	return &customer, nil
}

// GetCustomerByID implements portssvc.CustomerSvcFacade.
func (s *customerService) GetCustomerByID(ctx context.Context, companyID, customerID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, companyID, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find customer by ID %s: %w", customerID, err)
	}
	return customer, nil
}
