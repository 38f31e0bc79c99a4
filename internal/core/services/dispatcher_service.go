package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/billyhq/billing_backend/internal/apperrors"
	"github.com/billyhq/billing_backend/internal/core/domain"
	"github.com/billyhq/billing_backend/internal/core/ports"
	portsrepo "github.com/billyhq/billing_backend/internal/core/ports/repositories"
	portssvc "github.com/billyhq/billing_backend/internal/core/ports/services"
	"github.com/billyhq/billing_backend/internal/dto"
	"github.com/billyhq/billing_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

const (
	cardURISegment        = "/cards/"
	bankAccountURISegment = "/bank_accounts/"
)

// dispatcherService performs debit, credit and refund against the gateway
// with lookup-before-create semantics. The lookup-then-mutate sequence is not
// atomic at the gateway boundary; the sequential redispatch path is strictly
// at-most-once, while the concurrent-dispatch window is left to the gateway's
// own idempotency keys.
type dispatcherService struct {
	gateway         ports.GatewayClient
	transactionRepo portsrepo.TransactionRepositoryFacade
	invoiceRepo     portsrepo.InvoiceReader
	customerRepo    portsrepo.CustomerRepositoryFacade
	configured      atomic.Bool
}

// NewDispatcherService creates a new DispatcherService.
func NewDispatcherService(
	gateway ports.GatewayClient,
	transactionRepo portsrepo.TransactionRepositoryFacade,
	invoiceRepo portsrepo.InvoiceReader,
	customerRepo portsrepo.CustomerRepositoryFacade,
) portssvc.DispatcherSvcFacade {
	return &dispatcherService{
		gateway:         gateway,
		transactionRepo: transactionRepo,
		invoiceRepo:     invoiceRepo,
		customerRepo:    customerRepo,
	}
}

var _ portssvc.DispatcherSvcFacade = (*dispatcherService)(nil)

// ConfigureAPIKey implements portssvc.DispatcherSvcFacade. Safe to call
// while dispatches are in flight.
func (s *dispatcherService) ConfigureAPIKey(apiKey string) {
	s.gateway.Configure(apiKey)
	s.configured.Store(true)
}

func (s *dispatcherService) ensureConfigured() error {
	if !s.configured.Load() {
		return apperrors.ErrNotConfigured
	}
	return nil
}

func toCents(amount decimal.Decimal) int64 {
	return amount.Shift(2).IntPart()
}

// resourceToResult maps a gateway resource into a dispatch result.
func (s *dispatcherService) resourceToResult(ctx context.Context, res ports.GatewayResource) dto.DispatchResult {
	if _, known := gatewayStatusMap[res.Status]; !known {
		middleware.GetLoggerFromCtx(ctx).Warn("Unknown gateway status, default to pending", slog.String("status", res.Status))
	}
	return dto.DispatchResult{
		ProcessorURI: res.URI,
		Status:       MapGatewayStatus(res.Status),
	}
}

// lookupExisting queries the gateway for a resource already tagged with this
// transaction id. The query must match at most one resource; more than one is
// a fatal consistency error.
func (s *dispatcherService) lookupExisting(ctx context.Context, kind ports.ResourceKind, transactionID string) (*ports.GatewayResource, error) {
	resources, err := s.gateway.QueryResourcesByTransactionID(ctx, kind, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query existing %s for transaction %s: %w", kind, transactionID, err)
	}
	switch len(resources) {
	case 0:
		return nil, nil
	case 1:
		return &resources[0], nil
	default:
		return nil, fmt.Errorf("%w: %d %s tagged with transaction %s", apperrors.ErrAmbiguousResource, len(resources), kind, transactionID)
	}
}

// validateFundingInstrumentURI checks the URI shape before any network call.
func validateFundingInstrumentURI(uri string) (ports.ResourceKind, error) {
	if !strings.HasPrefix(uri, "/") {
		return "", fmt.Errorf(
			"%w: the funding instrument URI should be something like /v1/marketplaces/MP.../cards/CC..., but we received %q; it should be an URI rather than a GUID",
			apperrors.ErrInvalidURIFormat, uri,
		)
	}
	switch {
	case strings.Contains(uri, bankAccountURISegment):
		return ports.ResourceBankAccounts, nil
	case strings.Contains(uri, cardURISegment):
		return ports.ResourceCards, nil
	default:
		return "", fmt.Errorf("%w: unknown type of funding instrument %q, should be a bank account or card", apperrors.ErrInvalidFundingInstrument, uri)
	}
}

// persistDispatch records the dispatch outcome on the transaction.
func (s *dispatcherService) persistDispatch(ctx context.Context, txn domain.Transaction, result dto.DispatchResult) error {
	if err := s.transactionRepo.UpdateTransactionDispatch(ctx, txn.TransactionID, result.ProcessorURI, result.Status, domain.SubmitDone); err != nil {
		return fmt.Errorf("failed to persist dispatch result for transaction %s: %w", txn.TransactionID, err)
	}
	return nil
}

// chargeParams assembles the common arguments of a mutating call.
func (s *dispatcherService) chargeParams(txn domain.Transaction) ports.ChargeParams {
	return ports.ChargeParams{
		AmountCents:          toCents(txn.Amount),
		Description:          fmt.Sprintf("Generated by billing from invoice %s", txn.InvoiceID),
		AppearsOnStatementAs: txn.AppearsOnStatementAs,
		Meta:                 map[string]string{TransactionMetaKey: txn.TransactionID},
	}
}

// customerProcessorURI walks transaction -> invoice -> customer to find the
// gateway-side customer record a debit or credit operates on.
func (s *dispatcherService) customerProcessorURI(ctx context.Context, txn domain.Transaction) (string, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, txn.CompanyID, txn.InvoiceID)
	if err != nil {
		return "", fmt.Errorf("failed to find invoice %s: %w", txn.InvoiceID, err)
	}
	customer, err := s.customerRepo.FindCustomerByID(ctx, txn.CompanyID, invoice.CustomerID)
	if err != nil {
		return "", fmt.Errorf("failed to find customer %s: %w", invoice.CustomerID, err)
	}
	if customer.ProcessorURI == nil {
		return "", fmt.Errorf("%w: customer %s has no gateway record", apperrors.ErrValidation, customer.CustomerID)
	}
	return *customer.ProcessorURI, nil
}

// execute runs the shared lookup-then-mutate template. The differences
// between debit, credit and refund are carried by kind and mutate, not by
// separate algorithms.
func (s *dispatcherService) execute(
	ctx context.Context,
	txn domain.Transaction,
	operation string,
	kind ports.ResourceKind,
	mutate func(params ports.ChargeParams) (*ports.GatewayResource, error),
) (*dto.DispatchResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.ensureConfigured(); err != nil {
		return nil, err
	}

	// Existing-record check before creation so a retried dispatch never
	// duplicates the gateway-side transaction. If a record is already there
	// we once did the call but failed to update the database; just return it.
	existing, err := s.lookupExisting(ctx, kind, txn.TransactionID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		logger.Warn("Gateway record already exists for transaction",
			slog.String("transaction_id", txn.TransactionID),
			slog.String("processor_uri", existing.URI),
		)
		dispatchCalls.WithLabelValues(operation, "lookup").Inc()
		result := s.resourceToResult(ctx, *existing)
		if err := s.persistDispatch(ctx, txn, result); err != nil {
			return nil, err
		}
		return &result, nil
	}

	record, err := mutate(s.chargeParams(txn))
	if err != nil {
		return nil, fmt.Errorf("gateway %s failed for transaction %s: %w", operation, txn.TransactionID, err)
	}
	dispatchCalls.WithLabelValues(operation, "mutate").Inc()
	logger.Info("Gateway operation completed",
		slog.String("operation", operation),
		slog.String("transaction_id", txn.TransactionID),
		slog.String("processor_uri", record.URI),
	)

	result := s.resourceToResult(ctx, *record)
	if err := s.persistDispatch(ctx, txn, result); err != nil {
		return nil, err
	}
	return &result, nil
}

// fetchFundingInstrument validates the transaction's funding instrument URI
// shape and confirms the instrument with the gateway before any mutating call.
func (s *dispatcherService) fetchFundingInstrument(ctx context.Context, txn domain.Transaction) (string, error) {
	if txn.FundingInstrumentURI == nil {
		// No explicit instrument, the gateway charges the customer's default.
		return "", nil
	}
	uri := *txn.FundingInstrumentURI
	kind, err := validateFundingInstrumentURI(uri)
	if err != nil {
		return "", err
	}
	if _, err := s.gateway.FetchResource(ctx, kind, uri); err != nil {
		return "", fmt.Errorf("%w: failed to fetch funding instrument %s: %v", apperrors.ErrInvalidFundingInstrument, uri, err)
	}
	return uri, nil
}

// Debit implements portssvc.DispatcherSvcFacade.
func (s *dispatcherService) Debit(ctx context.Context, txn domain.Transaction) (*dto.DispatchResult, error) {
	return s.execute(ctx, txn, "debit", ports.ResourceDebits, func(params ports.ChargeParams) (*ports.GatewayResource, error) {
		sourceURI, err := s.fetchFundingInstrument(ctx, txn)
		if err != nil {
			return nil, err
		}
		customerURI, err := s.customerProcessorURI(ctx, txn)
		if err != nil {
			return nil, err
		}
		params.SourceURI = sourceURI
		return s.gateway.Debit(ctx, customerURI, params)
	})
}

// Credit implements portssvc.DispatcherSvcFacade.
func (s *dispatcherService) Credit(ctx context.Context, txn domain.Transaction) (*dto.DispatchResult, error) {
	return s.execute(ctx, txn, "credit", ports.ResourceCredits, func(params ports.ChargeParams) (*ports.GatewayResource, error) {
		destinationURI, err := s.fetchFundingInstrument(ctx, txn)
		if err != nil {
			return nil, err
		}
		customerURI, err := s.customerProcessorURI(ctx, txn)
		if err != nil {
			return nil, err
		}
		params.DestinationURI = destinationURI
		return s.gateway.Credit(ctx, customerURI, params)
	})
}

// Refund implements portssvc.DispatcherSvcFacade. The call targets the
// original DEBIT's gateway resource; a refund has no funding instrument of
// its own.
func (s *dispatcherService) Refund(ctx context.Context, txn domain.Transaction) (*dto.DispatchResult, error) {
	return s.execute(ctx, txn, "refund", ports.ResourceRefunds, func(params ports.ChargeParams) (*ports.GatewayResource, error) {
		if txn.ReferenceTo == nil {
			return nil, fmt.Errorf("%w: refund transaction %s has no reference to a debit", apperrors.ErrValidation, txn.TransactionID)
		}
		debitTxn, err := s.transactionRepo.FindTransactionByID(ctx, *txn.ReferenceTo)
		if err != nil {
			return nil, fmt.Errorf("failed to find referenced debit %s: %w", *txn.ReferenceTo, err)
		}
		if debitTxn.ProcessorURI == nil {
			return nil, fmt.Errorf("%w: referenced debit %s was never dispatched", apperrors.ErrValidation, debitTxn.TransactionID)
		}
		return s.gateway.Refund(ctx, *debitTxn.ProcessorURI, params)
	})
}

// CreateCustomer implements portssvc.DispatcherSvcFacade.
func (s *dispatcherService) CreateCustomer(ctx context.Context, customer domain.Customer) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.ensureConfigured(); err != nil {
		return "", err
	}
	record, err := s.gateway.CreateCustomer(ctx, map[string]string{CustomerMetaKey: customer.CustomerID})
	if err != nil {
		return "", fmt.Errorf("failed to create gateway customer for %s: %w", customer.CustomerID, err)
	}
	logger.Info("Created gateway customer", slog.String("customer_id", customer.CustomerID), slog.String("processor_uri", record.URI))
	return record.URI, nil
}

// PrepareCustomer implements portssvc.DispatcherSvcFacade.
func (s *dispatcherService) PrepareCustomer(ctx context.Context, customer domain.Customer, fundingInstrumentURI *string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.ensureConfigured(); err != nil {
		return err
	}
	// A nil URI means the customer's default funding instrument will be used.
	if fundingInstrumentURI == nil {
		return nil
	}
	if customer.ProcessorURI == nil {
		return fmt.Errorf("%w: customer %s has no gateway record", apperrors.ErrValidation, customer.CustomerID)
	}
	uri := *fundingInstrumentURI
	switch {
	case strings.Contains(uri, bankAccountURISegment):
		if err := s.gateway.AddBankAccount(ctx, *customer.ProcessorURI, uri); err != nil {
			return fmt.Errorf("failed to add bank account %s to customer %s: %w", uri, customer.CustomerID, err)
		}
		logger.Info("Added bank account to customer", slog.String("customer_id", customer.CustomerID), slog.String("uri", uri))
	case strings.Contains(uri, cardURISegment):
		if err := s.gateway.AddCard(ctx, *customer.ProcessorURI, uri); err != nil {
			return fmt.Errorf("failed to add card %s to customer %s: %w", uri, customer.CustomerID, err)
		}
		logger.Info("Added card to customer", slog.String("customer_id", customer.CustomerID), slog.String("uri", uri))
	default:
		return fmt.Errorf("%w: invalid funding instrument URI %q", apperrors.ErrValidation, uri)
	}
	return nil
}

// ValidateCustomer implements portssvc.DispatcherSvcFacade.
func (s *dispatcherService) ValidateCustomer(ctx context.Context, processorURI string) error {
	if err := s.ensureConfigured(); err != nil {
		return err
	}
	if !strings.HasPrefix(processorURI, "/") {
		return fmt.Errorf(
			"%w: the processor URI of a customer should be something like /v1/customers/CU..., but we received %q; it should be an URI rather than a GUID",
			apperrors.ErrInvalidURIFormat, processorURI,
		)
	}
	if _, err := s.gateway.FetchResource(ctx, ports.ResourceCustomers, processorURI); err != nil {
		return fmt.Errorf("%w: failed to validate customer %s: %v", apperrors.ErrInvalidCustomer, processorURI, err)
	}
	return nil
}

// ValidateFundingInstrument implements portssvc.DispatcherSvcFacade.
func (s *dispatcherService) ValidateFundingInstrument(ctx context.Context, fundingInstrumentURI string) error {
	if err := s.ensureConfigured(); err != nil {
		return err
	}
	kind, err := validateFundingInstrumentURI(fundingInstrumentURI)
	if err != nil {
		return err
	}
	if _, err := s.gateway.FetchResource(ctx, kind, fundingInstrumentURI); err != nil {
		return fmt.Errorf("%w: failed to validate funding instrument %s: %v", apperrors.ErrInvalidFundingInstrument, fundingInstrumentURI, err)
	}
	return nil
}

// RegisterCallback implements portssvc.DispatcherSvcFacade.
func (s *dispatcherService) RegisterCallback(ctx context.Context, company domain.Company, url string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.ensureConfigured(); err != nil {
		return err
	}
	logger.Info("Registering company callback", slog.String("company_id", company.CompanyID), slog.String("url", url))
	if err := s.gateway.RegisterCallback(ctx, url); err != nil {
		return fmt.Errorf("failed to register callback for company %s: %w", company.CompanyID, err)
	}
	return nil
}
