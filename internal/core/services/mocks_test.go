package services_test

import (
	"context"

	"github.com/billyhq/billing_backend/internal/core/domain"
	"github.com/billyhq/billing_backend/internal/core/ports"
	portsrepo "github.com/billyhq/billing_backend/internal/core/ports/repositories"
	portssvc "github.com/billyhq/billing_backend/internal/core/ports/services"
	"github.com/billyhq/billing_backend/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock GatewayClient ---

type MockGatewayClient struct {
	mock.Mock
}

func (m *MockGatewayClient) Configure(apiKey string) {
	m.Called(apiKey)
}

func (m *MockGatewayClient) FetchEvent(ctx context.Context, eventID string) (*ports.GatewayEvent, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.GatewayEvent), args.Error(1)
}

func (m *MockGatewayClient) QueryResourcesByTransactionID(ctx context.Context, kind ports.ResourceKind, transactionID string) ([]ports.GatewayResource, error) {
	args := m.Called(ctx, kind, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.GatewayResource), args.Error(1)
}

func (m *MockGatewayClient) FetchResource(ctx context.Context, kind ports.ResourceKind, uri string) (*ports.GatewayResource, error) {
	args := m.Called(ctx, kind, uri)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.GatewayResource), args.Error(1)
}

func (m *MockGatewayClient) CreateCustomer(ctx context.Context, meta map[string]string) (*ports.GatewayResource, error) {
	args := m.Called(ctx, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.GatewayResource), args.Error(1)
}

func (m *MockGatewayClient) AddCard(ctx context.Context, customerURI, cardURI string) error {
	args := m.Called(ctx, customerURI, cardURI)
	return args.Error(0)
}

func (m *MockGatewayClient) AddBankAccount(ctx context.Context, customerURI, bankAccountURI string) error {
	args := m.Called(ctx, customerURI, bankAccountURI)
	return args.Error(0)
}

func (m *MockGatewayClient) Debit(ctx context.Context, customerURI string, params ports.ChargeParams) (*ports.GatewayResource, error) {
	args := m.Called(ctx, customerURI, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.GatewayResource), args.Error(1)
}

func (m *MockGatewayClient) Credit(ctx context.Context, customerURI string, params ports.ChargeParams) (*ports.GatewayResource, error) {
	args := m.Called(ctx, customerURI, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.GatewayResource), args.Error(1)
}

func (m *MockGatewayClient) Refund(ctx context.Context, debitURI string, params ports.ChargeParams) (*ports.GatewayResource, error) {
	args := m.Called(ctx, debitURI, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.GatewayResource), args.Error(1)
}

func (m *MockGatewayClient) RegisterCallback(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}

var _ ports.GatewayClient = (*MockGatewayClient)(nil)

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransactionDispatch(ctx context.Context, transactionID, processorURI string, status domain.TransactionStatus, submitStatus domain.SubmitStatus) error {
	args := m.Called(ctx, transactionID, processorURI, status, submitStatus)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransactionSubmitStatus(ctx context.Context, transactionID string, submitStatus domain.SubmitStatus) error {
	args := m.Called(ctx, transactionID, submitStatus)
	return args.Error(0)
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

// --- Mock InvoiceRepository ---

type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, companyID, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, companyID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice, transactions []domain.Transaction) error {
	args := m.Called(ctx, invoice, transactions)
	return args.Error(0)
}

var _ portsrepo.InvoiceRepositoryFacade = (*MockInvoiceRepository)(nil)

// --- Mock CustomerRepository ---

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, companyID, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, companyID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

var _ portsrepo.CustomerRepositoryFacade = (*MockCustomerRepository)(nil)

// --- Mock CompanyRepository ---

type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindCompanyByCallbackKey(ctx context.Context, callbackKey string) (*domain.Company, error) {
	args := m.Called(ctx, callbackKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

var _ portsrepo.CompanyRepositoryFacade = (*MockCompanyRepository)(nil)

// --- Mock EventRepository ---

type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) FindEventsByTransactionID(ctx context.Context, transactionID string) ([]domain.TransactionEvent, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionEvent), args.Error(1)
}

func (m *MockEventRepository) ApplyEvent(ctx context.Context, event domain.TransactionEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

var _ portsrepo.EventRepositoryFacade = (*MockEventRepository)(nil)

// --- Mock DispatcherService ---

type MockDispatcherService struct {
	mock.Mock
}

func (m *MockDispatcherService) ConfigureAPIKey(apiKey string) {
	m.Called(apiKey)
}

func (m *MockDispatcherService) Debit(ctx context.Context, txn domain.Transaction) (*dto.DispatchResult, error) {
	args := m.Called(ctx, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DispatchResult), args.Error(1)
}

func (m *MockDispatcherService) Credit(ctx context.Context, txn domain.Transaction) (*dto.DispatchResult, error) {
	args := m.Called(ctx, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DispatchResult), args.Error(1)
}

func (m *MockDispatcherService) Refund(ctx context.Context, txn domain.Transaction) (*dto.DispatchResult, error) {
	args := m.Called(ctx, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DispatchResult), args.Error(1)
}

func (m *MockDispatcherService) CreateCustomer(ctx context.Context, customer domain.Customer) (string, error) {
	args := m.Called(ctx, customer)
	return args.String(0), args.Error(1)
}

func (m *MockDispatcherService) PrepareCustomer(ctx context.Context, customer domain.Customer, fundingInstrumentURI *string) error {
	args := m.Called(ctx, customer, fundingInstrumentURI)
	return args.Error(0)
}

func (m *MockDispatcherService) ValidateCustomer(ctx context.Context, processorURI string) error {
	args := m.Called(ctx, processorURI)
	return args.Error(0)
}

func (m *MockDispatcherService) ValidateFundingInstrument(ctx context.Context, fundingInstrumentURI string) error {
	args := m.Called(ctx, fundingInstrumentURI)
	return args.Error(0)
}

func (m *MockDispatcherService) RegisterCallback(ctx context.Context, company domain.Company, url string) error {
	args := m.Called(ctx, company, url)
	return args.Error(0)
}

var _ portssvc.DispatcherSvcFacade = (*MockDispatcherService)(nil)
