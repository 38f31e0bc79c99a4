package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/billyhq/billing_backend/internal/apperrors"
	"github.com/billyhq/billing_backend/internal/core/domain"
	portssvc "github.com/billyhq/billing_backend/internal/core/ports/services"
	"github.com/billyhq/billing_backend/internal/core/services"
	"github.com/billyhq/billing_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo  *MockInvoiceRepository
	mockTxnRepo      *MockTransactionRepository
	mockCustomerRepo *MockCustomerRepository
	mockDispatcher   *MockDispatcherService
	service          portssvc.InvoiceSvcFacade

	companyID string
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockDispatcher = new(MockDispatcherService)
	suite.service = services.NewInvoiceService(suite.mockInvoiceRepo, suite.mockTxnRepo, suite.mockCustomerRepo, suite.mockDispatcher)
	suite.companyID = uuid.NewString()
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_Success() {
	ctx := context.Background()
	customerID := uuid.NewString()
	req := dto.CreateInvoiceRequest{
		CustomerID: customerID,
		Amount:     decimal.RequireFromString("25.00"),
		Transactions: []dto.CreateTransactionRequest{
			{TransactionType: domain.Debit, Amount: decimal.RequireFromString("25.00")},
		},
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.companyID, customerID).Return(&domain.Customer{
		CustomerID: customerID,
		CompanyID:  suite.companyID,
	}, nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice"), mock.AnythingOfType("[]domain.Transaction")).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, suite.companyID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(invoice)
	suite.NotEmpty(invoice.InvoiceID)
	suite.Equal(suite.companyID, invoice.CompanyID)
	suite.Equal(domain.InvoicePending, invoice.Status)
	suite.Require().Len(invoice.Transactions, 1)
	suite.Equal(domain.SubmitStaged, invoice.Transactions[0].SubmitStatus)
	suite.Equal(domain.TransactionPending, invoice.Transactions[0].Status)
	suite.Equal(invoice.InvoiceID, invoice.Transactions[0].InvoiceID)

	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		CustomerID: uuid.NewString(),
		Amount:     decimal.Zero,
	}

	invoice, err := suite.service.CreateInvoice(ctx, suite.companyID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(invoice)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice")
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_UnknownCustomer() {
	ctx := context.Background()
	customerID := uuid.NewString()
	req := dto.CreateInvoiceRequest{
		CustomerID: customerID,
		Amount:     decimal.RequireFromString("25.00"),
		Transactions: []dto.CreateTransactionRequest{
			{TransactionType: domain.Debit, Amount: decimal.RequireFromString("25.00")},
		},
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.companyID, customerID).Return(nil, apperrors.ErrNotFound).Once()

	invoice, err := suite.service.CreateInvoice(ctx, suite.companyID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(invoice)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_RefundWithoutReference() {
	ctx := context.Background()
	customerID := uuid.NewString()
	req := dto.CreateInvoiceRequest{
		CustomerID: customerID,
		Amount:     decimal.RequireFromString("5.00"),
		Transactions: []dto.CreateTransactionRequest{
			{TransactionType: domain.Refund, Amount: decimal.RequireFromString("5.00")},
		},
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.companyID, customerID).Return(&domain.Customer{
		CustomerID: customerID,
		CompanyID:  suite.companyID,
	}, nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, suite.companyID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(invoice)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice")
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_RefundReferenceNotDone() {
	ctx := context.Background()
	customerID := uuid.NewString()
	debitID := uuid.NewString()
	req := dto.CreateInvoiceRequest{
		CustomerID: customerID,
		Amount:     decimal.RequireFromString("5.00"),
		Transactions: []dto.CreateTransactionRequest{
			{TransactionType: domain.Refund, Amount: decimal.RequireFromString("5.00"), ReferenceTo: &debitID},
		},
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.companyID, customerID).Return(&domain.Customer{
		CustomerID: customerID,
		CompanyID:  suite.companyID,
	}, nil).Once()
	suite.mockTxnRepo.On("FindTransactionByID", ctx, debitID).Return(&domain.Transaction{
		TransactionID:   debitID,
		CompanyID:       suite.companyID,
		TransactionType: domain.Debit,
		SubmitStatus:    domain.SubmitStaged,
	}, nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, suite.companyID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(invoice)
}

func (suite *InvoiceServiceTestSuite) TestSettleInvoice_DispatchesStagedTransactions() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	debit := domain.Transaction{
		TransactionID:   uuid.NewString(),
		InvoiceID:       invoiceID,
		CompanyID:       suite.companyID,
		TransactionType: domain.Debit,
		Amount:          decimal.RequireFromString("25.00"),
		SubmitStatus:    domain.SubmitStaged,
	}
	done := domain.Transaction{
		TransactionID:   uuid.NewString(),
		InvoiceID:       invoiceID,
		CompanyID:       suite.companyID,
		TransactionType: domain.Debit,
		Amount:          decimal.RequireFromString("10.00"),
		SubmitStatus:    domain.SubmitDone,
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, suite.companyID, invoiceID).Return(&domain.Invoice{
		InvoiceID: invoiceID,
		CompanyID: suite.companyID,
	}, nil).Once()
	suite.mockTxnRepo.On("FindTransactionsByInvoiceID", ctx, invoiceID).Return([]domain.Transaction{debit, done}, nil).Once()
	suite.mockDispatcher.On("Debit", ctx, debit).Return(&dto.DispatchResult{
		ProcessorURI: "/v1/marketplaces/MP1/debits/WD1",
		Status:       domain.TransactionSucceeded,
	}, nil).Once()

	resp, err := suite.service.SettleInvoice(ctx, suite.companyID, invoiceID)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Len(resp.Dispatched, 1)
	suite.Empty(resp.Failed)

	// The already-done transaction is not redispatched.
	suite.mockDispatcher.AssertNumberOfCalls(suite.T(), "Debit", 1)
	suite.mockDispatcher.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestSettleInvoice_FailedDispatchMovesToRetrying() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	debit := domain.Transaction{
		TransactionID:   uuid.NewString(),
		InvoiceID:       invoiceID,
		CompanyID:       suite.companyID,
		TransactionType: domain.Debit,
		Amount:          decimal.RequireFromString("25.00"),
		SubmitStatus:    domain.SubmitStaged,
	}
	credit := domain.Transaction{
		TransactionID:   uuid.NewString(),
		InvoiceID:       invoiceID,
		CompanyID:       suite.companyID,
		TransactionType: domain.Credit,
		Amount:          decimal.RequireFromString("3.00"),
		SubmitStatus:    domain.SubmitRetrying,
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, suite.companyID, invoiceID).Return(&domain.Invoice{
		InvoiceID: invoiceID,
		CompanyID: suite.companyID,
	}, nil).Once()
	suite.mockTxnRepo.On("FindTransactionsByInvoiceID", ctx, invoiceID).Return([]domain.Transaction{debit, credit}, nil).Once()
	suite.mockDispatcher.On("Debit", ctx, debit).Return(nil, errors.New("gateway unavailable")).Once()
	suite.mockTxnRepo.On("UpdateTransactionSubmitStatus", ctx, debit.TransactionID, domain.SubmitRetrying).Return(nil).Once()
	suite.mockDispatcher.On("Credit", ctx, credit).Return(&dto.DispatchResult{
		ProcessorURI: "/v1/marketplaces/MP1/credits/CR1",
		Status:       domain.TransactionSucceeded,
	}, nil).Once()

	resp, err := suite.service.SettleInvoice(ctx, suite.companyID, invoiceID)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Len(resp.Dispatched, 1)
	suite.Equal([]string{debit.TransactionID}, resp.Failed)

	suite.mockDispatcher.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
