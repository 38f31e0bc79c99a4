package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/billyhq/billing_backend/internal/apperrors"
	"github.com/billyhq/billing_backend/internal/core/domain"
	portsrepo "github.com/billyhq/billing_backend/internal/core/ports/repositories"
	portssvc "github.com/billyhq/billing_backend/internal/core/ports/services"
	"github.com/billyhq/billing_backend/internal/dto"
	"github.com/billyhq/billing_backend/internal/middleware"
)

var (
	ErrRefundWithoutReference = errors.New("refund must reference a settled debit")
	ErrRefundReferenceNotDone = errors.New("refund must reference a debit whose submission is done")
)

// invoiceService provides invoice creation and settlement.
type invoiceService struct {
	invoiceRepo     portsrepo.InvoiceRepositoryFacade
	transactionRepo portsrepo.TransactionRepositoryFacade
	customerRepo    portsrepo.CustomerReader
	dispatcher      portssvc.DispatcherSvcFacade
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	transactionRepo portsrepo.TransactionRepositoryFacade,
	customerRepo portsrepo.CustomerReader,
	dispatcher portssvc.DispatcherSvcFacade,
) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		invoiceRepo:     invoiceRepo,
		transactionRepo: transactionRepo,
		customerRepo:    customerRepo,
		dispatcher:      dispatcher,
	}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// CreateInvoice implements portssvc.InvoiceSvcFacade.
func (s *invoiceService) CreateInvoice(ctx context.Context, companyID string, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: invoice amount must be positive", apperrors.ErrValidation)
	}

	// Customer must exist within this company's scope.
	if _, err := s.customerRepo.FindCustomerByID(ctx, companyID, req.CustomerID); err != nil {
		return nil, fmt.Errorf("failed to find customer %s: %w", req.CustomerID, err)
	}

	now := time.Now().UTC()
	invoiceID := uuid.NewString()

	domainTransactions := make([]domain.Transaction, len(req.Transactions))
	for i, txnReq := range req.Transactions {
		if txnReq.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: transaction amount must be positive", apperrors.ErrValidation)
		}
		if txnReq.TransactionType == domain.Refund {
			if err := s.validateRefundReference(ctx, companyID, txnReq.ReferenceTo); err != nil {
				return nil, err
			}
		}
		domainTransactions[i] = domain.Transaction{
			TransactionID:        uuid.NewString(),
			InvoiceID:            invoiceID,
			CompanyID:            companyID,
			TransactionType:      txnReq.TransactionType,
			Amount:               txnReq.Amount,
			FundingInstrumentURI: txnReq.FundingInstrumentURI,
			ReferenceTo:          txnReq.ReferenceTo,
			Status:               domain.TransactionPending,
			SubmitStatus:         domain.SubmitStaged,
			AppearsOnStatementAs: txnReq.AppearsOnStatementAs,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		}
	}

	domainInvoice := domain.Invoice{
		InvoiceID:  invoiceID,
		CompanyID:  companyID,
		CustomerID: req.CustomerID,
		Amount:     req.Amount,
		Status:     domain.InvoicePending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, domainInvoice, domainTransactions); err != nil {
		logger.Error("Failed to save invoice", slog.String("error", err.Error()), slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}

	logger.Info("Invoice created successfully", slog.String("invoice_id", invoiceID), slog.String("company_id", companyID))
	domainInvoice.Transactions = domainTransactions
	return &domainInvoice, nil
}

// validateRefundReference enforces that a refund points at a DEBIT of the
// same company whose submission is DONE.
func (s *invoiceService) validateRefundReference(ctx context.Context, companyID string, referenceTo *string) error {
	if referenceTo == nil {
		return fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrRefundWithoutReference)
	}
	debitTxn, err := s.transactionRepo.FindTransactionByID(ctx, *referenceTo)
	if err != nil {
		return fmt.Errorf("failed to find referenced debit %s: %w", *referenceTo, err)
	}
	if debitTxn.CompanyID != companyID || debitTxn.TransactionType != domain.Debit {
		return fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrRefundWithoutReference)
	}
	if debitTxn.SubmitStatus != domain.SubmitDone {
		return fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrRefundReferenceNotDone)
	}
	return nil
}

// GetInvoiceByID implements portssvc.InvoiceSvcFacade.
func (s *invoiceService) GetInvoiceByID(ctx context.Context, companyID, invoiceID string) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, companyID, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find invoice by ID", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID))
		}
		return nil, fmt.Errorf("failed to find invoice by ID %s: %w", invoiceID, err)
	}

	transactions, err := s.transactionRepo.FindTransactionsByInvoiceID(ctx, invoiceID)
	if err != nil {
		logger.Error("Failed to fetch transactions for invoice", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to retrieve transactions for invoice %s: %w", invoiceID, apperrors.ErrInternal)
	}
	invoice.Transactions = transactions

	return invoice, nil
}

// SettleInvoice implements portssvc.InvoiceSvcFacade. Every staged or
// retrying transaction is pushed through the idempotent dispatcher; a
// transaction whose dispatch errors moves to RETRYING and the rest continue.
func (s *invoiceService) SettleInvoice(ctx context.Context, companyID, invoiceID string) (*dto.SettleInvoiceResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	invoice, err := s.GetInvoiceByID(ctx, companyID, invoiceID)
	if err != nil {
		return nil, err
	}

	resp := &dto.SettleInvoiceResponse{InvoiceID: invoiceID}
	for _, txn := range invoice.Transactions {
		if txn.SubmitStatus != domain.SubmitStaged && txn.SubmitStatus != domain.SubmitRetrying {
			continue
		}

		var result *dto.DispatchResult
		switch txn.TransactionType {
		case domain.Debit:
			result, err = s.dispatcher.Debit(ctx, txn)
		case domain.Credit:
			result, err = s.dispatcher.Credit(ctx, txn)
		case domain.Refund:
			result, err = s.dispatcher.Refund(ctx, txn)
		default:
			err = fmt.Errorf("%w: unknown transaction type %s", apperrors.ErrValidation, txn.TransactionType)
		}

		if err != nil {
			logger.Warn("Dispatch failed during settlement",
				slog.String("transaction_id", txn.TransactionID),
				slog.String("error", err.Error()),
			)
			resp.Failed = append(resp.Failed, txn.TransactionID)
			if updateErr := s.transactionRepo.UpdateTransactionSubmitStatus(ctx, txn.TransactionID, domain.SubmitRetrying); updateErr != nil {
				logger.Error("Failed to mark transaction retrying", slog.String("transaction_id", txn.TransactionID), slog.String("error", updateErr.Error()))
			}
			continue
		}
		resp.Dispatched = append(resp.Dispatched, *result)
	}

	logger.Info("Invoice settlement run finished",
		slog.String("invoice_id", invoiceID),
		slog.Int("dispatched", len(resp.Dispatched)),
		slog.Int("failed", len(resp.Failed)),
	)
	return resp, nil
}
