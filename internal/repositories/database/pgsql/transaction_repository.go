package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/billyhq/billing_backend/internal/apperrors"
	"github.com/billyhq/billing_backend/internal/core/domain"
	portsrepo "github.com/billyhq/billing_backend/internal/core/ports/repositories"
	"github.com/billyhq/billing_backend/internal/models"
	"github.com/billyhq/billing_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `
	transaction_id, invoice_id, company_id, transaction_type, amount,
	funding_instrument_uri, reference_to, processor_uri, status,
	submit_status, appears_on_statement_as, created_at, last_updated_at`

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.InvoiceID,
		&m.CompanyID,
		&m.TransactionType,
		&m.Amount,
		&m.FundingInstrumentURI,
		&m.ReferenceTo,
		&m.ProcessorURI,
		&m.Status,
		&m.SubmitStatus,
		&m.AppearsOnStatementAs,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan transaction", err)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// SaveTransaction persists a new transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (
			transaction_id, invoice_id, company_id, transaction_type, amount,
			funding_instrument_uri, reference_to, processor_uri, status,
			submit_status, appears_on_statement_as, created_at, last_updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.InvoiceID,
		m.CompanyID,
		m.TransactionType,
		m.Amount,
		m.FundingInstrumentURI,
		m.ReferenceTo,
		m.ProcessorURI,
		m.Status,
		m.SubmitStatus,
		m.AppearsOnStatementAs,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert transaction "+m.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	return scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
}

// FindTransactionsByInvoiceID retrieves all transactions of an invoice in creation order.
func (r *PgxTransactionRepository) FindTransactionsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE invoice_id = $1 ORDER BY created_at, transaction_id;`
	rows, err := r.Pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions for invoice "+invoiceID, err)
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate transactions for invoice "+invoiceID, err)
	}
	return transactions, nil
}

// UpdateTransactionDispatch records the outcome of a gateway dispatch.
func (r *PgxTransactionRepository) UpdateTransactionDispatch(ctx context.Context, transactionID, processorURI string, status domain.TransactionStatus, submitStatus domain.SubmitStatus) error {
	query := `
		UPDATE transactions
		SET processor_uri = $2, status = $3, submit_status = $4, last_updated_at = $5
		WHERE transaction_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, transactionID, processorURI, models.TransactionStatus(status), models.SubmitStatus(submitStatus), time.Now().UTC())
	if err != nil {
		return apperrors.NewAppError(500, "failed to update dispatch result for transaction "+transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateTransactionSubmitStatus moves a transaction's submission lifecycle.
func (r *PgxTransactionRepository) UpdateTransactionSubmitStatus(ctx context.Context, transactionID string, submitStatus domain.SubmitStatus) error {
	query := `
		UPDATE transactions
		SET submit_status = $2, last_updated_at = $3
		WHERE transaction_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, transactionID, models.SubmitStatus(submitStatus), time.Now().UTC())
	if err != nil {
		return apperrors.NewAppError(500, "failed to update submit status for transaction "+transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
