package pgsql

import (
	"context"
	"errors"

	"github.com/billyhq/billing_backend/internal/apperrors"
	"github.com/billyhq/billing_backend/internal/core/domain"
	portsrepo "github.com/billyhq/billing_backend/internal/core/ports/repositories"
	"github.com/billyhq/billing_backend/internal/models"
	"github.com/billyhq/billing_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoice data.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

// SaveInvoice persists an invoice together with its transactions within a DB transaction.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice, transactions []domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Ignored if the transaction is committed successfully
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelInvoice(invoice)
	invoiceQuery := `
		INSERT INTO invoices (invoice_id, company_id, customer_id, amount, status, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, invoiceQuery,
		m.InvoiceID,
		m.CompanyID,
		m.CustomerID,
		m.Amount,
		m.Status,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert invoice "+m.InvoiceID, err)
	}

	batch := &pgx.Batch{}
	txnQuery := `
		INSERT INTO transactions (
			transaction_id, invoice_id, company_id, transaction_type, amount,
			funding_instrument_uri, reference_to, processor_uri, status,
			submit_status, appears_on_statement_as, created_at, last_updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	for _, txn := range transactions {
		mTxn := mapping.ToModelTransaction(txn)
		batch.Queue(txnQuery,
			mTxn.TransactionID,
			mTxn.InvoiceID,
			mTxn.CompanyID,
			mTxn.TransactionType,
			mTxn.Amount,
			mTxn.FundingInstrumentURI,
			mTxn.ReferenceTo,
			mTxn.ProcessorURI,
			mTxn.Status,
			mTxn.SubmitStatus,
			mTxn.AppearsOnStatementAs,
			mTxn.CreatedAt,
			mTxn.LastUpdatedAt,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute transaction batch for invoice "+m.InvoiceID, err)
	}

	return r.Commit(ctx, tx)
}

// FindInvoiceByID retrieves an invoice by id within a company's scope.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, companyID, invoiceID string) (*domain.Invoice, error) {
	query := `
		SELECT invoice_id, company_id, customer_id, amount, status, created_at, last_updated_at
		FROM invoices
		WHERE invoice_id = $1 AND company_id = $2;
	`
	var m models.Invoice
	err := r.Pool.QueryRow(ctx, query, invoiceID, companyID).Scan(
		&m.InvoiceID,
		&m.CompanyID,
		&m.CustomerID,
		&m.Amount,
		&m.Status,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find invoice by ID "+invoiceID, err)
	}
	invoice := mapping.ToDomainInvoice(m)
	return &invoice, nil
}
