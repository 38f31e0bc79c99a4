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

type PgxEventRepository struct {
	BaseRepository
}

// newPgxEventRepository creates a new repository for transaction event data.
func newPgxEventRepository(pool *pgxpool.Pool) portsrepo.EventRepositoryFacade {
	return &PgxEventRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.EventRepositoryFacade = (*PgxEventRepository)(nil)

const eventColumns = `event_id, company_id, transaction_id, processor_id, status, occurred_at, created_at`

const eventsByTransactionQuery = `
	SELECT ` + eventColumns + `
	FROM transaction_events
	WHERE transaction_id = $1
	ORDER BY occurred_at DESC, processor_id DESC;
`

func collectEvents(rows pgx.Rows) ([]domain.TransactionEvent, error) {
	defer rows.Close()
	var events []domain.TransactionEvent
	for rows.Next() {
		var m models.TransactionEvent
		err := rows.Scan(
			&m.EventID,
			&m.CompanyID,
			&m.TransactionID,
			&m.ProcessorID,
			&m.Status,
			&m.OccurredAt,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction event", err)
		}
		events = append(events, mapping.ToDomainTransactionEvent(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate transaction events", err)
	}
	return events, nil
}

// FindEventsByTransactionID retrieves all recorded events for a transaction.
func (r *PgxEventRepository) FindEventsByTransactionID(ctx context.Context, transactionID string) ([]domain.TransactionEvent, error) {
	rows, err := r.Pool.Query(ctx, eventsByTransactionQuery, transactionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query events for transaction "+transactionID, err)
	}
	return collectEvents(rows)
}

// ApplyEvent records a gateway event and recomputes the owning transaction's
// and invoice's statuses within one DB transaction. The unique constraint on
// (company_id, processor_id) is the dedup gate: the loser of a concurrent
// redelivery gets apperrors.ErrDuplicateEvent and no partial state persists.
func (r *PgxEventRepository) ApplyEvent(ctx context.Context, event domain.TransactionEvent) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Ignored if the transaction is committed successfully
	defer r.Rollback(ctx, tx)

	// 1. Lock the owning transaction row so concurrent appliers for the same
	// transaction serialize and each recomputation sees a complete event set.
	// The company filter keeps cross-tenant events out even if the caller's
	// scope check was bypassed.
	var invoiceID string
	var txnStatus models.TransactionStatus
	lockQuery := `
		SELECT invoice_id, status
		FROM transactions
		WHERE transaction_id = $1 AND company_id = $2
		FOR UPDATE;
	`
	err = tx.QueryRow(ctx, lockQuery, event.TransactionID, event.CompanyID).Scan(&invoiceID, &txnStatus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to lock transaction "+event.TransactionID, err)
	}

	// 2. Insert the immutable event record.
	m := mapping.ToModelTransactionEvent(event)
	insertQuery := `
		INSERT INTO transaction_events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.EventID,
		m.CompanyID,
		m.TransactionID,
		m.ProcessorID,
		m.Status,
		m.OccurredAt,
		m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicateEvent
		}
		return apperrors.NewAppError(500, "failed to insert event "+m.ProcessorID, err)
	}

	// 3. Recompute the transaction's status from its full event history.
	rows, err := tx.Query(ctx, eventsByTransactionQuery, event.TransactionID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to query events for transaction "+event.TransactionID, err)
	}
	events, err := collectEvents(rows)
	if err != nil {
		return err
	}
	newStatus, ok := domain.StatusFromEvents(events)
	if !ok {
		// Unreachable: the event inserted above is part of the history.
		return apperrors.NewAppError(500, "no events found after insert for transaction "+event.TransactionID, nil)
	}

	now := time.Now().UTC()
	updateTxnQuery := `
		UPDATE transactions
		SET status = $2, last_updated_at = $3
		WHERE transaction_id = $1;
	`
	if _, err := tx.Exec(ctx, updateTxnQuery, event.TransactionID, models.TransactionStatus(newStatus), now); err != nil {
		return apperrors.NewAppError(500, "failed to update status of transaction "+event.TransactionID, err)
	}

	// 4. Recompute the invoice's status from all its transactions.
	var invoiceStatus models.InvoiceStatus
	lockInvoiceQuery := `SELECT status FROM invoices WHERE invoice_id = $1 FOR UPDATE;`
	if err := tx.QueryRow(ctx, lockInvoiceQuery, invoiceID).Scan(&invoiceStatus); err != nil {
		return apperrors.NewAppError(500, "failed to lock invoice "+invoiceID, err)
	}

	statusRows, err := tx.Query(ctx, `SELECT status FROM transactions WHERE invoice_id = $1;`, invoiceID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to query transaction statuses for invoice "+invoiceID, err)
	}
	var statuses []domain.TransactionStatus
	for statusRows.Next() {
		var s models.TransactionStatus
		if err := statusRows.Scan(&s); err != nil {
			statusRows.Close()
			return apperrors.NewAppError(500, "failed to scan transaction status", err)
		}
		statuses = append(statuses, domain.TransactionStatus(s))
	}
	if err := statusRows.Err(); err != nil {
		return apperrors.NewAppError(500, "failed to iterate transaction statuses", err)
	}

	derived := domain.DeriveInvoiceStatus(domain.InvoiceStatus(invoiceStatus), statuses)
	updateInvoiceQuery := `
		UPDATE invoices
		SET status = $2, last_updated_at = $3
		WHERE invoice_id = $1;
	`
	if _, err := tx.Exec(ctx, updateInvoiceQuery, invoiceID, models.InvoiceStatus(derived), now); err != nil {
		return apperrors.NewAppError(500, "failed to update status of invoice "+invoiceID, err)
	}

	return r.Commit(ctx, tx)
}
