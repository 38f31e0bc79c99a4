package pgsql

import (
	portsrepo "github.com/billyhq/billing_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgx repositories over one connection pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CompanyRepo:     newPgxCompanyRepository(dbPool),
		CustomerRepo:    newPgxCustomerRepository(dbPool),
		InvoiceRepo:     newPgxInvoiceRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		EventRepo:       newPgxEventRepository(dbPool),
	}
}
