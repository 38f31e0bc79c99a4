package repositories

// RepositoryProvider holds instances of all the application repositories.
type RepositoryProvider struct {
	CompanyRepo     CompanyRepositoryFacade
	CustomerRepo    CustomerRepositoryFacade
	InvoiceRepo     InvoiceRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	EventRepo       EventRepositoryFacade
}
