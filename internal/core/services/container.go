package services

import (
	"github.com/billyhq/billing_backend/internal/core/ports"
	portsrepo "github.com/billyhq/billing_backend/internal/core/ports/repositories"
	portssvc "github.com/billyhq/billing_backend/internal/core/ports/services"
)

// NewServiceContainer wires all application services over the repository
// provider and the gateway client. callbackBaseURL is the externally
// reachable base URL under which per-company callback endpoints live.
func NewServiceContainer(repos portsrepo.RepositoryProvider, gateway ports.GatewayClient, gatewayAPIKey, callbackBaseURL string) *portssvc.ServiceContainer {
	dispatcher := NewDispatcherService(gateway, repos.TransactionRepo, repos.InvoiceRepo, repos.CustomerRepo)
	if gatewayAPIKey != "" {
		dispatcher.ConfigureAPIKey(gatewayAPIKey)
	}

	return &portssvc.ServiceContainer{
		Callback:       NewCallbackService(gateway, repos.TransactionRepo),
		Reconciliation: NewReconciliationService(repos.EventRepo),
		Dispatcher:     dispatcher,
		Invoice:        NewInvoiceService(repos.InvoiceRepo, repos.TransactionRepo, repos.CustomerRepo, dispatcher),
		Customer:       NewCustomerService(repos.CustomerRepo, dispatcher),
		Company:        NewCompanyService(repos.CompanyRepo, dispatcher, callbackBaseURL),
	}
}
