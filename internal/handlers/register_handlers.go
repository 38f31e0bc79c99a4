package handlers

import (
	portsrepo "github.com/billyhq/billing_backend/internal/core/ports/repositories"
	portssvc "github.com/billyhq/billing_backend/internal/core/ports/services"
	"github.com/billyhq/billing_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	repos portsrepo.RepositoryProvider,
	callbackLimiter *limiter.Limiter,
) {
	// Health and metrics
	r.GET("/health", GetHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Gateway callbacks, authenticated by per-company callback key. Rate
	// limited since the endpoint is reachable without API credentials.
	callbackHandler := NewCallbackHandler(repos.CompanyRepo, services.Callback, services.Reconciliation)
	callbacks := r.Group("/callbacks", middleware.RateLimit(callbackLimiter))
	callbacks.POST("/:callbackKey", callbackHandler.HandleCallback)

	// API v1 routes, authenticated by company API key
	setupAPIV1Routes(r, services, repos)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	repos portsrepo.RepositoryProvider,
) {
	companyHandler := NewCompanyHandler(services.Company)

	// Onboarding is the one unauthenticated API operation; its response
	// carries the keys every other route requires.
	r.POST("/api/v1/companies", companyHandler.CreateCompany)

	v1 := r.Group("/api/v1/companies/:companyID", middleware.CompanyAuthMiddleware(repos.CompanyRepo))

	v1.GET("", companyHandler.GetCompany)
	registerInvoiceRoutes(v1, services.Invoice)
	registerCustomerRoutes(v1, services.Customer)
}

func registerInvoiceRoutes(v1 *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	invoiceHandler := NewInvoiceHandler(invoiceService)

	invoices := v1.Group("/invoices")
	{
		invoices.POST("/", invoiceHandler.CreateInvoice)
		invoices.GET("/:invoiceID", invoiceHandler.GetInvoice)
		invoices.POST("/:invoiceID/settle", invoiceHandler.SettleInvoice)
	}
}

func registerCustomerRoutes(v1 *gin.RouterGroup, customerService portssvc.CustomerSvcFacade) {
	customerHandler := NewCustomerHandler(customerService)

	customers := v1.Group("/customers")
	{
		customers.POST("/", customerHandler.CreateCustomer)
		customers.GET("/:customerID", customerHandler.GetCustomer)
	}
}
