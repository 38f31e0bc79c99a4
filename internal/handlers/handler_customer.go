package handlers

import (
	"net/http"

	portssvc "github.com/billyhq/billing_backend/internal/core/ports/services"
	"github.com/billyhq/billing_backend/internal/dto"
	"github.com/billyhq/billing_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	customerService portssvc.CustomerSvcFacade
}

func NewCustomerHandler(customerService portssvc.CustomerSvcFacade) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// CreateCustomer creates a customer and its gateway-side record.
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	company, ok := middleware.GetCompanyFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), company.CompanyID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

// GetCustomer retrieves a customer.
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	company, ok := middleware.GetCompanyFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	customer, err := h.customerService.GetCustomerByID(c.Request.Context(), company.CompanyID, c.Param("customerID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}
