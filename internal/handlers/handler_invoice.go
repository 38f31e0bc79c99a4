package handlers

import (
	"net/http"

	portssvc "github.com/billyhq/billing_backend/internal/core/ports/services"
	"github.com/billyhq/billing_backend/internal/dto"
	"github.com/billyhq/billing_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

func NewInvoiceHandler(invoiceService portssvc.InvoiceSvcFacade) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// CreateInvoice creates an invoice with its staged transactions.
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	company, ok := middleware.GetCompanyFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), company.CompanyID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

// GetInvoice retrieves an invoice with its transactions.
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	company, ok := middleware.GetCompanyFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	invoice, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), company.CompanyID, c.Param("invoiceID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// SettleInvoice dispatches the invoice's staged transactions to the gateway.
func (h *InvoiceHandler) SettleInvoice(c *gin.Context) {
	company, ok := middleware.GetCompanyFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	resp, err := h.invoiceService.SettleInvoice(c.Request.Context(), company.CompanyID, c.Param("invoiceID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
