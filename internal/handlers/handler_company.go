package handlers

import (
	"net/http"

	portssvc "github.com/billyhq/billing_backend/internal/core/ports/services"
	"github.com/billyhq/billing_backend/internal/dto"
	"github.com/billyhq/billing_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyService portssvc.CompanySvcFacade
}

func NewCompanyHandler(companyService portssvc.CompanySvcFacade) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// CreateCompany onboards a company. The response is the only place its API
// and callback keys are ever issued from.
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	company, err := h.companyService.CreateCompany(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToCompanyResponse(company))
}

// GetCompany returns the authenticated company's own record.
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	company, ok := middleware.GetCompanyFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}
