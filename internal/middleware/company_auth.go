package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/billyhq/billing_backend/internal/apperrors"
	"github.com/billyhq/billing_backend/internal/core/domain"
	portsrepo "github.com/billyhq/billing_backend/internal/core/ports/repositories"
	"github.com/gin-gonic/gin"
)

const companyKey = contextKey("company")

// CompanyAuthMiddleware authenticates API requests with the company API key
// carried in the X-Api-Key header and stores the company in the Gin context.
func CompanyAuthMiddleware(companyRepo portsrepo.CompanyReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-Api-Key")
		if apiKey == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing API key"})
			return
		}

		companyID := c.Param("companyID")
		company, err := companyRepo.FindCompanyByID(c.Request.Context(), companyID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "company not found"})
				return
			}
			GetLoggerFromCtx(c.Request.Context()).Error("Failed to load company for auth", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		if company.APIKey != apiKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid API key"})
			return
		}

		c.Set(string(companyKey), company)
		c.Next()
	}
}

// GetCompanyFromContext retrieves the authenticated company from the Gin
// context. It returns the company and a boolean indicating if it was found.
func GetCompanyFromContext(c *gin.Context) (*domain.Company, bool) {
	companyVal, exists := c.Get(string(companyKey))
	if !exists {
		return nil, false
	}
	company, ok := companyVal.(*domain.Company)
	if !ok {
		return nil, false
	}
	return company, true
}
