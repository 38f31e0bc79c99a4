package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/billyhq/billing_backend/internal/apperrors"
	portsrepo "github.com/billyhq/billing_backend/internal/core/ports/repositories"
	portssvc "github.com/billyhq/billing_backend/internal/core/ports/services"
	"github.com/billyhq/billing_backend/internal/dto"
	"github.com/billyhq/billing_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type CallbackHandler struct {
	companyRepo    portsrepo.CompanyReader
	callbackSvc    portssvc.CallbackSvcFacade
	reconciliation portssvc.ReconciliationSvcFacade
}

func NewCallbackHandler(companyRepo portsrepo.CompanyReader, callbackSvc portssvc.CallbackSvcFacade, reconciliation portssvc.ReconciliationSvcFacade) *CallbackHandler {
	return &CallbackHandler{
		companyRepo:    companyRepo,
		callbackSvc:    callbackSvc,
		reconciliation: reconciliation,
	}
}

// HandleCallback receives a gateway callback, resolves it under the company
// that owns the callback key, and applies the resulting deferred event.
// Acknowledge-after-commit: the gateway only sees 200 once the state mutation
// is durable, so a lost acknowledgment is redelivered and deduplicated.
func (h *CallbackHandler) HandleCallback(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	company, err := h.companyRepo.FindCompanyByCallbackKey(ctx, c.Param("callbackKey"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown callback key"})
			return
		}
		logger.Error("Failed to resolve company for callback", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	var payload dto.CallbackPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid callback body: " + err.Error()})
		return
	}

	action, err := h.callbackSvc.Resolve(ctx, *company, payload)
	if err != nil {
		respondError(c, err)
		return
	}
	if action == nil {
		// Event carries no transaction tag; not billing-relevant.
		c.JSON(http.StatusOK, gin.H{"ignored": true})
		return
	}

	if err := h.reconciliation.Apply(ctx, *action); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEvent) {
			// Redelivery: already recorded, nothing to do. Acknowledge so the
			// gateway stops resending.
			c.JSON(http.StatusOK, gin.H{"duplicate": true})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applied": true})
}
