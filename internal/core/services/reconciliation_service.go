package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/billyhq/billing_backend/internal/apperrors"
	"github.com/billyhq/billing_backend/internal/core/domain"
	portsrepo "github.com/billyhq/billing_backend/internal/core/ports/repositories"
	portssvc "github.com/billyhq/billing_backend/internal/core/ports/services"
	"github.com/billyhq/billing_backend/internal/middleware"
)

var (
	// ErrMissingTransactionID indicates a deferred event without a target.
	ErrMissingTransactionID = errors.New("deferred event carries no transaction id")
)

// reconciliationService applies deferred events to transactions and invoices.
type reconciliationService struct {
	eventRepo portsrepo.EventRepositoryFacade
}

// NewReconciliationService creates a new ReconciliationService.
func NewReconciliationService(eventRepo portsrepo.EventRepositoryFacade) portssvc.ReconciliationSvcFacade {
	return &reconciliationService{eventRepo: eventRepo}
}

var _ portssvc.ReconciliationSvcFacade = (*reconciliationService)(nil)

// Apply implements portssvc.ReconciliationSvcFacade. The repository executes
// the dedup check, the insert and both status recomputations inside one
// database transaction; recomputation always reads the full event history so
// the end state is the same regardless of delivery order.
func (s *reconciliationService) Apply(ctx context.Context, action domain.DeferredEvent) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if action.TransactionID == "" {
		return fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrMissingTransactionID)
	}

	event := domain.TransactionEvent{
		EventID:       uuid.NewString(),
		CompanyID:     action.CompanyID,
		TransactionID: action.TransactionID,
		ProcessorID:   action.ProcessorID,
		Status:        action.Status,
		OccurredAt:    action.OccurredAt,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.eventRepo.ApplyEvent(ctx, event); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEvent) {
			duplicateEvents.Inc()
			logger.Warn("Duplicate gateway event rejected",
				slog.String("processor_id", action.ProcessorID),
				slog.String("company_id", action.CompanyID),
			)
			return err
		}
		logger.Error("Failed to apply transaction event", slog.String("error", err.Error()), slog.String("transaction_id", action.TransactionID))
		return fmt.Errorf("failed to apply event %s: %w", action.ProcessorID, err)
	}

	logger.Info("Transaction event applied",
		slog.String("transaction_id", action.TransactionID),
		slog.String("processor_id", action.ProcessorID),
		slog.String("status", string(action.Status)),
	)
	return nil
}
