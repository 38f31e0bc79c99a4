package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/billyhq/billing_backend/internal/apperrors"
	"github.com/billyhq/billing_backend/internal/core/domain"
	"github.com/billyhq/billing_backend/internal/core/ports"
	portsrepo "github.com/billyhq/billing_backend/internal/core/ports/repositories"
	portssvc "github.com/billyhq/billing_backend/internal/core/ports/services"
	"github.com/billyhq/billing_backend/internal/dto"
	"github.com/billyhq/billing_backend/internal/middleware"
)

// TransactionMetaKey is the metadata tag binding a gateway resource or event
// back to the transaction that produced it.
const TransactionMetaKey = "billing.transaction_id"

// CustomerMetaKey is the metadata tag binding a gateway customer record back
// to the local customer.
const CustomerMetaKey = "billing.customer_id"

// callbackService validates inbound gateway callbacks and produces deferred
// reconciliation actions.
type callbackService struct {
	gateway         ports.GatewayClient
	transactionRepo portsrepo.TransactionReader
}

// NewCallbackService creates a new CallbackService.
func NewCallbackService(gateway ports.GatewayClient, transactionRepo portsrepo.TransactionReader) portssvc.CallbackSvcFacade {
	return &callbackService{
		gateway:         gateway,
		transactionRepo: transactionRepo,
	}
}

var _ portssvc.CallbackSvcFacade = (*callbackService)(nil)

// Resolve implements portssvc.CallbackSvcFacade.
func (s *callbackService) Resolve(ctx context.Context, company domain.Company, payload dto.CallbackPayload) (*domain.DeferredEvent, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	logger.Info("Handling callback",
		slog.String("company_id", company.CompanyID),
		slog.String("event_id", payload.EventID),
		slog.String("event_type", payload.Type),
	)

	// Fetch the event from the gateway to ensure the event in the callback
	// payload is real. Without this, an attacker who knows the company's
	// callback key could forge a callback and mark any invoice settled.
	event, err := s.gateway.FetchEvent(ctx, payload.EventID)
	if err != nil {
		callbacksResolved.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("%w: failed to fetch event %s: %v", apperrors.ErrInvalidCallbackPayload, payload.EventID, err)
	}

	transactionID, ok := event.EntityMeta[TransactionMetaKey]
	if !ok {
		logger.Info("Not a transaction created by billing, ignore", slog.String("event_id", event.ID))
		callbacksResolved.WithLabelValues("ignored").Inc()
		return nil, nil
	}

	status := MapGatewayStatus(event.EntityStatus)
	if _, known := gatewayStatusMap[event.EntityStatus]; !known {
		logger.Warn("Unknown gateway status, default to pending", slog.String("status", event.EntityStatus))
	}

	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			callbacksResolved.WithLabelValues("rejected").Inc()
			return nil, fmt.Errorf("%w: transaction %s does not exist", apperrors.ErrInvalidCallbackPayload, transactionID)
		}
		logger.Error("Failed to resolve transaction for callback", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to resolve transaction %s: %w", transactionID, err)
	}

	// Hard isolation boundary: a company must never be able to mutate another
	// company's transactions via a replayed or forged event id.
	if txn.CompanyID != company.CompanyID {
		logger.Warn("Callback references transaction of another company",
			slog.String("transaction_id", transactionID),
			slog.String("transaction_company", txn.CompanyID),
			slog.String("calling_company", company.CompanyID),
		)
		callbacksResolved.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("%w: no access to other company", apperrors.ErrInvalidCallbackPayload)
	}

	logger.Info("Callback resolved",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("entity_status", event.EntityStatus),
		slog.String("new_status", string(status)),
		slog.String("processor_id", event.ID),
		slog.Time("occurred_at", event.OccurredAt),
	)
	callbacksResolved.WithLabelValues("applied").Inc()

	return &domain.DeferredEvent{
		CompanyID:     company.CompanyID,
		TransactionID: txn.TransactionID,
		ProcessorID:   event.ID,
		Status:        status,
		OccurredAt:    event.OccurredAt,
	}, nil
}
