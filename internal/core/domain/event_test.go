package domain_test

import (
	"testing"
	"time"

	"github.com/billyhq/billing_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromEvents(t *testing.T) {
	base := time.Date(2013, 8, 16, 0, 0, 0, 0, time.UTC)

	ev := func(processorID string, at time.Time, status domain.TransactionStatus) domain.TransactionEvent {
		return domain.TransactionEvent{
			ProcessorID: processorID,
			OccurredAt:  at,
			Status:      status,
		}
	}

	t.Run("no events", func(t *testing.T) {
		_, ok := domain.StatusFromEvents(nil)
		assert.False(t, ok)
	})

	t.Run("latest occurred_at wins regardless of slice order", func(t *testing.T) {
		events := []domain.TransactionEvent{
			ev("EV1", base, domain.TransactionPending),
			ev("EV3", base.Add(20*time.Second), domain.TransactionFailed),
			ev("EV2", base.Add(10*time.Second), domain.TransactionSucceeded),
		}
		// every permutation of delivery converges to the same status
		perms := [][]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
		for _, p := range perms {
			ordered := []domain.TransactionEvent{events[p[0]], events[p[1]], events[p[2]]}
			status, ok := domain.StatusFromEvents(ordered)
			assert.True(t, ok)
			assert.Equal(t, domain.TransactionFailed, status)
		}
	})

	t.Run("tie on occurred_at broken by greater processor id", func(t *testing.T) {
		events := []domain.TransactionEvent{
			ev("EVB", base, domain.TransactionSucceeded),
			ev("EVA", base, domain.TransactionFailed),
		}
		status, ok := domain.StatusFromEvents(events)
		assert.True(t, ok)
		assert.Equal(t, domain.TransactionSucceeded, status)
	})
}
