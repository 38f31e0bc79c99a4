package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics
var (
	callbacksResolved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "billing_callbacks_resolved_total",
		Help: "Callback payloads resolved, by outcome",
	}, []string{"outcome"}) // applied | ignored | rejected

	duplicateEvents = promauto.NewCounter(prometheus.CounterOpts{
		Name: "billing_duplicate_events_total",
		Help: "Redelivered gateway events rejected by the dedup gate",
	})

	dispatchCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "billing_dispatch_calls_total",
		Help: "Dispatcher executions, by operation and path",
	}, []string{"operation", "path"}) // path: lookup | mutate
)
