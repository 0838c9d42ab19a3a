// Package metrics registers the prometheus collectors the core emits to.
// These counters are the observability sink for recovery, validation, and
// reference-clearing events; the application layer scrapes them from the
// /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StoreOpenAttempts counts store open attempts by outcome ("ok",
	// "error").
	StoreOpenAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "packmule_store_open_attempts_total",
		Help: "Store open attempts by outcome.",
	}, []string{"outcome"})

	// CorruptionRecoveries counts delete-and-recreate recovery cycles.
	// Each increment means all previously persisted local data was lost.
	CorruptionRecoveries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "packmule_store_corruption_recoveries_total",
		Help: "Destructive delete-and-recreate store recoveries.",
	})

	// ValidationFailures counts validation-gate rejections by entity kind.
	ValidationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "packmule_validation_failures_total",
		Help: "Validation gate rejections by entity kind.",
	}, []string{"kind"})

	// DanglingRefsCleared counts group references cleared before write.
	DanglingRefsCleared = promauto.NewCounter(prometheus.CounterOpts{
		Name: "packmule_dangling_group_refs_cleared_total",
		Help: "Item group references cleared because the group no longer exists.",
	})

	// ShoppingMerges counts reconciler merge runs.
	ShoppingMerges = promauto.NewCounter(prometheus.CounterOpts{
		Name: "packmule_shopping_merges_total",
		Help: "Shopping list reconciliation merge runs.",
	})
)
