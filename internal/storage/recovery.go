package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"packmule/internal/metrics"
)

// ErrOpenFailed wraps store-open failures that survived recovery. It only
// reaches callers after the retry budget is exhausted AND the destructive
// recreate has also failed; at that point the application cannot proceed
// without storage.
var ErrOpenFailed = errors.New("store open failed")

// OpenFunc opens the store. It must be safe to call repeatedly.
type OpenFunc func() (Store, error)

// RecoveryManager wraps store initialization with bounded retry and a
// last-resort delete-and-recreate path for a store that repeatedly fails to
// open (corruption).
//
// Retry-first matters: a store that only suffered transient lock contention
// (for example another process mid-upgrade) must not be destroyed. The
// bounded budget caps worst-case startup latency.
type RecoveryManager struct {
	// Open opens the store; Destroy irreversibly deletes it by name.
	Open    OpenFunc
	Destroy func() error

	// Attempts is the open retry budget; Backoff is the linear backoff
	// base (sleep = Backoff × attempt number between attempts).
	Attempts int
	Backoff  time.Duration
}

// OpenWithRecovery attempts to open the store, recovering from corruption
// by deleting and recreating it after the retry budget is exhausted. The
// returned recovered flag reports that the destructive path ran and all
// previously persisted data is gone; the application layer should tell the
// user. Fails only if recovery itself fails.
func (m *RecoveryManager) OpenWithRecovery(ctx context.Context) (store Store, recovered bool, err error) {
	attempts := m.Attempts
	if attempts <= 0 {
		attempts = 3
	}
	backoff := m.Backoff
	if backoff <= 0 {
		backoff = 150 * time.Millisecond
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		store, err := m.Open()
		if err == nil {
			metrics.StoreOpenAttempts.WithLabelValues("ok").Inc()
			slog.Info("store opened", "stage", "open", "attempt", attempt)
			return store, false, nil
		}
		lastErr = err
		metrics.StoreOpenAttempts.WithLabelValues("error").Inc()
		slog.Warn("store open failed", "stage", "open", "attempt", attempt, "error", err)

		if attempt < attempts {
			select {
			case <-time.After(backoff * time.Duration(attempt)):
			case <-ctx.Done():
				return nil, false, fmt.Errorf("%w: %w", ErrOpenFailed, ctx.Err())
			}
		}
	}

	// Every attempt failed; assume on-disk corruption.
	slog.Error("store open retries exhausted, deleting store", "stage", "recover", "error", lastErr)
	if err := m.Destroy(); err != nil {
		return nil, false, fmt.Errorf("%w: recovery delete failed: %w", ErrOpenFailed, err)
	}

	// Exactly one fresh open; the upgrade routine recreates all partitions.
	store, err = m.Open()
	if err != nil {
		metrics.StoreOpenAttempts.WithLabelValues("error").Inc()
		slog.Error("store open failed after recreate", "stage", "recover", "error", err)
		return nil, false, fmt.Errorf("%w: open after recreate failed: %w", ErrOpenFailed, err)
	}

	metrics.StoreOpenAttempts.WithLabelValues("ok").Inc()
	metrics.CorruptionRecoveries.Inc()
	slog.Warn("store recovered from corruption, previous data lost", "stage", "recover")
	return store, true, nil
}
