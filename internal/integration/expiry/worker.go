package expiry

import (
	"context"
	"log/slog"
	"time"

	"github.com/expire-tracker/backend/internal/application/adapter"
	usecase "github.com/expire-tracker/backend/internal/application/usecase/expiry"
)

// Worker runs the expiry check on a fixed interval.
type Worker struct {
	runCheck *usecase.RunCheckUseCase
	lock     adapter.RunLock
	interval time.Duration
	lockTTL  time.Duration
}

// WorkerConfig holds configuration for the expiry worker.
type WorkerConfig struct {
	Interval time.Duration
	LockTTL  time.Duration
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		Interval: time.Hour,
		LockTTL:  10 * time.Minute,
	}
}

// NewWorker creates a new expiry worker.
func NewWorker(runCheck *usecase.RunCheckUseCase, lock adapter.RunLock, config WorkerConfig) *Worker {
	return &Worker{
		runCheck: runCheck,
		lock:     lock,
		interval: config.Interval,
		lockTTL:  config.LockTTL,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Expiry worker started",
		"interval", w.interval,
		"lock_ttl", w.lockTTL,
	)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Run immediately on start, then on ticker
	w.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Expiry worker shutting down")
			return
		case <-ticker.C:
			w.runOnce(ctx)
		}
	}
}

// runOnce executes a single guarded check pass. The advisory lock keeps
// multiple instances from running overlapping checks against the same
// database.
func (w *Worker) runOnce(ctx context.Context) {
	acquired, err := w.lock.Acquire(ctx, w.lockTTL)
	if err != nil {
		slog.Error("Failed to acquire expiry check lock", "error", err)
		return
	}
	if !acquired {
		slog.Debug("Expiry check skipped, another run holds the lock")
		return
	}
	defer func() {
		if err := w.lock.Release(ctx); err != nil {
			slog.Error("Failed to release expiry check lock", "error", err)
		}
	}()

	if _, err := w.runCheck.Execute(ctx); err != nil {
		slog.Error("Expiry check failed", "error", err)
	}
}

// RunNow executes one guarded check pass immediately.
func (w *Worker) RunNow(ctx context.Context) {
	w.runOnce(ctx)
}
