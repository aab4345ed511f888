package reconcile

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/akadeepesh/legal-processor-frontend/internal/model"
	"github.com/akadeepesh/legal-processor-frontend/internal/store"
)

// Poller fetches the current remote snapshot
type Poller interface {
	PollStatus(ctx context.Context) ([]model.SnapshotEntry, error)
}

// Reconciler keeps the local store in step with the remote source of truth.
// The polling loop runs only while at least one record is non-terminal: it
// starts on the transition into "any active job" with an immediate first
// fetch, and exits once every remaining record is terminal. A failed fetch
// is logged and skipped; the next tick retries with no backoff, because a
// transient poll failure must not interrupt a pipeline run that can take
// the better part of a day.
type Reconciler struct {
	store    *store.Store
	poller   Poller
	interval time.Duration
	logger   *slog.Logger
	onMerge  func()

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a reconciler over the shared store
func New(s *store.Store, poller Poller, interval time.Duration, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Reconciler{
		store:    s,
		poller:   poller,
		interval: interval,
		logger:   logger,
	}
}

// SetOnMerge registers a callback invoked after every successful merge.
// Must be set before the first Poke.
func (r *Reconciler) SetOnMerge(fn func()) {
	r.onMerge = fn
}

// Poke starts the polling loop if it is idle and any record is active.
// Call after every store mutation; a Poke while the loop already runs is a
// no-op, so merges that change status without changing the record count do
// not reset the timer.
func (r *Reconciler) Poke() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		return
	}
	if r.store.ActiveCount() == 0 {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.done = make(chan struct{})
	go r.run(ctx, r.done)
}

// Running reports whether the polling loop is live
func (r *Reconciler) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cancel != nil
}

// Stop cancels the loop and any in-flight fetch, then waits for it to exit.
// Safe to call when idle.
func (r *Reconciler) Stop() {
	r.mu.Lock()
	cancel := r.cancel
	done := r.done
	r.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// FetchNow runs a single fetch-and-merge cycle synchronously, outside the
// timer. Used for explicit refreshes.
func (r *Reconciler) FetchNow(ctx context.Context) error {
	entries, err := r.poller.PollStatus(ctx)
	if err != nil {
		return err
	}
	r.merge(entries)
	return nil
}

func (r *Reconciler) run(ctx context.Context, done chan struct{}) {
	defer func() {
		r.mu.Lock()
		// Release the context even when the loop winds down on its own
		r.cancel()
		r.cancel = nil
		r.done = nil
		r.mu.Unlock()
		close(done)
	}()

	// Immediate first fetch, not waiting for the first tick
	r.cycle(ctx)
	if r.store.ActiveCount() == 0 {
		return
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.cycle(ctx)
			if r.store.ActiveCount() == 0 {
				return
			}
		}
	}
}

func (r *Reconciler) cycle(ctx context.Context) {
	entries, err := r.poller.PollStatus(ctx)
	if err != nil {
		// Swallowed: retried on the next tick
		r.logger.Warn("status poll failed", "error", err)
		return
	}
	r.merge(entries)
}

func (r *Reconciler) merge(entries []model.SnapshotEntry) {
	r.store.MergeSnapshot(entries)
	if r.onMerge != nil {
		r.onMerge()
	}
}
