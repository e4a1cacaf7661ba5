package visualization

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/griederer/ai-visualization-gallery/internal/domain"
)

// channel fired by the trigger installed in the visualizations migration.
const notifyChannel = "visualizations_changed"

// Subscription is a live view over the gallery. After Subscribe returns, the
// onData callback receives a full refreshed ordered snapshot (never a diff)
// for the initial state and again after every change to the underlying table,
// until Unsubscribe is called.
type Subscription struct {
	cancel context.CancelFunc
	done   chan struct{}

	// mu serializes callback delivery against Unsubscribe: once Unsubscribe
	// has returned, no callback is running or will run.
	mu     sync.Mutex
	closed bool

	onData  func([]domain.Visualization)
	onError func(error)
}

// Unsubscribe stops the watcher and waits for any in-flight callback to
// finish. No callback is delivered after Unsubscribe returns. Safe to call
// multiple times.
func (s *Subscription) Unsubscribe() {
	s.cancel()

	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	<-s.done
}

func (s *Subscription) deliver(records []domain.Visualization) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.onData(records)
}

func (s *Subscription) deliverError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.onError(err)
}

// Subscribe starts a live-updating filtered/sorted/limited view of the
// gallery on a dedicated connection using LISTEN/NOTIFY. The first snapshot
// is delivered asynchronously right after Subscribe returns.
//
// The watcher stops when Unsubscribe is called or ctx is canceled. Store
// failures while watching are reported through onError; delivery then
// continues on the next notification rather than tearing the watcher down.
func (r *Repo) Subscribe(
	ctx context.Context,
	f domain.VisualizationFilter,
	onData func([]domain.Visualization),
	onError func(error),
) (*Subscription, error) {
	f = normalize(r.applyLimits(f))

	watchCtx, cancel := context.WithCancel(ctx)

	conn, err := r.pool.Acquire(watchCtx)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("acquire listen connection: %w: %v", domain.ErrStoreUnavailable, err)
	}

	if _, err := conn.Exec(watchCtx, "LISTEN "+notifyChannel); err != nil {
		conn.Release()
		cancel()
		return nil, fmt.Errorf("listen %s: %w: %v", notifyChannel, domain.ErrStoreUnavailable, err)
	}

	sub := &Subscription{
		cancel:  cancel,
		done:    make(chan struct{}),
		onData:  onData,
		onError: onError,
	}

	go func() {
		defer close(sub.done)
		defer conn.Release()

		refresh := func() {
			records, err := r.List(watchCtx, f)
			if err != nil {
				if watchCtx.Err() == nil {
					sub.deliverError(err)
				}
				return
			}
			sub.deliver(records)
		}

		// Initial snapshot, then one refresh per notification. Notifications
		// are fired per statement, so a rotation burst collapses into a few
		// refreshes at most.
		refresh()

		for {
			_, err := conn.Conn().WaitForNotification(watchCtx)
			if err != nil {
				if watchCtx.Err() != nil || errors.Is(err, context.Canceled) {
					return
				}
				slog.Warn("visualization watch interrupted", slog.String("error", err.Error()))
				sub.deliverError(fmt.Errorf("wait for notification: %w: %v", domain.ErrStoreUnavailable, err))
				return
			}
			refresh()
		}
	}()

	return sub, nil
}
