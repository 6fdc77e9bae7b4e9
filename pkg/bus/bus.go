// Package bus implements a durable named-event channel backed by the
// events table of the shared SQLite store. Published events survive
// process restarts and are delivered to the registered consumer at least
// once. A delivery that fails parks the event for operator replay instead
// of requeueing it forever.
package bus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/intelscope/pkg/domain"
)

// Handler consumes a delivered event payload. A returned error parks the
// event as failed; the handler owns any internal retrying.
type Handler func(ctx context.Context, payload []byte) error

// EventStore is the durable backing of the bus
type EventStore interface {
	Create(ctx context.Context, name string, payload []byte) (string, error)
	ClaimPending(ctx context.Context, name string, limit int) ([]domain.Event, error)
	MarkDone(ctx context.Context, id string, attempts int) error
	MarkFailed(ctx context.Context, id string, attempts int, lastError string) error
	ResetInflight(ctx context.Context) (int64, error)
}

// Config holds bus tuning parameters
type Config struct {
	Workers      int           // concurrent deliveries, default 4
	PollInterval time.Duration // idle poll interval, default 500ms
	BatchSize    int           // events claimed per poll, default 20
}

// Bus dispatches durable events to registered handlers
type Bus struct {
	store    EventStore
	handlers map[string]Handler
	workers  int
	poll     time.Duration
	batch    int
	wake     chan struct{}
}

// New creates a bus on top of the given event store
func New(store EventStore, cfg Config) *Bus {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 500 * time.Millisecond
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 20
	}

	return &Bus{
		store:    store,
		handlers: map[string]Handler{},
		workers:  cfg.Workers,
		poll:     cfg.PollInterval,
		batch:    cfg.BatchSize,
		wake:     make(chan struct{}, 1),
	}
}

// Subscribe registers the consumer for an event name. Must be called
// before Run; one consumer per name.
func (b *Bus) Subscribe(name string, h Handler) error {
	if _, ok := b.handlers[name]; ok {
		return fmt.Errorf("handler for %q already registered", name)
	}
	b.handlers[name] = h
	return nil
}

// Publish durably records an event for asynchronous delivery. It returns
// once the event is persisted, before any processing happens.
func (b *Bus) Publish(ctx context.Context, name string, payload []byte) error {
	id, err := b.store.Create(ctx, name, payload)
	if err != nil {
		return fmt.Errorf("publish %s: %w", name, err)
	}
	lgr.Printf("[DEBUG] published event %s %s", name, id)

	// nudge the dispatcher, the poll ticker catches it anyway
	select {
	case b.wake <- struct{}{}:
	default:
	}
	return nil
}

// Run recovers interrupted events and dispatches until the context is
// canceled. Blocks; returns nil on graceful shutdown.
func (b *Bus) Run(ctx context.Context) error {
	recovered, err := b.store.ResetInflight(ctx)
	if err != nil {
		return fmt.Errorf("recover inflight events: %w", err)
	}
	if recovered > 0 {
		lgr.Printf("[INFO] recovered %d interrupted events", recovered)
	}
	lgr.Printf("[INFO] event bus started, %d workers, poll interval %v", b.workers, b.poll)

	ticker := time.NewTicker(b.poll)
	defer ticker.Stop()

	for {
		delivered := b.dispatchOnce(ctx)
		if ctx.Err() != nil {
			lgr.Printf("[INFO] event bus stopped")
			return nil
		}
		if delivered > 0 {
			continue // drain the backlog before going idle
		}

		select {
		case <-ctx.Done():
			lgr.Printf("[INFO] event bus stopped")
			return nil
		case <-b.wake:
		case <-ticker.C:
		}
	}
}

// dispatchOnce claims one batch per subscribed event name and delivers
// the claimed events concurrently. Returns the number of deliveries.
func (b *Bus) dispatchOnce(ctx context.Context) int {
	total := 0
	for name, h := range b.handlers {
		events, err := b.store.ClaimPending(ctx, name, b.batch)
		if err != nil {
			if ctx.Err() == nil {
				lgr.Printf("[WARN] claim pending %s failed: %v", name, err)
			}
			continue
		}
		if len(events) == 0 {
			continue
		}

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(b.workers)
		for _, ev := range events {
			g.Go(func() error {
				b.deliver(gctx, h, ev)
				return nil
			})
		}
		g.Wait() //nolint:errcheck // deliver never returns an error
		total += len(events)
	}
	return total
}

// deliver invokes the handler for one event and records the outcome. An
// event interrupted by shutdown stays inflight and is recovered on the
// next start.
func (b *Bus) deliver(ctx context.Context, h Handler, ev domain.Event) {
	attempts := ev.Attempts + 1

	if err := h(ctx, ev.Payload); err != nil {
		if ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			lgr.Printf("[WARN] delivery of %s %s interrupted: %v", ev.Name, ev.ID, err)
			return
		}
		lgr.Printf("[WARN] event %s %s failed after delivery %d: %v", ev.Name, ev.ID, attempts, err)
		if markErr := b.store.MarkFailed(ctx, ev.ID, attempts, err.Error()); markErr != nil {
			lgr.Printf("[ERROR] can't park event %s: %v", ev.ID, markErr)
		}
		return
	}

	if err := b.store.MarkDone(ctx, ev.ID, attempts); err != nil {
		// the work is done but the checkpoint isn't, redelivery will
		// re-run the handler, this is the at-least-once tradeoff
		lgr.Printf("[ERROR] can't mark event %s done: %v", ev.ID, err)
	}
}
