// Package processor implements the bus consumer that turns accepted
// webhook submissions into stored signals. The storage write is a single
// checkpointed step retried as a whole under a bounded backoff policy.
package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"

	"github.com/umputun/intelscope/pkg/domain"
	"github.com/umputun/intelscope/pkg/repository"
)

// ErrTerminal marks failures a retry cannot fix: malformed payloads and
// constraint violations. The retry policy stops on it immediately.
var ErrTerminal = errors.New("terminal failure")

// SignalStore persists signals
type SignalStore interface {
	Create(ctx context.Context, s *domain.Signal) error
}

// RetryFunc runs op under a bounded retry policy, re-executing the whole
// step on transient failures
type RetryFunc func(ctx context.Context, op func() error) error

// Metrics records processing outcomes
type Metrics interface {
	EventProcessed()
	EventParked()
	InsertRetry()
}

// NewRetryFunc builds the standard retry policy: attempts total tries
// with exponential backoff between them, stopping early on ErrTerminal.
func NewRetryFunc(attempts int, initialDelay, maxDelay time.Duration) RetryFunc {
	return func(ctx context.Context, op func() error) error {
		retrier := repeater.NewBackoff(attempts, initialDelay, repeater.WithMaxDelay(maxDelay))
		return retrier.Do(ctx, op, ErrTerminal)
	}
}

// Processor consumes intel.webhook.received events
type Processor struct {
	store   SignalStore
	retry   RetryFunc
	metrics Metrics
}

// New creates a processor with the given store and retry policy
func New(store SignalStore, retry RetryFunc, m Metrics) *Processor {
	if m == nil {
		m = noopMetrics{}
	}
	return &Processor{store: store, retry: retry, metrics: m}
}

// Handle processes one event payload. It re-validates required fields
// beyond the receiver's check, then inserts the signal under the retry
// policy. A returned error parks the event on the bus.
func (p *Processor) Handle(ctx context.Context, payload []byte) error {
	var env domain.SignalEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		p.metrics.EventParked()
		return fmt.Errorf("%w: decode payload: %w", ErrTerminal, err)
	}
	if err := env.Validate(); err != nil {
		p.metrics.EventParked()
		return fmt.Errorf("%w: %w", ErrTerminal, err)
	}

	signal := domain.Signal{
		Title:          env.Title,
		RawContent:     env.Content,
		SourceURL:      env.URL,
		SourcePlatform: env.Platform,
		SignalType:     env.SignalType,
		CompetitorID:   env.CompetitorID,
		KeywordID:      env.KeywordID,
	}

	// the insert is the checkpointed step: identity and timestamp are
	// regenerated on every attempt, so a failure reported after a durable
	// write can produce a duplicate row on retry. Accepted at-least-once
	// tradeoff, no dedup key in the schema.
	attempt := 0
	err := p.retry(ctx, func() error {
		attempt++
		if attempt > 1 {
			p.metrics.InsertRetry()
		}
		if err := p.store.Create(ctx, &signal); err != nil {
			if errors.Is(err, repository.ErrConstraint) {
				return fmt.Errorf("%w: %w", ErrTerminal, err)
			}
			return err
		}
		return nil
	})
	if err != nil {
		if ctx.Err() == nil {
			p.metrics.EventParked()
		}
		return fmt.Errorf("store signal after %d attempts: %w", attempt, err)
	}

	p.metrics.EventProcessed()
	lgr.Printf("[INFO] stored signal %s (%s/%s) in %d attempts", signal.ID, signal.SourcePlatform, signal.SignalType, attempt)
	return nil
}

type noopMetrics struct{}

func (noopMetrics) EventProcessed() {}
func (noopMetrics) EventParked()    {}
func (noopMetrics) InsertRetry()    {}
