package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/intelscope/pkg/domain"
	"github.com/umputun/intelscope/pkg/repository"
)

type fakeSignalStore struct {
	calls   int
	errs    []error // error returned per call, nil past the end
	signals []domain.Signal
}

func (f *fakeSignalStore) Create(_ context.Context, s *domain.Signal) error {
	f.calls++
	if f.calls <= len(f.errs) && f.errs[f.calls-1] != nil {
		return f.errs[f.calls-1]
	}
	f.signals = append(f.signals, *s)
	return nil
}

type countingMetrics struct {
	processed, parked, retries int
}

func (m *countingMetrics) EventProcessed() { m.processed++ }
func (m *countingMetrics) EventParked()    { m.parked++ }
func (m *countingMetrics) InsertRetry()    { m.retries++ }

func validPayload(t *testing.T) []byte {
	t.Helper()
	payload, err := json.Marshal(domain.SignalEnvelope{
		Title:        "Competitor launches new product",
		Content:      "<p>announcement</p>",
		URL:          "https://example.com/launch",
		Platform:     domain.PlatformBlog,
		SignalType:   domain.SignalProductLaunch,
		CompetitorID: "comp-1",
	})
	require.NoError(t, err)
	return payload
}

func testRetry() RetryFunc {
	return NewRetryFunc(3, time.Millisecond, 5*time.Millisecond)
}

func TestProcessor_Handle(t *testing.T) {
	t.Run("valid payload stored on first attempt", func(t *testing.T) {
		store := &fakeSignalStore{}
		m := &countingMetrics{}
		p := New(store, testRetry(), m)

		err := p.Handle(context.Background(), validPayload(t))
		require.NoError(t, err)
		require.Len(t, store.signals, 1)

		sig := store.signals[0]
		assert.Equal(t, "Competitor launches new product", sig.Title)
		assert.Equal(t, "<p>announcement</p>", sig.RawContent)
		assert.Equal(t, "https://example.com/launch", sig.SourceURL)
		assert.Equal(t, domain.PlatformBlog, sig.SourcePlatform)
		assert.Equal(t, domain.SignalProductLaunch, sig.SignalType)
		assert.Equal(t, "comp-1", sig.CompetitorID)
		assert.Empty(t, sig.KeywordID)

		assert.Equal(t, 1, m.processed)
		assert.Equal(t, 0, m.parked)
		assert.Equal(t, 0, m.retries)
	})

	t.Run("transient failures retried until success", func(t *testing.T) {
		locked := errors.New("database is locked")
		store := &fakeSignalStore{errs: []error{locked, locked}}
		m := &countingMetrics{}
		p := New(store, testRetry(), m)

		err := p.Handle(context.Background(), validPayload(t))
		require.NoError(t, err)
		assert.Equal(t, 3, store.calls)
		assert.Len(t, store.signals, 1)
		assert.Equal(t, 2, m.retries)
		assert.Equal(t, 1, m.processed)
	})

	t.Run("attempts capped at three", func(t *testing.T) {
		locked := errors.New("database is locked")
		store := &fakeSignalStore{errs: []error{locked, locked, locked, locked, locked}}
		m := &countingMetrics{}
		p := New(store, testRetry(), m)

		err := p.Handle(context.Background(), validPayload(t))
		require.Error(t, err)
		assert.Equal(t, 3, store.calls, "a fourth transient failure must never trigger a fourth attempt")
		assert.Empty(t, store.signals)
		assert.Equal(t, 1, m.parked)
		assert.Equal(t, 0, m.processed)
	})

	t.Run("constraint violation is terminal", func(t *testing.T) {
		constraintErr := fmt.Errorf("insert signal: %w: FOREIGN KEY constraint failed", repository.ErrConstraint)
		store := &fakeSignalStore{errs: []error{constraintErr, constraintErr, constraintErr}}
		m := &countingMetrics{}
		p := New(store, testRetry(), m)

		err := p.Handle(context.Background(), validPayload(t))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTerminal)
		assert.Equal(t, 1, store.calls, "constraint failure cannot succeed on retry")
		assert.Equal(t, 1, m.parked)
	})

	t.Run("malformed payload is terminal without storage", func(t *testing.T) {
		store := &fakeSignalStore{}
		m := &countingMetrics{}
		p := New(store, testRetry(), m)

		err := p.Handle(context.Background(), []byte("{not json"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTerminal)
		assert.Equal(t, 0, store.calls)
		assert.Equal(t, 1, m.parked)
	})

	t.Run("missing required field is terminal without storage", func(t *testing.T) {
		payload, err := json.Marshal(domain.SignalEnvelope{
			Title:    "no platform",
			Content:  "text",
			URL:      "https://example.com",
			Platform: "", SignalType: domain.SignalHiring,
		})
		require.NoError(t, err)

		store := &fakeSignalStore{}
		m := &countingMetrics{}
		p := New(store, testRetry(), m)

		err = p.Handle(context.Background(), payload)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTerminal)
		assert.Equal(t, 0, store.calls)
	})

	t.Run("nil metrics tolerated", func(t *testing.T) {
		store := &fakeSignalStore{}
		p := New(store, testRetry(), nil)
		require.NoError(t, p.Handle(context.Background(), validPayload(t)))
	})
}
