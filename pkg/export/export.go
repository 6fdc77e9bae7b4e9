// Package export implements the read side: scope-filtered retrieval of
// signals over a trailing window and their serialization to JSON-ready
// rows or delimited text.
package export

import (
	"context"
	"log"
	"time"

	"github.com/umputun/intelscope/pkg/domain"
)

// Store reads denormalized signal rows
type Store interface {
	ExportRows(ctx context.Context, filter domain.SignalFilter) ([]domain.ExportRow, error)
}

// Engine retrieves signals for export. Store failures degrade to an
// empty result so the caller keeps rendering; this is deliberate.
type Engine struct {
	store  Store
	window time.Duration
	nowFn  func() time.Time
}

// New creates an export engine with the given trailing window,
// defaulting to 5 days
func New(store Store, window time.Duration) *Engine {
	if window <= 0 {
		window = 5 * 24 * time.Hour
	}
	return &Engine{store: store, window: window, nowFn: time.Now}
}

// Rows returns signals created within the trailing window, narrowed by
// scope. Never fails: a store error yields an empty slice.
func (e *Engine) Rows(ctx context.Context, scope domain.Scope) []domain.ExportRow {
	filter := domain.SignalFilter{
		Since: e.nowFn().Add(-e.window),
		Scope: scope,
	}

	rows, err := e.store.ExportRows(ctx, filter)
	if err != nil {
		log.Printf("[WARN] export query failed, degrading to empty result: %v", err)
		return []domain.ExportRow{}
	}
	if rows == nil {
		rows = []domain.ExportRow{} // serialize as [] rather than null
	}
	return rows
}
