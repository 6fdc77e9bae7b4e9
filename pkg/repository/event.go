package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/intelscope/pkg/domain"
)

// EventRepository persists durable bus events. An event stays in the
// table until its consumer succeeds (done) or gives up (failed), so a
// restart between publish and consumption loses nothing.
type EventRepository struct {
	db *sqlx.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

type dbEvent struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Payload   []byte    `db:"payload"`
	Status    string    `db:"status"`
	Attempts  int       `db:"attempts"`
	LastError string    `db:"last_error"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (e *dbEvent) toDomain() domain.Event {
	return domain.Event{
		ID:        e.ID,
		Name:      e.Name,
		Payload:   e.Payload,
		Status:    domain.EventStatus(e.Status),
		Attempts:  e.Attempts,
		LastError: e.LastError,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// Create durably records a new pending event and returns its ID
func (r *EventRepository) Create(ctx context.Context, name string, payload []byte) (string, error) {
	id := uuid.NewString()
	now := time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO events (id, name, payload, status, attempts, last_error, created_at, updated_at)
		VALUES (?, ?, ?, ?, 0, '', ?, ?)`,
		id, name, payload, domain.EventPending, now, now)
	if err != nil {
		return "", fmt.Errorf("create event: %w", err)
	}
	return id, nil
}

// ClaimPending atomically moves up to limit pending events with the given
// name to inflight and returns them in publish order
func (r *EventRepository) ClaimPending(ctx context.Context, name string, limit int) ([]domain.Event, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin claim tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	var rows []dbEvent
	err = tx.SelectContext(ctx, &rows, `
		SELECT * FROM events WHERE status = ? AND name = ?
		ORDER BY created_at, id LIMIT ?`,
		domain.EventPending, name, limit)
	if err != nil {
		return nil, fmt.Errorf("select pending events: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}

	query, args, err := sqlx.In("UPDATE events SET status = ?, updated_at = ? WHERE id IN (?)",
		domain.EventInflight, time.Now().UTC(), ids)
	if err != nil {
		return nil, fmt.Errorf("build claim query: %w", err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("claim events: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit claim tx: %w", err)
	}

	res := make([]domain.Event, len(rows))
	for i := range rows {
		res[i] = rows[i].toDomain()
		res[i].Status = domain.EventInflight
	}
	return res, nil
}

// MarkDone records successful consumption of an event
func (r *EventRepository) MarkDone(ctx context.Context, id string, attempts int) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE events SET status = ?, attempts = ?, last_error = '', updated_at = ? WHERE id = ?",
		domain.EventDone, attempts, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("mark event done: %w", err)
	}
	return nil
}

// MarkFailed parks an event after its consumer gave up. The event is not
// requeued automatically; an operator can replay it.
func (r *EventRepository) MarkFailed(ctx context.Context, id string, attempts int, lastError string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE events SET status = ?, attempts = ?, last_error = ?, updated_at = ? WHERE id = ?",
		domain.EventFailed, attempts, lastError, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("mark event failed: %w", err)
	}
	return nil
}

// ResetInflight moves inflight events back to pending. Called on startup
// so events interrupted by a crash get redelivered, which is where the
// at-least-once guarantee comes from.
func (r *EventRepository) ResetInflight(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE events SET status = ?, updated_at = ? WHERE status = ?",
		domain.EventPending, time.Now().UTC(), domain.EventInflight)
	if err != nil {
		return 0, fmt.Errorf("reset inflight events: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reset inflight rows affected: %w", err)
	}
	return affected, nil
}

// ListFailed retrieves parked events for operator inspection, oldest first
func (r *EventRepository) ListFailed(ctx context.Context, limit int) ([]domain.Event, error) {
	var rows []dbEvent
	err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM events WHERE status = ? ORDER BY created_at, id LIMIT ?",
		domain.EventFailed, limit)
	if err != nil {
		return nil, fmt.Errorf("list failed events: %w", err)
	}

	res := make([]domain.Event, len(rows))
	for i := range rows {
		res[i] = rows[i].toDomain()
	}
	return res, nil
}

// Replay moves a parked event back to pending for redelivery
func (r *EventRepository) Replay(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE events SET status = ?, last_error = '', updated_at = ? WHERE id = ? AND status = ?",
		domain.EventPending, time.Now().UTC(), id, domain.EventFailed)
	if err != nil {
		return fmt.Errorf("replay event: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("replay event rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("replay event %s: %w", id, ErrNotFound)
	}
	return nil
}
