package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/intelscope/pkg/domain"
)

// PageRepository handles monitored page database operations. Pages are
// read and checked by the external page-diffing job; this repository only
// records its results.
type PageRepository struct {
	db *sqlx.DB
}

// NewPageRepository creates a new monitored page repository
func NewPageRepository(db *sqlx.DB) *PageRepository {
	return &PageRepository{db: db}
}

type dbPage struct {
	ID              string         `db:"id"`
	URL             string         `db:"url"`
	Name            string         `db:"name"`
	CompetitorID    sql.NullString `db:"competitor_id"`
	SignalType      string         `db:"signal_type"`
	LastContentHash sql.NullString `db:"last_content_hash"`
	LastCheckedAt   sql.NullTime   `db:"last_checked_at"`
	Enabled         bool           `db:"enabled"`
	CreatedAt       time.Time      `db:"created_at"`
}

func (p *dbPage) toDomain() domain.MonitoredPage {
	res := domain.MonitoredPage{
		ID:         p.ID,
		URL:        p.URL,
		Name:       p.Name,
		SignalType: p.SignalType,
		Enabled:    p.Enabled,
		CreatedAt:  p.CreatedAt,
	}
	if p.CompetitorID.Valid {
		res.CompetitorID = p.CompetitorID.String
	}
	if p.LastContentHash.Valid {
		res.LastContentHash = p.LastContentHash.String
	}
	if p.LastCheckedAt.Valid {
		t := p.LastCheckedAt.Time
		res.LastCheckedAt = &t
	}
	return res
}

// Create inserts a new monitored page, assigning identity and creation time
func (r *PageRepository) Create(ctx context.Context, p *domain.MonitoredPage) error {
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO monitored_pages (id, url, name, competitor_id, signal_type, enabled, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.URL, p.Name, nullableString(p.CompetitorID), p.SignalType, p.Enabled, p.CreatedAt)
	if err != nil {
		if isConstraintError(err) {
			return fmt.Errorf("create monitored page: %w: %w", ErrConstraint, err)
		}
		return fmt.Errorf("create monitored page: %w", err)
	}
	return nil
}

// List retrieves all monitored pages ordered by creation time
func (r *PageRepository) List(ctx context.Context) ([]domain.MonitoredPage, error) {
	var rows []dbPage
	err := r.db.SelectContext(ctx, &rows, "SELECT * FROM monitored_pages ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("list monitored pages: %w", err)
	}

	res := make([]domain.MonitoredPage, len(rows))
	for i := range rows {
		res[i] = rows[i].toDomain()
	}
	return res, nil
}

// UpdateCheckResult records the outcome of an external page check
func (r *PageRepository) UpdateCheckResult(ctx context.Context, id, contentHash string, checkedAt time.Time) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE monitored_pages SET last_content_hash = ?, last_checked_at = ? WHERE id = ?",
		contentHash, checkedAt.UTC(), id)
	if err != nil {
		return fmt.Errorf("update page check result: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update page check result rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update page %s: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes a monitored page
func (r *PageRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM monitored_pages WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete monitored page: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete monitored page rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete monitored page %s: %w", id, ErrNotFound)
	}
	return nil
}

// nullableString converts an empty string to a NULL database value,
// keeping unset weak references out of foreign key checks
func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
