package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/intelscope/pkg/domain"
)

// SignalRepository handles intel signal database operations. Signals are
// append-only; there is no update or delete path.
type SignalRepository struct {
	db *sqlx.DB
}

// NewSignalRepository creates a new signal repository
func NewSignalRepository(db *sqlx.DB) *SignalRepository {
	return &SignalRepository{db: db}
}

type dbSignal struct {
	ID             string         `db:"id"`
	Title          string         `db:"title"`
	RawContent     string         `db:"raw_content"`
	SourceURL      string         `db:"source_url"`
	SourcePlatform string         `db:"source_platform"`
	SignalType     string         `db:"signal_type"`
	CompetitorID   sql.NullString `db:"competitor_id"`
	KeywordID      sql.NullString `db:"keyword_id"`
	CreatedAt      time.Time      `db:"created_at"`
}

func (s *dbSignal) toDomain() domain.Signal {
	res := domain.Signal{
		ID:             s.ID,
		Title:          s.Title,
		RawContent:     s.RawContent,
		SourceURL:      s.SourceURL,
		SourcePlatform: s.SourcePlatform,
		SignalType:     s.SignalType,
		CreatedAt:      s.CreatedAt,
	}
	if s.CompetitorID.Valid {
		res.CompetitorID = s.CompetitorID.String
	}
	if s.KeywordID.Valid {
		res.KeywordID = s.KeywordID.String
	}
	return res
}

// Create inserts a new signal, assigning identity and creation time.
// Foreign key violations on the optional references come back wrapped in
// ErrConstraint so callers can tell them apart from transient failures.
func (r *SignalRepository) Create(ctx context.Context, s *domain.Signal) error {
	s.ID = uuid.NewString()
	s.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO intel_items (id, title, raw_content, source_url, source_platform, signal_type,
			competitor_id, keyword_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Title, s.RawContent, s.SourceURL, s.SourcePlatform, s.SignalType,
		nullableString(s.CompetitorID), nullableString(s.KeywordID), s.CreatedAt)
	if err != nil {
		if isConstraintError(err) {
			return fmt.Errorf("create signal: %w: %w", ErrConstraint, err)
		}
		return fmt.Errorf("create signal: %w", err)
	}
	return nil
}

// Get retrieves a signal by ID
func (r *SignalRepository) Get(ctx context.Context, id string) (*domain.Signal, error) {
	var row dbSignal
	err := r.db.GetContext(ctx, &row, "SELECT * FROM intel_items WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get signal %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get signal: %w", err)
	}
	res := row.toDomain()
	return &res, nil
}

// List retrieves signals matching the filter, newest first
func (r *SignalRepository) List(ctx context.Context, filter domain.SignalFilter) ([]domain.Signal, error) {
	query := "SELECT * FROM intel_items WHERE 1=1"
	var args []any

	if !filter.Since.IsZero() {
		query += " AND created_at >= ?"
		args = append(args, filter.Since.UTC())
	}
	switch filter.Scope {
	case domain.ScopeCompanies:
		query += " AND competitor_id IS NOT NULL"
	case domain.ScopeKeywords:
		query += " AND keyword_id IS NOT NULL"
	}
	query += " ORDER BY created_at DESC, id DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	var rows []dbSignal
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list signals: %w", err)
	}

	res := make([]domain.Signal, len(rows))
	for i := range rows {
		res[i] = rows[i].toDomain()
	}
	return res, nil
}

type dbExportRow struct {
	ID               string         `db:"id"`
	Title            string         `db:"title"`
	RawContent       string         `db:"raw_content"`
	SourceURL        string         `db:"source_url"`
	SourcePlatform   string         `db:"source_platform"`
	SignalType       string         `db:"signal_type"`
	CreatedAt        time.Time      `db:"created_at"`
	CompetitorName   sql.NullString `db:"competitor_name"`
	CompetitorDomain sql.NullString `db:"competitor_domain"`
	KeywordTerm      sql.NullString `db:"keyword_term"`
	KeywordCategory  sql.NullString `db:"keyword_category"`
}

// ExportRows retrieves signals matching the filter denormalized with the
// referenced competitor and keyword. Left-join semantics: a missing
// reference yields nil fields, never drops the row.
func (r *SignalRepository) ExportRows(ctx context.Context, filter domain.SignalFilter) ([]domain.ExportRow, error) {
	query := `
		SELECT i.id, i.title, i.raw_content, i.source_url, i.source_platform, i.signal_type, i.created_at,
			c.name AS competitor_name, c.domain AS competitor_domain,
			k.term AS keyword_term, k.category AS keyword_category
		FROM intel_items i
		LEFT JOIN competitors c ON i.competitor_id = c.id
		LEFT JOIN keywords k ON i.keyword_id = k.id
		WHERE 1=1`
	var args []any

	if !filter.Since.IsZero() {
		query += " AND i.created_at >= ?"
		args = append(args, filter.Since.UTC())
	}
	switch filter.Scope {
	case domain.ScopeCompanies:
		query += " AND i.competitor_id IS NOT NULL"
	case domain.ScopeKeywords:
		query += " AND i.keyword_id IS NOT NULL"
	}
	query += " ORDER BY i.created_at DESC, i.id DESC"

	var rows []dbExportRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("export signals: %w", err)
	}

	res := make([]domain.ExportRow, len(rows))
	for i, row := range rows {
		res[i] = domain.ExportRow{
			ID:             row.ID,
			Title:          row.Title,
			RawContent:     row.RawContent,
			SourceURL:      row.SourceURL,
			SourcePlatform: row.SourcePlatform,
			SignalType:     row.SignalType,
			CreatedAt:      row.CreatedAt,
		}
		if row.CompetitorName.Valid {
			res[i].CompetitorName = &rows[i].CompetitorName.String
			res[i].CompetitorDomain = &rows[i].CompetitorDomain.String
		}
		if row.KeywordTerm.Valid {
			res[i].KeywordTerm = &rows[i].KeywordTerm.String
			res[i].KeywordCategory = &rows[i].KeywordCategory.String
		}
	}
	return res, nil
}
