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

// KeywordRepository handles keyword-related database operations
type KeywordRepository struct {
	db *sqlx.DB
}

// NewKeywordRepository creates a new keyword repository
func NewKeywordRepository(db *sqlx.DB) *KeywordRepository {
	return &KeywordRepository{db: db}
}

type dbKeyword struct {
	ID        string    `db:"id"`
	Term      string    `db:"term"`
	Category  string    `db:"category"`
	CreatedAt time.Time `db:"created_at"`
}

// Create inserts a new keyword, assigning identity and creation time
func (r *KeywordRepository) Create(ctx context.Context, k *domain.Keyword) error {
	k.ID = uuid.NewString()
	k.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO keywords (id, term, category, created_at) VALUES (?, ?, ?, ?)",
		k.ID, k.Term, k.Category, k.CreatedAt)
	if err != nil {
		if isConstraintError(err) {
			return fmt.Errorf("create keyword: %w: %w", ErrConstraint, err)
		}
		return fmt.Errorf("create keyword: %w", err)
	}
	return nil
}

// Get retrieves a keyword by ID
func (r *KeywordRepository) Get(ctx context.Context, id string) (*domain.Keyword, error) {
	var row dbKeyword
	err := r.db.GetContext(ctx, &row, "SELECT * FROM keywords WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get keyword %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get keyword: %w", err)
	}
	k := domain.Keyword(row)
	return &k, nil
}

// List retrieves all keywords ordered by creation time
func (r *KeywordRepository) List(ctx context.Context) ([]domain.Keyword, error) {
	var rows []dbKeyword
	err := r.db.SelectContext(ctx, &rows, "SELECT * FROM keywords ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("list keywords: %w", err)
	}

	res := make([]domain.Keyword, len(rows))
	for i, row := range rows {
		res[i] = domain.Keyword(row)
	}
	return res, nil
}

// Delete removes a keyword. Fails with ErrConstraint while signals still
// reference it, and ErrNotFound if it doesn't exist.
func (r *KeywordRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM keywords WHERE id = ?", id)
	if err != nil {
		if isConstraintError(err) {
			return fmt.Errorf("delete keyword %s: %w: %w", id, ErrConstraint, err)
		}
		return fmt.Errorf("delete keyword: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete keyword rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete keyword %s: %w", id, ErrNotFound)
	}
	return nil
}
