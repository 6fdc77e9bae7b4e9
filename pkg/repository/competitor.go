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

// CompetitorRepository handles competitor-related database operations
type CompetitorRepository struct {
	db *sqlx.DB
}

// NewCompetitorRepository creates a new competitor repository
func NewCompetitorRepository(db *sqlx.DB) *CompetitorRepository {
	return &CompetitorRepository{db: db}
}

type dbCompetitor struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Domain    string    `db:"domain"`
	CreatedAt time.Time `db:"created_at"`
}

// Create inserts a new competitor, assigning identity and creation time
func (r *CompetitorRepository) Create(ctx context.Context, c *domain.Competitor) error {
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO competitors (id, name, domain, created_at) VALUES (?, ?, ?, ?)",
		c.ID, c.Name, c.Domain, c.CreatedAt)
	if err != nil {
		if isConstraintError(err) {
			return fmt.Errorf("create competitor: %w: %w", ErrConstraint, err)
		}
		return fmt.Errorf("create competitor: %w", err)
	}
	return nil
}

// Get retrieves a competitor by ID
func (r *CompetitorRepository) Get(ctx context.Context, id string) (*domain.Competitor, error) {
	var row dbCompetitor
	err := r.db.GetContext(ctx, &row, "SELECT * FROM competitors WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get competitor %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get competitor: %w", err)
	}
	c := domain.Competitor(row)
	return &c, nil
}

// List retrieves all competitors ordered by creation time
func (r *CompetitorRepository) List(ctx context.Context) ([]domain.Competitor, error) {
	var rows []dbCompetitor
	err := r.db.SelectContext(ctx, &rows, "SELECT * FROM competitors ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("list competitors: %w", err)
	}

	res := make([]domain.Competitor, len(rows))
	for i, row := range rows {
		res[i] = domain.Competitor(row)
	}
	return res, nil
}

// Delete removes a competitor. Fails with ErrConstraint if any signal or
// monitored page still references it, and ErrNotFound if it doesn't exist.
func (r *CompetitorRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM competitors WHERE id = ?", id)
	if err != nil {
		if isConstraintError(err) {
			return fmt.Errorf("delete competitor %s: %w: %w", id, ErrConstraint, err)
		}
		return fmt.Errorf("delete competitor: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete competitor rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete competitor %s: %w", id, ErrNotFound)
	}
	return nil
}
