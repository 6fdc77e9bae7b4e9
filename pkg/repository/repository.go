package repository

import (
	"context"
	"embed"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure Go SQLite driver
)

//go:embed schema.sql
var schemaFS embed.FS

// Config represents database configuration
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Repositories contains all repository instances sharing one connection pool
type Repositories struct {
	Competitor *CompetitorRepository
	Keyword    *KeywordRepository
	Page       *PageRepository
	Signal     *SignalRepository
	Event      *EventRepository
	DB         *sqlx.DB
}

// NewRepositories creates all repositories with a shared database connection
func NewRepositories(ctx context.Context, cfg Config) (*Repositories, error) {
	if cfg.DSN == "" {
		cfg.DSN = "file:intelscope.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	cfg.DSN = withConnectionPragmas(cfg.DSN)

	db, err := sqlx.Open("sqlite", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// configure connection pool
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := initSchema(ctx, db); err != nil {
		return nil, fmt.Errorf("init schema: %w", err)
	}

	repos := &Repositories{
		Competitor: NewCompetitorRepository(db),
		Keyword:    NewKeywordRepository(db),
		Page:       NewPageRepository(db),
		Signal:     NewSignalRepository(db),
		Event:      NewEventRepository(db),
		DB:         db,
	}

	return repos, nil
}

// Close closes the database connection
func (r *Repositories) Close() error {
	return r.DB.Close()
}

// Ping verifies the database connection
func (r *Repositories) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

// withConnectionPragmas appends driver-level pragmas to the DSN so every
// connection in the pool gets them. PRAGMA statements executed through the
// pool apply to a single connection only, which silently disables foreign
// key enforcement on the rest.
func withConnectionPragmas(dsn string) string {
	pragmas := []string{
		"_pragma=foreign_keys(1)",
		"_pragma=journal_mode(WAL)",
		"_pragma=synchronous(NORMAL)",
		"_pragma=temp_store(MEMORY)",
		"_pragma=busy_timeout(5000)", // 5 second timeout for locks
	}

	res := dsn
	for _, p := range pragmas {
		name := p[:strings.Index(p, "(")]
		if strings.Contains(res, name) {
			continue // caller-provided value wins
		}
		sep := "?"
		if strings.Contains(res, "?") {
			sep = "&"
		}
		res += sep + p
	}
	return res
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sqlx.DB) error {
	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}

	if _, err := db.ExecContext(ctx, string(schema)); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}

	return nil
}
