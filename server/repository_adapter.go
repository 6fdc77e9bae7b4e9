package server

import (
	"context"
	"time"

	"github.com/umputun/intelscope/pkg/domain"
	"github.com/umputun/intelscope/pkg/repository"
)

// RepositoryAdapter bridges the repository layer to the server Store
// interface
type RepositoryAdapter struct {
	repos *repository.Repositories
}

// NewRepositoryAdapter creates adapter for repositories
func NewRepositoryAdapter(repos *repository.Repositories) *RepositoryAdapter {
	return &RepositoryAdapter{repos: repos}
}

// CreateCompetitor adds a competitor
func (a *RepositoryAdapter) CreateCompetitor(ctx context.Context, c *domain.Competitor) error {
	return a.repos.Competitor.Create(ctx, c)
}

// ListCompetitors returns all competitors
func (a *RepositoryAdapter) ListCompetitors(ctx context.Context) ([]domain.Competitor, error) {
	return a.repos.Competitor.List(ctx)
}

// DeleteCompetitor removes a competitor
func (a *RepositoryAdapter) DeleteCompetitor(ctx context.Context, id string) error {
	return a.repos.Competitor.Delete(ctx, id)
}

// CreateKeyword adds a keyword
func (a *RepositoryAdapter) CreateKeyword(ctx context.Context, k *domain.Keyword) error {
	return a.repos.Keyword.Create(ctx, k)
}

// ListKeywords returns all keywords
func (a *RepositoryAdapter) ListKeywords(ctx context.Context) ([]domain.Keyword, error) {
	return a.repos.Keyword.List(ctx)
}

// DeleteKeyword removes a keyword
func (a *RepositoryAdapter) DeleteKeyword(ctx context.Context, id string) error {
	return a.repos.Keyword.Delete(ctx, id)
}

// CreatePage adds a monitored page
func (a *RepositoryAdapter) CreatePage(ctx context.Context, p *domain.MonitoredPage) error {
	return a.repos.Page.Create(ctx, p)
}

// ListPages returns all monitored pages
func (a *RepositoryAdapter) ListPages(ctx context.Context) ([]domain.MonitoredPage, error) {
	return a.repos.Page.List(ctx)
}

// UpdatePageCheck records the result of an external page check
func (a *RepositoryAdapter) UpdatePageCheck(ctx context.Context, id, contentHash string, checkedAt time.Time) error {
	return a.repos.Page.UpdateCheckResult(ctx, id, contentHash, checkedAt)
}

// DeletePage removes a monitored page
func (a *RepositoryAdapter) DeletePage(ctx context.Context, id string) error {
	return a.repos.Page.Delete(ctx, id)
}

// ListSignals returns stored signals per filter
func (a *RepositoryAdapter) ListSignals(ctx context.Context, filter domain.SignalFilter) ([]domain.Signal, error) {
	return a.repos.Signal.List(ctx, filter)
}

// ListFailedEvents returns parked events
func (a *RepositoryAdapter) ListFailedEvents(ctx context.Context, limit int) ([]domain.Event, error) {
	return a.repos.Event.ListFailed(ctx, limit)
}

// ReplayEvent requeues a parked event
func (a *RepositoryAdapter) ReplayEvent(ctx context.Context, id string) error {
	return a.repos.Event.Replay(ctx, id)
}
