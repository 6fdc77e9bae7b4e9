package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/intelscope/pkg/domain"
	"github.com/umputun/intelscope/pkg/repository"
	"github.com/umputun/intelscope/server/mocks"
)

func TestListSignalsHandler(t *testing.T) {
	deps := testDeps()
	store := &mocks.StoreMock{
		ListSignalsFunc: func(ctx context.Context, filter domain.SignalFilter) ([]domain.Signal, error) {
			return []domain.Signal{{
				ID: "sig-1", Title: "t", RawContent: `<script>x</script><p>safe</p>`,
				SourceURL: "https://example.com", SourcePlatform: domain.PlatformBlog,
				SignalType: domain.SignalHiring, CreatedAt: time.Now().UTC(),
			}}, nil
		},
	}
	deps.Store = store
	deps.Sanitizer = &mocks.SanitizerMock{
		CleanFunc: func(html string) string { return "<p>safe</p>" },
	}
	s := New(deps, "test", false)

	rec := doRequest(s, httptest.NewRequest("GET", "/api/v1/signals?limit=5", http.NoBody))
	require.Equal(t, http.StatusOK, rec.Code)

	var res []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res, 1)
	assert.Equal(t, "<p>safe</p>", res[0]["content"], "content passes through the sanitizer")

	calls := store.ListSignalsCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, 5, calls[0].Filter.Limit)
}

func TestCompetitorHandlers(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		deps := testDeps()
		store := &mocks.StoreMock{
			CreateCompetitorFunc: func(ctx context.Context, c *domain.Competitor) error {
				c.ID = "comp-1"
				c.CreatedAt = time.Now().UTC()
				return nil
			},
		}
		deps.Store = store
		s := New(deps, "test", false)

		req := httptest.NewRequest("POST", "/api/v1/competitors",
			strings.NewReader(`{"name":"Acme","domain":"acme.com"}`))
		rec := doRequest(s, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var res map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "comp-1", res["id"])
		assert.Equal(t, "Acme", res["name"])
	})

	t.Run("create missing fields", func(t *testing.T) {
		s := New(testDeps(), "test", false)
		req := httptest.NewRequest("POST", "/api/v1/competitors", strings.NewReader(`{"name":"Acme"}`))
		rec := doRequest(s, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("list", func(t *testing.T) {
		deps := testDeps()
		deps.Store = &mocks.StoreMock{
			ListCompetitorsFunc: func(ctx context.Context) ([]domain.Competitor, error) {
				return []domain.Competitor{{ID: "c1", Name: "Acme", Domain: "acme.com"}}, nil
			},
		}
		s := New(deps, "test", false)

		rec := doRequest(s, httptest.NewRequest("GET", "/api/v1/competitors", http.NoBody))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "acme.com")
	})

	t.Run("delete referenced conflicts", func(t *testing.T) {
		deps := testDeps()
		deps.Store = &mocks.StoreMock{
			DeleteCompetitorFunc: func(ctx context.Context, id string) error {
				return fmt.Errorf("delete competitor %s: %w", id, repository.ErrConstraint)
			},
		}
		s := New(deps, "test", false)

		rec := doRequest(s, httptest.NewRequest("DELETE", "/api/v1/competitors/c1", http.NoBody))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("delete missing", func(t *testing.T) {
		deps := testDeps()
		deps.Store = &mocks.StoreMock{
			DeleteCompetitorFunc: func(ctx context.Context, id string) error {
				return fmt.Errorf("delete competitor %s: %w", id, repository.ErrNotFound)
			},
		}
		s := New(deps, "test", false)

		rec := doRequest(s, httptest.NewRequest("DELETE", "/api/v1/competitors/c1", http.NoBody))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete ok", func(t *testing.T) {
		deps := testDeps()
		store := &mocks.StoreMock{
			DeleteCompetitorFunc: func(ctx context.Context, id string) error { return nil },
		}
		deps.Store = store
		s := New(deps, "test", false)

		rec := doRequest(s, httptest.NewRequest("DELETE", "/api/v1/competitors/c1", http.NoBody))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, store.DeleteCompetitorCalls(), 1)
		assert.Equal(t, "c1", store.DeleteCompetitorCalls()[0].ID)
	})
}

func TestKeywordHandlers(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		deps := testDeps()
		deps.Store = &mocks.StoreMock{
			CreateKeywordFunc: func(ctx context.Context, k *domain.Keyword) error {
				k.ID = "kw-1"
				return nil
			},
		}
		s := New(deps, "test", false)

		req := httptest.NewRequest("POST", "/api/v1/keywords",
			strings.NewReader(`{"term":"serverless","category":"technology"}`))
		rec := doRequest(s, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "kw-1")
	})

	t.Run("delete referenced conflicts", func(t *testing.T) {
		deps := testDeps()
		deps.Store = &mocks.StoreMock{
			DeleteKeywordFunc: func(ctx context.Context, id string) error {
				return fmt.Errorf("delete keyword: %w", repository.ErrConstraint)
			},
		}
		s := New(deps, "test", false)

		rec := doRequest(s, httptest.NewRequest("DELETE", "/api/v1/keywords/kw-1", http.NoBody))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestPageHandlers(t *testing.T) {
	t.Run("create with unknown competitor", func(t *testing.T) {
		deps := testDeps()
		deps.Store = &mocks.StoreMock{
			CreatePageFunc: func(ctx context.Context, p *domain.MonitoredPage) error {
				return fmt.Errorf("create monitored page: %w", repository.ErrConstraint)
			},
		}
		s := New(deps, "test", false)

		req := httptest.NewRequest("POST", "/api/v1/monitored-pages",
			strings.NewReader(`{"url":"https://acme.com/careers","name":"careers","competitorId":"nope","signalType":"Hiring"}`))
		rec := doRequest(s, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("create enabled by default", func(t *testing.T) {
		deps := testDeps()
		store := &mocks.StoreMock{
			CreatePageFunc: func(ctx context.Context, p *domain.MonitoredPage) error {
				p.ID = "page-1"
				return nil
			},
		}
		deps.Store = store
		s := New(deps, "test", false)

		req := httptest.NewRequest("POST", "/api/v1/monitored-pages",
			strings.NewReader(`{"url":"https://acme.com/careers","name":"careers","signalType":"Hiring"}`))
		rec := doRequest(s, req)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, store.CreatePageCalls(), 1)
		assert.True(t, store.CreatePageCalls()[0].P.Enabled)
	})

	t.Run("record check result", func(t *testing.T) {
		deps := testDeps()
		store := &mocks.StoreMock{
			UpdatePageCheckFunc: func(ctx context.Context, id, contentHash string, checkedAt time.Time) error {
				return nil
			},
		}
		deps.Store = store
		s := New(deps, "test", false)

		req := httptest.NewRequest("PUT", "/api/v1/monitored-pages/page-1/check",
			strings.NewReader(`{"contentHash":"sha256:abc"}`))
		rec := doRequest(s, req)
		require.Equal(t, http.StatusOK, rec.Code)

		calls := store.UpdatePageCheckCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "page-1", calls[0].ID)
		assert.Equal(t, "sha256:abc", calls[0].ContentHash)
		assert.False(t, calls[0].CheckedAt.IsZero())
	})

	t.Run("check result missing hash", func(t *testing.T) {
		s := New(testDeps(), "test", false)
		req := httptest.NewRequest("PUT", "/api/v1/monitored-pages/page-1/check", strings.NewReader(`{}`))
		rec := doRequest(s, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("check result unknown page", func(t *testing.T) {
		deps := testDeps()
		deps.Store = &mocks.StoreMock{
			UpdatePageCheckFunc: func(ctx context.Context, id, contentHash string, checkedAt time.Time) error {
				return fmt.Errorf("update page: %w", repository.ErrNotFound)
			},
		}
		s := New(deps, "test", false)

		req := httptest.NewRequest("PUT", "/api/v1/monitored-pages/missing/check",
			strings.NewReader(`{"contentHash":"h"}`))
		rec := doRequest(s, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestEventHandlers(t *testing.T) {
	t.Run("list failed", func(t *testing.T) {
		deps := testDeps()
		deps.Store = &mocks.StoreMock{
			ListFailedEventsFunc: func(ctx context.Context, limit int) ([]domain.Event, error) {
				return []domain.Event{{
					ID: "ev-1", Name: domain.EventSignalReceived, Payload: []byte(`{"title":"t"}`),
					Status: domain.EventFailed, Attempts: 3, LastError: "database is locked",
				}}, nil
			},
		}
		s := New(deps, "test", false)

		rec := doRequest(s, httptest.NewRequest("GET", "/api/v1/events/failed", http.NoBody))
		require.Equal(t, http.StatusOK, rec.Code)

		var res []map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		require.Len(t, res, 1)
		assert.Equal(t, "ev-1", res[0]["id"])
		assert.Equal(t, float64(3), res[0]["attempts"])
		assert.Equal(t, "database is locked", res[0]["lastError"])
	})

	t.Run("replay ok", func(t *testing.T) {
		deps := testDeps()
		store := &mocks.StoreMock{
			ReplayEventFunc: func(ctx context.Context, id string) error { return nil },
		}
		deps.Store = store
		s := New(deps, "test", false)

		rec := doRequest(s, httptest.NewRequest("POST", "/api/v1/events/ev-1/replay", http.NoBody))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, store.ReplayEventCalls(), 1)
		assert.Equal(t, "ev-1", store.ReplayEventCalls()[0].ID)
	})

	t.Run("replay missing", func(t *testing.T) {
		deps := testDeps()
		deps.Store = &mocks.StoreMock{
			ReplayEventFunc: func(ctx context.Context, id string) error {
				return fmt.Errorf("replay event: %w", repository.ErrNotFound)
			},
		}
		s := New(deps, "test", false)

		rec := doRequest(s, httptest.NewRequest("POST", "/api/v1/events/missing/replay", http.NoBody))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
