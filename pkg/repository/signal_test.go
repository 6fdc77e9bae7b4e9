package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/intelscope/pkg/domain"
)

func TestSignalRepository_Create(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	sig := domain.Signal{
		Title:          "Competitor hiring ML engineers",
		RawContent:     "<p>job posting</p>",
		SourceURL:      "https://example.com/job",
		SourcePlatform: domain.PlatformLinkedIn,
		SignalType:     domain.SignalHiring,
	}
	require.NoError(t, repos.Signal.Create(ctx, &sig))
	assert.NotEmpty(t, sig.ID, "create assigns identity")
	assert.False(t, sig.CreatedAt.IsZero())

	got, err := repos.Signal.Get(ctx, sig.ID)
	require.NoError(t, err)
	assert.Equal(t, sig.Title, got.Title)
	assert.Equal(t, sig.RawContent, got.RawContent)
	assert.Empty(t, got.CompetitorID)
	assert.Empty(t, got.KeywordID)
}

func TestSignalRepository_CreateRegeneratesIdentity(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	sig := domain.Signal{
		Title: "t", RawContent: "c", SourceURL: "https://example.com",
		SourcePlatform: domain.PlatformX, SignalType: domain.SignalCulture,
	}
	require.NoError(t, repos.Signal.Create(ctx, &sig))
	first := sig.ID

	require.NoError(t, repos.Signal.Create(ctx, &sig))
	assert.NotEqual(t, first, sig.ID, "each create attempt gets a fresh identity")

	list, err := repos.Signal.List(ctx, domain.SignalFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestSignalRepository_CreateUnknownReferenceRejected(t *testing.T) {
	repos := setupTestDB(t)

	sig := domain.Signal{
		Title: "t", RawContent: "c", SourceURL: "https://example.com",
		SourcePlatform: domain.PlatformBlog, SignalType: domain.SignalHiring,
		CompetitorID: "no-such-competitor",
	}
	err := repos.Signal.Create(context.Background(), &sig)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConstraint)
}

func TestSignalRepository_List(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	c := domain.Competitor{Name: "Acme", Domain: "acme.com"}
	require.NoError(t, repos.Competitor.Create(ctx, &c))
	k := domain.Keyword{Term: "serverless", Category: "technology"}
	require.NoError(t, repos.Keyword.Create(ctx, &k))

	mkSignal := func(title, compID, kwID string) string {
		sig := domain.Signal{
			Title: title, RawContent: "c", SourceURL: "https://example.com",
			SourcePlatform: domain.PlatformWebsite, SignalType: domain.SignalHiring,
			CompetitorID: compID, KeywordID: kwID,
		}
		require.NoError(t, repos.Signal.Create(ctx, &sig))
		time.Sleep(2 * time.Millisecond) // distinct created_at for deterministic ordering
		return sig.ID
	}

	mkSignal("company signal", c.ID, "")
	mkSignal("keyword signal", "", k.ID)
	lastID := mkSignal("unscoped signal", "", "")

	t.Run("all newest first", func(t *testing.T) {
		list, err := repos.Signal.List(ctx, domain.SignalFilter{})
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, lastID, list[0].ID)
		assert.Equal(t, "unscoped signal", list[0].Title)
	})

	t.Run("companies scope", func(t *testing.T) {
		list, err := repos.Signal.List(ctx, domain.SignalFilter{Scope: domain.ScopeCompanies})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "company signal", list[0].Title)
	})

	t.Run("keywords scope", func(t *testing.T) {
		list, err := repos.Signal.List(ctx, domain.SignalFilter{Scope: domain.ScopeKeywords})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "keyword signal", list[0].Title)
	})

	t.Run("limit applied", func(t *testing.T) {
		list, err := repos.Signal.List(ctx, domain.SignalFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})

	t.Run("since filter excludes old rows", func(t *testing.T) {
		// backdate one row beyond the window
		old := time.Now().UTC().Add(-10 * 24 * time.Hour)
		_, err := repos.DB.Exec("UPDATE intel_items SET created_at = ? WHERE title = ?", old, "company signal")
		require.NoError(t, err)

		list, err := repos.Signal.List(ctx, domain.SignalFilter{Since: time.Now().UTC().Add(-5 * 24 * time.Hour)})
		require.NoError(t, err)
		require.Len(t, list, 2)
		for _, sig := range list {
			assert.NotEqual(t, "company signal", sig.Title)
		}
	})
}

func TestSignalRepository_ExportRows(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	c := domain.Competitor{Name: "Acme", Domain: "acme.com"}
	require.NoError(t, repos.Competitor.Create(ctx, &c))
	k := domain.Keyword{Term: "serverless", Category: "technology"}
	require.NoError(t, repos.Keyword.Create(ctx, &k))

	withRefs := domain.Signal{
		Title: "with refs", RawContent: "c", SourceURL: "https://example.com/1",
		SourcePlatform: domain.PlatformWebsite, SignalType: domain.SignalHiring,
		CompetitorID: c.ID, KeywordID: k.ID,
	}
	require.NoError(t, repos.Signal.Create(ctx, &withRefs))
	time.Sleep(2 * time.Millisecond)

	bare := domain.Signal{
		Title: "bare", RawContent: "c", SourceURL: "https://example.com/2",
		SourcePlatform: domain.PlatformReddit, SignalType: domain.SignalCustomerPain,
	}
	require.NoError(t, repos.Signal.Create(ctx, &bare))

	rows, err := repos.Signal.ExportRows(ctx, domain.SignalFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// newest first
	assert.Equal(t, "bare", rows[0].Title)
	assert.Nil(t, rows[0].CompetitorName, "unset reference yields nil, row kept")
	assert.Nil(t, rows[0].KeywordTerm)

	assert.Equal(t, "with refs", rows[1].Title)
	require.NotNil(t, rows[1].CompetitorName)
	assert.Equal(t, "Acme", *rows[1].CompetitorName)
	require.NotNil(t, rows[1].CompetitorDomain)
	assert.Equal(t, "acme.com", *rows[1].CompetitorDomain)
	require.NotNil(t, rows[1].KeywordTerm)
	assert.Equal(t, "serverless", *rows[1].KeywordTerm)
	require.NotNil(t, rows[1].KeywordCategory)
	assert.Equal(t, "technology", *rows[1].KeywordCategory)

	t.Run("scope filter", func(t *testing.T) {
		scoped, err := repos.Signal.ExportRows(ctx, domain.SignalFilter{Scope: domain.ScopeCompanies})
		require.NoError(t, err)
		require.Len(t, scoped, 1)
		assert.Equal(t, "with refs", scoped[0].Title)
	})
}
