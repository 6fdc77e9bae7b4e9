package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/intelscope/pkg/domain"
	"github.com/umputun/intelscope/server/mocks"
)

func exportRows() []domain.ExportRow {
	name := "Acme"
	dom := "acme.com"
	return []domain.ExportRow{{
		ID:               "id-1",
		Title:            "title one",
		RawContent:       "content",
		SourceURL:        "https://example.com/1",
		SourcePlatform:   domain.PlatformWebsite,
		SignalType:       domain.SignalHiring,
		CreatedAt:        time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC),
		CompetitorName:   &name,
		CompetitorDomain: &dom,
	}}
}

func TestExportHandler_JSON(t *testing.T) {
	deps := testDeps()
	exp := &mocks.ExporterMock{
		RowsFunc: func(ctx context.Context, scope domain.Scope) []domain.ExportRow { return exportRows() },
	}
	deps.Exporter = exp
	s := New(deps, "test", false)

	rec := doRequest(s, httptest.NewRequest("GET", "/export", http.NoBody))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var rows []domain.ExportRow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "title one", rows[0].Title)
	require.NotNil(t, rows[0].CompetitorName)
	assert.Equal(t, "Acme", *rows[0].CompetitorName)
	assert.Nil(t, rows[0].KeywordTerm)

	calls := exp.RowsCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, domain.ScopeAll, calls[0].Scope, "missing scope defaults to all")
}

func TestExportHandler_ScopePassed(t *testing.T) {
	deps := testDeps()
	exp := &mocks.ExporterMock{
		RowsFunc: func(ctx context.Context, scope domain.Scope) []domain.ExportRow { return []domain.ExportRow{} },
	}
	deps.Exporter = exp
	s := New(deps, "test", false)

	rec := doRequest(s, httptest.NewRequest("GET", "/export?scope=keywords", http.NoBody))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.ScopeKeywords, exp.RowsCalls()[0].Scope)
}

func TestExportHandler_CSV(t *testing.T) {
	deps := testDeps()
	deps.Exporter = &mocks.ExporterMock{
		RowsFunc: func(ctx context.Context, scope domain.Scope) []domain.ExportRow { return exportRows() },
	}
	s := New(deps, "test", false)

	rec := doRequest(s, httptest.NewRequest("GET", "/export?format=csv", http.NoBody))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "intel-export-")

	body := rec.Body.String()
	assert.Contains(t, body, "id,title,rawContent")
	assert.Contains(t, body, "title one")
	assert.Contains(t, body, "2025-08-30T12:00:00Z")
}

func TestExportHandler_BadParams(t *testing.T) {
	s := New(testDeps(), "test", false)

	rec := doRequest(s, httptest.NewRequest("GET", "/export?scope=bogus", http.NoBody))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(s, httptest.NewRequest("GET", "/export?format=xml", http.NoBody))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportHandler_DegradedMode(t *testing.T) {
	// exporter contract: store failure yields empty rows, never an error
	deps := testDeps()
	deps.Exporter = &mocks.ExporterMock{
		RowsFunc: func(ctx context.Context, scope domain.Scope) []domain.ExportRow { return []domain.ExportRow{} },
	}
	s := New(deps, "test", false)

	t.Run("json yields empty array", func(t *testing.T) {
		rec := doRequest(s, httptest.NewRequest("GET", "/export", http.NoBody))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("csv yields empty body", func(t *testing.T) {
		rec := doRequest(s, httptest.NewRequest("GET", "/export?format=csv", http.NoBody))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}
