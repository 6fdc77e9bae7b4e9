package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/umputun/intelscope/pkg/domain"
	"github.com/umputun/intelscope/pkg/repository"
)

// signalResponse is a signal prepared for rendering, with content passed
// through the HTML sanitizer
type signalResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	SourceURL      string    `json:"sourceUrl"`
	SourcePlatform string    `json:"sourcePlatform"`
	SignalType     string    `json:"signalType"`
	CompetitorID   string    `json:"competitorId,omitempty"`
	KeywordID      string    `json:"keywordId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// listSignalsHandler returns recent signals for the feed UI
func (s *Server) listSignalsHandler(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if n, err := strconv.Atoi(limitStr); err == nil && n > 0 {
			limit = n
		}
	}

	signals, err := s.store.ListSignals(r.Context(), domain.SignalFilter{Limit: limit})
	if err != nil {
		log.Printf("[ERROR] failed to list signals: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	res := make([]signalResponse, len(signals))
	for i, sig := range signals {
		res[i] = signalResponse{
			ID:             sig.ID,
			Title:          sig.Title,
			Content:        s.sanitizer.Clean(sig.RawContent),
			SourceURL:      sig.SourceURL,
			SourcePlatform: sig.SourcePlatform,
			SignalType:     sig.SignalType,
			CompetitorID:   sig.CompetitorID,
			KeywordID:      sig.KeywordID,
			CreatedAt:      sig.CreatedAt,
		}
	}
	renderJSON(w, r, http.StatusOK, res)
}

// listCompetitorsHandler returns all competitors
func (s *Server) listCompetitorsHandler(w http.ResponseWriter, r *http.Request) {
	competitors, err := s.store.ListCompetitors(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to list competitors: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, toCompetitorResponses(competitors))
}

// createCompetitorHandler adds a tracked competitor
func (s *Server) createCompetitorHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name   string `json:"name"`
		Domain string `json:"domain"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if body.Name == "" || body.Domain == "" {
		renderError(w, r, fmt.Errorf("missing required fields: name, domain"), http.StatusBadRequest)
		return
	}

	competitor := domain.Competitor{Name: body.Name, Domain: body.Domain}
	if err := s.store.CreateCompetitor(r.Context(), &competitor); err != nil {
		log.Printf("[ERROR] failed to create competitor: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, toCompetitorResponse(competitor))
}

// deleteCompetitorHandler removes a competitor unless it is still referenced
func (s *Server) deleteCompetitorHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := s.store.DeleteCompetitor(r.Context(), id)
	switch {
	case errors.Is(err, repository.ErrConstraint):
		renderError(w, r, fmt.Errorf("competitor is referenced by existing signals or pages"), http.StatusConflict)
	case errors.Is(err, repository.ErrNotFound):
		renderError(w, r, fmt.Errorf("competitor not found"), http.StatusNotFound)
	case err != nil:
		log.Printf("[ERROR] failed to delete competitor: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
	default:
		renderJSON(w, r, http.StatusOK, map[string]bool{"success": true})
	}
}

// listKeywordsHandler returns all keywords
func (s *Server) listKeywordsHandler(w http.ResponseWriter, r *http.Request) {
	keywords, err := s.store.ListKeywords(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to list keywords: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, toKeywordResponses(keywords))
}

// createKeywordHandler adds a tracked keyword
func (s *Server) createKeywordHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Term     string `json:"term"`
		Category string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if body.Term == "" || body.Category == "" {
		renderError(w, r, fmt.Errorf("missing required fields: term, category"), http.StatusBadRequest)
		return
	}

	keyword := domain.Keyword{Term: body.Term, Category: body.Category}
	if err := s.store.CreateKeyword(r.Context(), &keyword); err != nil {
		log.Printf("[ERROR] failed to create keyword: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, toKeywordResponse(keyword))
}

// deleteKeywordHandler removes a keyword unless it is still referenced
func (s *Server) deleteKeywordHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := s.store.DeleteKeyword(r.Context(), id)
	switch {
	case errors.Is(err, repository.ErrConstraint):
		renderError(w, r, fmt.Errorf("keyword is referenced by existing signals"), http.StatusConflict)
	case errors.Is(err, repository.ErrNotFound):
		renderError(w, r, fmt.Errorf("keyword not found"), http.StatusNotFound)
	case err != nil:
		log.Printf("[ERROR] failed to delete keyword: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
	default:
		renderJSON(w, r, http.StatusOK, map[string]bool{"success": true})
	}
}

// listPagesHandler returns all monitored pages
func (s *Server) listPagesHandler(w http.ResponseWriter, r *http.Request) {
	pages, err := s.store.ListPages(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to list monitored pages: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, toPageResponses(pages))
}

// createPageHandler adds a monitored page for the external diffing job
func (s *Server) createPageHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		URL          string `json:"url"`
		Name         string `json:"name"`
		CompetitorID string `json:"competitorId"`
		SignalType   string `json:"signalType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if body.URL == "" || body.Name == "" || body.SignalType == "" {
		renderError(w, r, fmt.Errorf("missing required fields: url, name, signalType"), http.StatusBadRequest)
		return
	}

	page := domain.MonitoredPage{
		URL:          body.URL,
		Name:         body.Name,
		CompetitorID: body.CompetitorID,
		SignalType:   body.SignalType,
		Enabled:      true,
	}
	if err := s.store.CreatePage(r.Context(), &page); err != nil {
		if errors.Is(err, repository.ErrConstraint) {
			renderError(w, r, fmt.Errorf("competitor %s does not exist", body.CompetitorID), http.StatusBadRequest)
			return
		}
		log.Printf("[ERROR] failed to create monitored page: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, toPageResponse(page))
}

// updatePageCheckHandler records the result of an external page check
func (s *Server) updatePageCheckHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var body struct {
		ContentHash string     `json:"contentHash"`
		CheckedAt   *time.Time `json:"checkedAt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if body.ContentHash == "" {
		renderError(w, r, fmt.Errorf("missing required field: contentHash"), http.StatusBadRequest)
		return
	}

	checkedAt := time.Now().UTC()
	if body.CheckedAt != nil {
		checkedAt = *body.CheckedAt
	}

	err := s.store.UpdatePageCheck(r.Context(), id, body.ContentHash, checkedAt)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		renderError(w, r, fmt.Errorf("monitored page not found"), http.StatusNotFound)
	case err != nil:
		log.Printf("[ERROR] failed to update page check: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
	default:
		renderJSON(w, r, http.StatusOK, map[string]bool{"success": true})
	}
}

// deletePageHandler removes a monitored page
func (s *Server) deletePageHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := s.store.DeletePage(r.Context(), id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		renderError(w, r, fmt.Errorf("monitored page not found"), http.StatusNotFound)
	case err != nil:
		log.Printf("[ERROR] failed to delete monitored page: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
	default:
		renderJSON(w, r, http.StatusOK, map[string]bool{"success": true})
	}
}

// listFailedEventsHandler lists parked events for operator inspection
func (s *Server) listFailedEventsHandler(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if n, err := strconv.Atoi(limitStr); err == nil && n > 0 {
			limit = n
		}
	}

	events, err := s.store.ListFailedEvents(r.Context(), limit)
	if err != nil {
		log.Printf("[ERROR] failed to list failed events: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	type eventResponse struct {
		ID        string          `json:"id"`
		Name      string          `json:"name"`
		Payload   json.RawMessage `json:"payload"`
		Attempts  int             `json:"attempts"`
		LastError string          `json:"lastError"`
		CreatedAt time.Time       `json:"createdAt"`
		UpdatedAt time.Time       `json:"updatedAt"`
	}
	res := make([]eventResponse, len(events))
	for i, ev := range events {
		res[i] = eventResponse{
			ID:        ev.ID,
			Name:      ev.Name,
			Payload:   json.RawMessage(ev.Payload),
			Attempts:  ev.Attempts,
			LastError: ev.LastError,
			CreatedAt: ev.CreatedAt,
			UpdatedAt: ev.UpdatedAt,
		}
	}
	renderJSON(w, r, http.StatusOK, res)
}

// replayEventHandler requeues a parked event for redelivery
func (s *Server) replayEventHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := s.store.ReplayEvent(r.Context(), id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		renderError(w, r, fmt.Errorf("failed event not found"), http.StatusNotFound)
	case err != nil:
		log.Printf("[ERROR] failed to replay event: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
	default:
		renderJSON(w, r, http.StatusOK, map[string]bool{"success": true})
	}
}
