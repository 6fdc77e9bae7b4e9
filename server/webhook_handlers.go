package server

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/umputun/intelscope/pkg/domain"
	"github.com/umputun/intelscope/pkg/metrics"
)

// webhookHandler accepts an external signal submission, authenticates and
// validates it, and republishes it as a bus event. It acknowledges
// acceptance for processing before any storage happens; storage outcomes
// are never reported back to the caller.
func (s *Server) webhookHandler(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	secret := s.config.GetWebhookSecret()
	if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
		s.metrics.WebhookRejected(metrics.ReasonAuth)
		renderError(w, r, fmt.Errorf("unauthorized"), http.StatusUnauthorized)
		return
	}

	q := r.URL.Query()
	signalType := q.Get("type")
	platform := q.Get("platform")
	if signalType == "" || platform == "" {
		s.metrics.WebhookRejected(metrics.ReasonValidation)
		renderError(w, r, fmt.Errorf("missing required query parameters: type, platform"), http.StatusBadRequest)
		return
	}

	var body struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		URL     string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.metrics.WebhookRejected(metrics.ReasonValidation)
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if body.Title == "" || body.Content == "" || body.URL == "" {
		s.metrics.WebhookRejected(metrics.ReasonValidation)
		renderError(w, r, fmt.Errorf("missing required fields: title, content, url"), http.StatusBadRequest)
		return
	}

	env := domain.SignalEnvelope{
		Title:        body.Title,
		Content:      body.Content,
		URL:          body.URL,
		Platform:     platform,
		SignalType:   signalType,
		CompetitorID: q.Get("comp_id"),
		KeywordID:    q.Get("keyword_id"),
	}
	payload, err := json.Marshal(env)
	if err != nil {
		renderError(w, r, fmt.Errorf("internal server error"), http.StatusInternalServerError)
		return
	}

	if err := s.bus.Publish(r.Context(), domain.EventSignalReceived, payload); err != nil {
		log.Printf("[ERROR] webhook publish failed: %v", err)
		renderError(w, r, fmt.Errorf("internal server error"), http.StatusInternalServerError)
		return
	}

	s.metrics.WebhookAccepted()
	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"accepted": true,
		"message":  "webhook queued for processing",
	})
}
