package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/intelscope/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/publisher.go -pkg mocks -skip-ensure -fmt goimports . Publisher
//go:generate moq -out mocks/exporter.go -pkg mocks -skip-ensure -fmt goimports . Exporter
//go:generate moq -out mocks/sanitizer.go -pkg mocks -skip-ensure -fmt goimports . Sanitizer

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	store     Store
	bus       Publisher
	exporter  Exporter
	sanitizer Sanitizer
	metrics   WebhookMetrics
	promView  http.Handler
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Store interface for server operations
type Store interface {
	CreateCompetitor(ctx context.Context, c *domain.Competitor) error
	ListCompetitors(ctx context.Context) ([]domain.Competitor, error)
	DeleteCompetitor(ctx context.Context, id string) error

	CreateKeyword(ctx context.Context, k *domain.Keyword) error
	ListKeywords(ctx context.Context) ([]domain.Keyword, error)
	DeleteKeyword(ctx context.Context, id string) error

	CreatePage(ctx context.Context, p *domain.MonitoredPage) error
	ListPages(ctx context.Context) ([]domain.MonitoredPage, error)
	UpdatePageCheck(ctx context.Context, id, contentHash string, checkedAt time.Time) error
	DeletePage(ctx context.Context, id string) error

	ListSignals(ctx context.Context, filter domain.SignalFilter) ([]domain.Signal, error)

	ListFailedEvents(ctx context.Context, limit int) ([]domain.Event, error)
	ReplayEvent(ctx context.Context, id string) error
}

// Publisher publishes durable bus events
type Publisher interface {
	Publish(ctx context.Context, name string, payload []byte) error
}

// Exporter retrieves denormalized signals for the read side
type Exporter interface {
	Rows(ctx context.Context, scope domain.Scope) []domain.ExportRow
}

// Sanitizer cleans untrusted HTML for rendering
type Sanitizer interface {
	Clean(html string) string
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetWebhookSecret() string
}

// WebhookMetrics counts ingress outcomes
type WebhookMetrics interface {
	WebhookAccepted()
	WebhookRejected(reason string)
}

// Deps holds server dependencies
type Deps struct {
	Config    ConfigProvider
	Store     Store
	Bus       Publisher
	Exporter  Exporter
	Sanitizer Sanitizer
	Metrics   WebhookMetrics // optional
	PromView  http.Handler   // optional /metrics endpoint
}

// New initializes a new server instance
func New(deps Deps, version string, debug bool) *Server {
	s := &Server{
		config:    deps.Config,
		store:     deps.Store,
		bus:       deps.Bus,
		exporter:  deps.Exporter,
		sanitizer: deps.Sanitizer,
		metrics:   deps.Metrics,
		promView:  deps.PromView,
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
	}
	if s.metrics == nil {
		s.metrics = noopWebhookMetrics{}
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("intelscope", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	// ingestion boundary
	s.router.HandleFunc("POST /webhooks/ingest", s.webhookHandler)

	// read side
	s.router.HandleFunc("GET /export", s.exportHandler)

	// API routes
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("GET /signals", s.listSignalsHandler)

		r.HandleFunc("GET /competitors", s.listCompetitorsHandler)
		r.HandleFunc("POST /competitors", s.createCompetitorHandler)
		r.HandleFunc("DELETE /competitors/{id}", s.deleteCompetitorHandler)

		r.HandleFunc("GET /keywords", s.listKeywordsHandler)
		r.HandleFunc("POST /keywords", s.createKeywordHandler)
		r.HandleFunc("DELETE /keywords/{id}", s.deleteKeywordHandler)

		r.HandleFunc("GET /monitored-pages", s.listPagesHandler)
		r.HandleFunc("POST /monitored-pages", s.createPageHandler)
		r.HandleFunc("PUT /monitored-pages/{id}/check", s.updatePageCheckHandler)
		r.HandleFunc("DELETE /monitored-pages/{id}", s.deletePageHandler)

		r.HandleFunc("GET /events/failed", s.listFailedEventsHandler)
		r.HandleFunc("POST /events/{id}/replay", s.replayEventHandler)
	})

	if s.promView != nil {
		s.router.Handle("GET /metrics", s.promView)
	}
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}

type noopWebhookMetrics struct{}

func (noopWebhookMetrics) WebhookAccepted()         {}
func (noopWebhookMetrics) WebhookRejected(_ string) {}
