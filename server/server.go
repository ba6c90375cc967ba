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

	"github.com/umputun/salescope/pkg/config"
	"github.com/umputun/salescope/pkg/domain"
	"github.com/umputun/salescope/pkg/newsapi"
	"github.com/umputun/salescope/pkg/quota"
	"github.com/umputun/salescope/pkg/scheduler"
	"github.com/umputun/salescope/pkg/trigger"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/searcher.go -pkg mocks -skip-ensure -fmt goimports . Searcher
//go:generate moq -out mocks/orchestrator.go -pkg mocks -skip-ensure -fmt goimports . Orchestrator
//go:generate moq -out mocks/quota.go -pkg mocks -skip-ensure -fmt goimports . QuotaReader
//go:generate moq -out mocks/snapshots.go -pkg mocks -skip-ensure -fmt goimports . SnapshotProvider

// Server represents HTTP server instance. It is the seam between the
// retrieval engine and whatever presentation layer calls it - all rendering
// decisions stay with the caller.
type Server struct {
	config    ConfigProvider
	searcher  Searcher
	triggers  Orchestrator
	quota     QuotaReader
	snapshots SnapshotProvider
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Searcher performs ad-hoc bounded retrievals
type Searcher interface {
	Fetch(ctx context.Context, queryString string, filters newsapi.Filters) domain.FetchResult
	TopHeadlines(ctx context.Context, filters newsapi.HeadlinesFilters) domain.FetchResult
}

// Orchestrator runs trigger batches on demand
type Orchestrator interface {
	RunTriggers(ctx context.Context, active trigger.Catalog, region string) []domain.FetchResult
	Catalog() trigger.Catalog
}

// QuotaReader exposes the current budget state
type QuotaReader interface {
	State() quota.State
}

// SnapshotProvider serves the latest scheduled trigger snapshot
type SnapshotProvider interface {
	Latest() (scheduler.Snapshot, bool)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetNewsAPIConfig() config.NewsAPIConfig
	GetTriggersConfig() config.TriggersConfig
}

// New initializes a new server instance
func New(cfg ConfigProvider, searcher Searcher, triggers Orchestrator, quotaReader QuotaReader,
	snapshots SnapshotProvider, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		searcher:  searcher,
		triggers:  triggers,
		quota:     quotaReader,
		snapshots: snapshots,
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
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
	s.router.Use(rest.AppInfo("salescope", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024)) // 64K, requests are small
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /search", s.searchHandler)
		r.HandleFunc("GET /headlines", s.headlinesHandler)
		r.HandleFunc("GET /triggers", s.triggersHandler)
		r.HandleFunc("POST /triggers/run", s.triggersRunHandler)
	})
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
