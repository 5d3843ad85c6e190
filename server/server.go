package server

import (
	"context"
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
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/umputun/topstories/pkg/coordinator"
	"github.com/umputun/topstories/pkg/domain"
	"github.com/umputun/topstories/pkg/feed"
	"github.com/umputun/topstories/pkg/store"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/coordinator.go -pkg mocks -skip-ensure -fmt goimports . Coordinator
//go:generate moq -out mocks/preferences.go -pkg mocks -skip-ensure -fmt goimports . Preferences
//go:generate moq -out mocks/cache.go -pkg mocks -skip-ensure -fmt goimports . ArticleCache

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	coord     Coordinator
	prefs     Preferences
	cache     ArticleCache
	generator *feed.Generator
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Coordinator loads section articles and provides the current view
type Coordinator interface {
	SelectSection(ctx context.Context, section string)
	Refresh(ctx context.Context)
	Snapshot(filters domain.Filters) coordinator.View
	FilterOptions() ([]string, []string)
	ClearArticles(ctx context.Context) error
	ClearError()
}

// Preferences keeps selected section and filters
type Preferences interface {
	Get() domain.Preferences
	SetSelectedSection(ctx context.Context, section string) error
	SetFilters(ctx context.Context, filters domain.Filters) error
	SetLocationFilter(ctx context.Context, location string) error
	SetKeywordsFilter(ctx context.Context, keywords string) error
	ClearFilters(ctx context.Context) error
	Reset(ctx context.Context) error
}

// ArticleCache provides cached articles of any section
type ArticleCache interface {
	Get(section string) []domain.Article
	Snapshot() store.Snapshot
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetBaseURL() string
}

// New initializes a new server instance
func New(cfg ConfigProvider, coord Coordinator, prefs Preferences, cache ArticleCache, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		coord:     coord,
		prefs:     prefs,
		cache:     cache,
		generator: feed.NewGenerator(cfg.GetBaseURL()),
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
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	httpServer := s.httpServer
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("topstories", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024))
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /sections", s.sectionsHandler)

		r.HandleFunc("GET /articles", s.articlesHandler)
		r.HandleFunc("POST /articles/refresh", s.refreshHandler)
		r.HandleFunc("PUT /section/{section}", s.selectSectionHandler)

		r.HandleFunc("GET /filters/options", s.filterOptionsHandler)
		r.HandleFunc("PUT /filters", s.setFiltersHandler)
		r.HandleFunc("PUT /filters/location", s.setFilterHandler("location", s.prefs.SetLocationFilter))
		r.HandleFunc("PUT /filters/keywords", s.setFilterHandler("keywords", s.prefs.SetKeywordsFilter))
		r.HandleFunc("DELETE /filters", s.clearFiltersHandler)

		r.HandleFunc("GET /cache", s.cacheHandler)
		r.HandleFunc("DELETE /cache", s.clearCacheHandler)
		r.HandleFunc("DELETE /error", s.clearErrorHandler)

		r.HandleFunc("GET /preferences", s.preferencesHandler)
		r.HandleFunc("DELETE /preferences", s.resetPreferencesHandler)
	})

	s.router.HandleFunc("GET /rss/{section}", s.rssHandler)
	s.router.Handle("GET /metrics", promhttp.Handler())
}
