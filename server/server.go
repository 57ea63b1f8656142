// Package server exposes the REST API and the regenerated Zen feed.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/Chernika535/Zen-RSS-pro/pkg/domain"
	"github.com/Chernika535/Zen-RSS-pro/pkg/repository"
)

//go:generate moq -out mocks/article_store.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore
//go:generate moq -out mocks/config_store.go -pkg mocks -skip-ensure -fmt goimports . ConfigStore
//go:generate moq -out mocks/syncer.go -pkg mocks -skip-ensure -fmt goimports . Syncer
//go:generate moq -out mocks/reprocessor.go -pkg mocks -skip-ensure -fmt goimports . Reprocessor
//go:generate moq -out mocks/feed_generator.go -pkg mocks -skip-ensure -fmt goimports . FeedGenerator
//go:generate moq -out mocks/config_provider.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider

// Server represents HTTP server instance
type Server struct {
	config      ConfigProvider
	articles    ArticleStore
	feedConfig  ConfigStore
	syncer      Syncer
	reprocessor Reprocessor
	generator   FeedGenerator
	version     string
	debug       bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// ArticleStore interface for article operations
type ArticleStore interface {
	GetArticles(ctx context.Context) ([]*domain.Article, error)
	GetArticle(ctx context.Context, id string) (*domain.Article, error)
	UpdateArticle(ctx context.Context, id string, upd repository.ArticleUpdate) error
	GetStats(ctx context.Context) (*domain.ProcessingStats, error)
}

// ConfigStore interface for feed configuration operations
type ConfigStore interface {
	GetConfig(ctx context.Context) (*domain.FeedConfig, error)
	UpdateConfig(ctx context.Context, cfg *domain.FeedConfig) error
}

// Syncer interface for on-demand synchronization
type Syncer interface {
	RefreshNow(ctx context.Context) error
	Busy() bool
}

// Reprocessor interface for re-driving a single article
type Reprocessor interface {
	Reprocess(ctx context.Context, id string) error
}

// FeedGenerator renders the outgoing RSS document
type FeedGenerator interface {
	Generate(cfg *domain.FeedConfig, articles []*domain.Article) (string, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, articles ArticleStore, feedConfig ConfigStore, syncer Syncer,
	reprocessor Reprocessor, generator FeedGenerator, version string, debug bool) *Server {
	s := &Server{
		config:      cfg,
		articles:    articles,
		feedConfig:  feedConfig,
		syncer:      syncer,
		reprocessor: reprocessor,
		generator:   generator,
		version:     version,
		debug:       debug,
		router:      routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

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
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("zenbridge", "Chernika535", s.version))
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
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /articles", s.getArticlesHandler)
		r.HandleFunc("GET /articles/{id}", s.getArticleHandler)
		r.HandleFunc("PATCH /articles/{id}", s.updateArticleHandler)
		r.HandleFunc("POST /articles/{id}/reprocess", s.reprocessArticleHandler)

		r.HandleFunc("GET /config", s.getConfigHandler)
		r.HandleFunc("PATCH /config/{id}", s.updateConfigHandler)

		r.HandleFunc("POST /sync", s.syncHandler)
		r.HandleFunc("GET /stats", s.statsHandler)
		r.HandleFunc("GET /status", s.statusHandler)
	})

	s.router.HandleFunc("GET /zen-feed.xml", s.zenFeedHandler)
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}
