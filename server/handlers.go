package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/Chernika535/Zen-RSS-pro/pkg/domain"
	"github.com/Chernika535/Zen-RSS-pro/pkg/repository"
)

// getArticlesHandler returns the stored articles, newest first. Supports
// optional status and limit query parameters.
func (s *Server) getArticlesHandler(w http.ResponseWriter, r *http.Request) {
	articles, err := s.articles.GetArticles(r.Context())
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	if statusParam := r.URL.Query().Get("status"); statusParam != "" {
		status := domain.Status(statusParam)
		if !validStatus(status) {
			RenderError(w, r, fmt.Errorf("invalid status %q", statusParam), http.StatusBadRequest)
			return
		}
		filtered := make([]*domain.Article, 0, len(articles))
		for _, a := range articles {
			if a.Status == status {
				filtered = append(filtered, a)
			}
		}
		articles = filtered
	}

	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		limit, err := strconv.Atoi(limitParam)
		if err != nil || limit < 0 {
			RenderError(w, r, fmt.Errorf("invalid limit %q", limitParam), http.StatusBadRequest)
			return
		}
		if limit < len(articles) {
			articles = articles[:limit]
		}
	}

	RenderJSON(w, r, http.StatusOK, articles)
}

// getArticleHandler returns a single article by id
func (s *Server) getArticleHandler(w http.ResponseWriter, r *http.Request) {
	article, err := s.articles.GetArticle(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			RenderError(w, r, err, http.StatusNotFound)
			return
		}
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, article)
}

// articleUpdateRequest is the PATCH body for an article, absent fields stay
// untouched
type articleUpdateRequest struct {
	Status       *domain.Status `json:"status"`
	ErrorMessage *string        `json:"errorMessage"`
	ZenCompliant *bool          `json:"zenCompliant"`
}

// updateArticleHandler applies a partial update and returns the result
func (s *Server) updateArticleHandler(w http.ResponseWriter, r *http.Request) {
	var req articleUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	if req.Status == nil && req.ErrorMessage == nil && req.ZenCompliant == nil {
		RenderError(w, r, errors.New("no fields to update"), http.StatusBadRequest)
		return
	}
	if req.Status != nil && !validStatus(*req.Status) {
		RenderError(w, r, fmt.Errorf("invalid status %q", *req.Status), http.StatusBadRequest)
		return
	}

	id := r.PathValue("id")
	upd := repository.ArticleUpdate{Status: req.Status, ErrorMessage: req.ErrorMessage, ZenCompliant: req.ZenCompliant}
	if err := s.articles.UpdateArticle(r.Context(), id, upd); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			RenderError(w, r, err, http.StatusNotFound)
			return
		}
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	article, err := s.articles.GetArticle(r.Context(), id)
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, article)
}

// reprocessArticleHandler resets an article and drives it through the state
// machine again
func (s *Server) reprocessArticleHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.reprocessor.Reprocess(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			RenderError(w, r, err, http.StatusNotFound)
			return
		}
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	article, err := s.articles.GetArticle(r.Context(), id)
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, article)
}

// getConfigHandler returns the feed configuration, active or not
func (s *Server) getConfigHandler(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.feedConfig.GetConfig(r.Context())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			RenderError(w, r, err, http.StatusNotFound)
			return
		}
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, cfg)
}

// updateConfigHandler applies a partial update to the feed configuration.
// The request body carries only the fields to change.
func (s *Server) updateConfigHandler(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.feedConfig.GetConfig(r.Context())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			RenderError(w, r, err, http.StatusNotFound)
			return
		}
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	id := r.PathValue("id")
	if cfg.ID != id {
		RenderError(w, r, fmt.Errorf("feed config %s: %w", id, repository.ErrNotFound), http.StatusNotFound)
		return
	}

	// decode over the current config so absent fields keep their values
	updated := *cfg
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	updated.ID = cfg.ID // id is immutable
	updated.CreatedAt = cfg.CreatedAt
	updated.LastChecked = cfg.LastChecked

	if updated.SourceURL == "" {
		RenderError(w, r, errors.New("sourceUrl is required"), http.StatusBadRequest)
		return
	}
	if updated.CheckInterval <= 0 {
		RenderError(w, r, errors.New("checkInterval must be positive"), http.StatusBadRequest)
		return
	}

	if err := s.feedConfig.UpdateConfig(r.Context(), &updated); err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, &updated)
}

// syncHandler triggers a feed synchronization cycle in the background.
// Requires an active feed configuration.
func (s *Server) syncHandler(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.feedConfig.GetConfig(r.Context())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			RenderError(w, r, errors.New("no active feed configuration"), http.StatusBadRequest)
			return
		}
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if !cfg.IsActive {
		RenderError(w, r, errors.New("no active feed configuration"), http.StatusBadRequest)
		return
	}

	if s.syncer.Busy() {
		RenderJSON(w, r, http.StatusAccepted, map[string]string{"status": "sync already in progress"})
		return
	}

	// detached from the request context, the cycle outlives the response
	go func() {
		if err := s.syncer.RefreshNow(context.Background()); err != nil {
			lgr.Printf("[ERROR] manual sync failed: %v", err)
		}
	}()

	RenderJSON(w, r, http.StatusAccepted, map[string]string{"status": "sync started"})
}

// statsHandler returns processing statistics for the article set
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.articles.GetStats(r.Context())
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	// last checked comes from the feed config when one exists
	if cfg, err := s.feedConfig.GetConfig(r.Context()); err == nil {
		stats.LastUpdated = cfg.LastChecked
	}

	RenderJSON(w, r, http.StatusOK, stats)
}

// statusHandler returns server health plus a short processing snapshot
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	recent, err := s.articles.GetArticles(r.Context())
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if len(recent) > 5 {
		recent = recent[:5]
	}

	status := map[string]interface{}{
		"status":         "ok",
		"version":        s.version,
		"time":           time.Now().UTC(),
		"isProcessing":   s.syncer.Busy(),
		"recentArticles": recent,
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// zenFeedHandler serves the regenerated RSS document
func (s *Server) zenFeedHandler(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.feedConfig.GetConfig(r.Context())
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, repository.ErrNotFound) {
			code = http.StatusNotFound
		}
		renderFeedError(w, err, code)
		return
	}

	articles, err := s.articles.GetArticles(r.Context())
	if err != nil {
		renderFeedError(w, err, http.StatusInternalServerError)
		return
	}

	xml, err := s.generator.Generate(cfg, articles)
	if err != nil {
		renderFeedError(w, err, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(xml)); err != nil {
		lgr.Printf("[WARN] failed to write feed response: %v", err)
	}
}

func renderFeedError(w http.ResponseWriter, err error, code int) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	fmt.Fprintf(w, "failed to generate feed: %v", err)
}

func validStatus(s domain.Status) bool {
	switch s {
	case domain.StatusPending, domain.StatusProcessing, domain.StatusProcessed, domain.StatusError:
		return true
	}
	return false
}
