package proc

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"

	"github.com/Chernika535/Zen-RSS-pro/pkg/categories"
	"github.com/Chernika535/Zen-RSS-pro/pkg/domain"
	"github.com/Chernika535/Zen-RSS-pro/pkg/feed"
	"github.com/Chernika535/Zen-RSS-pro/pkg/images"
	"github.com/Chernika535/Zen-RSS-pro/pkg/repository"
	"github.com/Chernika535/Zen-RSS-pro/pkg/sanitize"
)

//go:generate moq -out mocks/config_store.go -pkg mocks -skip-ensure -fmt goimports . ConfigStore
//go:generate moq -out mocks/feed_parser.go -pkg mocks -skip-ensure -fmt goimports . FeedParser

// maxDescriptionLen caps the derived description, 160 characters for SEO
const maxDescriptionLen = 160

// descriptionPolicy strips all markup from feed descriptions
var descriptionPolicy = bluemonday.StrictPolicy()

// ConfigStore provides the feed configuration for ingestion
type ConfigStore interface {
	GetConfig(ctx context.Context) (*domain.FeedConfig, error)
	TouchLastChecked(ctx context.Context, id string) error
}

// FeedParser fetches and parses the source feed
type FeedParser interface {
	Parse(ctx context.Context, url string) (*feed.Feed, error)
}

// Pipeline ingests the source feed: dedup by link, sanitize, resolve images,
// map categories, persist, and drive each new article through the state
// machine. One pipeline run is strictly sequential.
type Pipeline struct {
	store     Store
	config    ConfigStore
	parser    FeedParser
	processor *Processor
}

// NewPipeline creates the ingestion pipeline
func NewPipeline(store Store, config ConfigStore, parser FeedParser, processor *Processor) *Pipeline {
	return &Pipeline{store: store, config: config, parser: parser, processor: processor}
}

// Refresh runs one full fetch-and-process cycle. A feed-level fetch or parse
// failure aborts the cycle and is returned to the caller; a single item's
// failure is logged and isolated. lastChecked is stamped exactly once on any
// completed cycle, including cycles with per-item failures.
func (p *Pipeline) Refresh(ctx context.Context) error {
	cfg, err := p.config.GetConfig(ctx)
	if err != nil {
		return fmt.Errorf("load feed config: %w", err)
	}

	parsed, err := p.parser.Parse(ctx, cfg.SourceURL)
	if err != nil {
		return err
	}

	lgr.Printf("[INFO] fetched %d items from %s", len(parsed.Items), cfg.SourceURL)

	created := 0
	for i := range parsed.Items {
		item := &parsed.Items[i]
		ok, err := p.processItem(ctx, item, cfg.SiteLink)
		if ok {
			// counted even when processing failed, the article exists in
			// the store and was driven to the error state
			created++
		}
		if err != nil {
			lgr.Printf("[ERROR] failed to process item %q: %v", item.Title, err)
		}
	}

	if err := p.config.TouchLastChecked(ctx, cfg.ID); err != nil {
		lgr.Printf("[ERROR] failed to update last checked: %v", err)
	}

	if created > 0 {
		lgr.Printf("[INFO] ingested %d new articles", created)
	}
	return nil
}

// Reprocess resets an article to pending and drives it through the state
// machine directly, bypassing the link dedup check of a regular cycle.
func (p *Pipeline) Reprocess(ctx context.Context, id string) error {
	if _, err := p.store.GetArticle(ctx, id); err != nil {
		return err
	}

	if err := p.store.ResetArticle(ctx, id); err != nil {
		return fmt.Errorf("reset article: %w", err)
	}

	article, err := p.store.GetArticle(ctx, id)
	if err != nil {
		return err
	}

	lgr.Printf("[INFO] reprocessing article: %s", article.Link)
	return p.processor.Process(ctx, article)
}

// processItem handles a single feed entry, reporting whether a new article
// was created. Missing required fields and known links are silent skips.
func (p *Pipeline) processItem(ctx context.Context, item *feed.Item, siteLink string) (bool, error) {
	if item.Title == "" || item.Link == "" {
		lgr.Printf("[WARN] skipping item with missing required fields: %q", item.Title)
		return false, nil
	}

	// link is the dedup boundary, content changes upstream do not re-ingest
	_, err := p.store.GetArticleByLink(ctx, item.Link)
	if err == nil {
		lgr.Printf("[DEBUG] article already exists: %s", item.Link)
		return false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return false, fmt.Errorf("check existing article: %w", err)
	}

	article := buildArticle(item, siteLink)
	if err := p.store.CreateArticle(ctx, article); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// lost the insert race to a concurrent trigger, treat as known
			lgr.Printf("[DEBUG] article already exists: %s", item.Link)
			return false, nil
		}
		return false, fmt.Errorf("create article: %w", err)
	}

	if err := p.processor.Process(ctx, article); err != nil {
		return true, fmt.Errorf("process article: %w", err)
	}
	return true, nil
}

// buildArticle constructs a pending article from a feed entry
func buildArticle(item *feed.Item, siteLink string) *domain.Article {
	raw := item.Content
	if raw == "" {
		raw = item.Description
	}
	content := sanitize.Sanitize(raw)

	base := item.Link
	if base == "" {
		base = siteLink
	}

	author := item.Author
	if author == "" {
		author = domain.UnknownAuthor
	}

	pubDate := item.Published
	if pubDate.IsZero() {
		pubDate = time.Now()
	}

	return &domain.Article{
		Title:       item.Title,
		Link:        item.Link,
		Author:      author,
		PubDate:     pubDate,
		Categories:  categories.Map(item.Categories),
		Description: deriveDescription(item.Description),
		Content:     content,
		Images:      images.Extract(content, base),
		Status:      domain.StatusPending,
	}
}

// deriveDescription strips markup and truncates to the SEO-friendly limit
func deriveDescription(s string) string {
	text := strings.TrimSpace(html.UnescapeString(descriptionPolicy.Sanitize(s)))
	runes := []rune(text)
	if len(runes) <= maxDescriptionLen {
		return text
	}
	return string(runes[:maxDescriptionLen-3]) + "..."
}
