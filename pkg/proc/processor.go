// Package proc drives articles through the processing state machine and runs
// the feed ingestion pipeline.
package proc

import (
	"context"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/Chernika535/Zen-RSS-pro/pkg/compliance"
	"github.com/Chernika535/Zen-RSS-pro/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Store is the article persistence interface the state machine owns
type Store interface {
	CreateArticle(ctx context.Context, article *domain.Article) error
	GetArticle(ctx context.Context, id string) (*domain.Article, error)
	GetArticleByLink(ctx context.Context, link string) (*domain.Article, error)
	UpdateArticleStatus(ctx context.Context, id string, status domain.Status) error
	MarkArticleProcessed(ctx context.Context, id string, compliant bool, reason string) error
	MarkArticleError(ctx context.Context, id, errMsg string) error
	ResetArticle(ctx context.Context, id string) error
}

// Processor is the per-article state machine: pending -> processing ->
// processed | error. It exclusively owns status, compliance and processedAt
// mutations.
type Processor struct {
	store Store
	delay time.Duration
	sleep func(time.Duration) // injectable for test determinism
}

// NewProcessor creates a state machine over the given store. The delay stands
// in for the actual compliance work against the platform; once started a
// transition always completes, it carries no cancellation semantics.
func NewProcessor(store Store, delay time.Duration) *Processor {
	return &Processor{store: store, delay: delay, sleep: time.Sleep}
}

// Process drives a single article to a terminal state. A compliance rule
// violation is a normal outcome: the article lands in processed with
// zenCompliant=false and a fixed reason. Only unexpected faults, store
// failures included, move the article to the error state.
func (p *Processor) Process(ctx context.Context, article *domain.Article) error {
	if err := p.store.UpdateArticleStatus(ctx, article.ID, domain.StatusProcessing); err != nil {
		return p.fail(ctx, article.ID, err)
	}

	if p.delay > 0 {
		p.sleep(p.delay)
	}

	res := compliance.Check(article)
	if err := p.store.MarkArticleProcessed(ctx, article.ID, res.Compliant, res.Reason); err != nil {
		return p.fail(ctx, article.ID, err)
	}

	if res.Compliant {
		lgr.Printf("[DEBUG] article processed, zen compliant: %s", article.Link)
	} else {
		lgr.Printf("[INFO] article processed, not compliant (%s): %s", res.Reason, article.Link)
	}
	return nil
}

// fail moves the article to the terminal error state so it is never left
// stuck in pending or processing
func (p *Processor) fail(ctx context.Context, id string, cause error) error {
	if err := p.store.MarkArticleError(ctx, id, cause.Error()); err != nil {
		lgr.Printf("[ERROR] failed to mark article %s as errored: %v", id, err)
	}
	return cause
}
