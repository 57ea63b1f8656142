package proc

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chernika535/Zen-RSS-pro/pkg/compliance"
	"github.com/Chernika535/Zen-RSS-pro/pkg/domain"
	"github.com/Chernika535/Zen-RSS-pro/pkg/proc/mocks"
)

func compliantArticle() *domain.Article {
	return &domain.Article{
		ID:      "a1",
		Title:   "a perfectly reasonable title",
		Link:    "https://example.com/post/1",
		Content: "<p>" + strings.Repeat("content ", 20) + "</p>",
		Status:  domain.StatusPending,
	}
}

func TestProcessor_Process(t *testing.T) {
	t.Run("compliant article lands in processed", func(t *testing.T) {
		store := &mocks.StoreMock{
			UpdateArticleStatusFunc: func(ctx context.Context, id string, status domain.Status) error {
				return nil
			},
			MarkArticleProcessedFunc: func(ctx context.Context, id string, compliant bool, reason string) error {
				return nil
			},
		}

		p := NewProcessor(store, 0)
		err := p.Process(context.Background(), compliantArticle())
		require.NoError(t, err)

		require.Len(t, store.UpdateArticleStatusCalls(), 1)
		assert.Equal(t, domain.StatusProcessing, store.UpdateArticleStatusCalls()[0].Status)

		require.Len(t, store.MarkArticleProcessedCalls(), 1)
		call := store.MarkArticleProcessedCalls()[0]
		assert.Equal(t, "a1", call.ID)
		assert.True(t, call.Compliant)
		assert.Empty(t, call.Reason)
	})

	t.Run("rule violation is a normal processed outcome", func(t *testing.T) {
		store := &mocks.StoreMock{
			UpdateArticleStatusFunc: func(ctx context.Context, id string, status domain.Status) error {
				return nil
			},
			MarkArticleProcessedFunc: func(ctx context.Context, id string, compliant bool, reason string) error {
				return nil
			},
		}

		article := compliantArticle()
		article.Title = "short"

		p := NewProcessor(store, 0)
		err := p.Process(context.Background(), article)
		require.NoError(t, err)

		require.Len(t, store.MarkArticleProcessedCalls(), 1)
		call := store.MarkArticleProcessedCalls()[0]
		assert.False(t, call.Compliant)
		assert.Equal(t, compliance.ReasonTitleTooShort, call.Reason)
		assert.Empty(t, store.MarkArticleErrorCalls(), "rule violations must not error the article")
	})

	t.Run("store failure on transition moves article to error", func(t *testing.T) {
		boom := errors.New("db gone")
		store := &mocks.StoreMock{
			UpdateArticleStatusFunc: func(ctx context.Context, id string, status domain.Status) error {
				return boom
			},
			MarkArticleErrorFunc: func(ctx context.Context, id string, errMsg string) error {
				return nil
			},
		}

		p := NewProcessor(store, 0)
		err := p.Process(context.Background(), compliantArticle())
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)

		require.Len(t, store.MarkArticleErrorCalls(), 1)
		assert.Equal(t, "db gone", store.MarkArticleErrorCalls()[0].ErrMsg)
	})

	t.Run("store failure on completion moves article to error", func(t *testing.T) {
		boom := errors.New("write failed")
		store := &mocks.StoreMock{
			UpdateArticleStatusFunc: func(ctx context.Context, id string, status domain.Status) error {
				return nil
			},
			MarkArticleProcessedFunc: func(ctx context.Context, id string, compliant bool, reason string) error {
				return boom
			},
			MarkArticleErrorFunc: func(ctx context.Context, id string, errMsg string) error {
				return nil
			},
		}

		p := NewProcessor(store, 0)
		err := p.Process(context.Background(), compliantArticle())
		assert.ErrorIs(t, err, boom)
		require.Len(t, store.MarkArticleErrorCalls(), 1)
	})

	t.Run("configured delay is applied between states", func(t *testing.T) {
		store := &mocks.StoreMock{
			UpdateArticleStatusFunc: func(ctx context.Context, id string, status domain.Status) error {
				return nil
			},
			MarkArticleProcessedFunc: func(ctx context.Context, id string, compliant bool, reason string) error {
				return nil
			},
		}

		var slept time.Duration
		p := NewProcessor(store, 2*time.Second)
		p.sleep = func(d time.Duration) { slept = d }

		err := p.Process(context.Background(), compliantArticle())
		require.NoError(t, err)
		assert.Equal(t, 2*time.Second, slept)
	})

	t.Run("zero delay skips sleeping", func(t *testing.T) {
		store := &mocks.StoreMock{
			UpdateArticleStatusFunc: func(ctx context.Context, id string, status domain.Status) error {
				return nil
			},
			MarkArticleProcessedFunc: func(ctx context.Context, id string, compliant bool, reason string) error {
				return nil
			},
		}

		p := NewProcessor(store, 0)
		p.sleep = func(time.Duration) { t.Fatal("sleep must not be called with zero delay") }

		err := p.Process(context.Background(), compliantArticle())
		require.NoError(t, err)
	})
}
