package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chernika535/Zen-RSS-pro/pkg/domain"
)

func setupTestRepos(t *testing.T) *Repositories {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db")
	repos, err := NewRepositories(context.Background(), Config{DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })

	return repos
}

func testArticle(link string) *domain.Article {
	return &domain.Article{
		Title:      "Test Article Title",
		Link:       link,
		Author:     "Author",
		PubDate:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Categories: []string{"Наука"},
		Content:    "<p>content</p>",
		Images:     []string{"https://x.com/a.jpg"},
		Status:     domain.StatusPending,
	}
}

func TestArticleRepository_CreateAndGet(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	article := testArticle("https://x.com/post1")
	require.NoError(t, repos.Article.CreateArticle(ctx, article))
	require.NotEmpty(t, article.ID)
	require.False(t, article.CreatedAt.IsZero())

	got, err := repos.Article.GetArticle(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, article.Link, got.Link)
	assert.Equal(t, []string{"Наука"}, got.Categories)
	assert.Equal(t, []string{"https://x.com/a.jpg"}, got.Images)
	assert.Equal(t, domain.StatusPending, got.Status)
	assert.Nil(t, got.ProcessedAt)

	byLink, err := repos.Article.GetArticleByLink(ctx, article.Link)
	require.NoError(t, err)
	assert.Equal(t, article.ID, byLink.ID)
}

func TestArticleRepository_NotFound(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	_, err := repos.Article.GetArticle(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repos.Article.GetArticleByLink(ctx, "https://x.com/none")
	assert.ErrorIs(t, err, ErrNotFound)

	err = repos.Article.MarkArticleError(ctx, "missing", "boom")
	assert.ErrorIs(t, err, ErrNotFound)

	err = repos.Article.ResetArticle(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestArticleRepository_DuplicateLink(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	first := testArticle("https://x.com/dup")
	require.NoError(t, repos.Article.CreateArticle(ctx, first))

	second := testArticle("https://x.com/dup")
	err := repos.Article.CreateArticle(ctx, second)
	assert.ErrorIs(t, err, ErrDuplicate)

	articles, err := repos.Article.GetArticles(ctx)
	require.NoError(t, err)
	assert.Len(t, articles, 1)
}

func TestArticleRepository_OrderedByCreation(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	for i, link := range []string{"https://x.com/1", "https://x.com/2", "https://x.com/3"} {
		a := testArticle(link)
		a.CreatedAt = time.Date(2024, 5, 1, 12, i, 0, 0, time.UTC)
		require.NoError(t, repos.Article.CreateArticle(ctx, a))
	}

	articles, err := repos.Article.GetArticles(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 3)
	assert.Equal(t, "https://x.com/3", articles[0].Link)
	assert.Equal(t, "https://x.com/1", articles[2].Link)
}

func TestArticleRepository_Transitions(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	article := testArticle("https://x.com/flow")
	require.NoError(t, repos.Article.CreateArticle(ctx, article))

	require.NoError(t, repos.Article.UpdateArticleStatus(ctx, article.ID, domain.StatusProcessing))
	got, err := repos.Article.GetArticle(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusProcessing, got.Status)
	assert.Nil(t, got.ProcessedAt)

	require.NoError(t, repos.Article.MarkArticleProcessed(ctx, article.ID, true, ""))
	got, err = repos.Article.GetArticle(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusProcessed, got.Status)
	assert.True(t, got.ZenCompliant)
	assert.Empty(t, got.ErrorMessage)
	require.NotNil(t, got.ProcessedAt)

	// processed_at is stamped once and survives later transitions
	firstStamp := *got.ProcessedAt
	require.NoError(t, repos.Article.MarkArticleError(ctx, article.ID, "downstream fault"))
	got, err = repos.Article.GetArticle(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusError, got.Status)
	assert.Equal(t, "downstream fault", got.ErrorMessage)
	assert.False(t, got.ZenCompliant)
	require.NotNil(t, got.ProcessedAt)
	assert.Equal(t, firstStamp.Unix(), got.ProcessedAt.Unix())
}

func TestArticleRepository_NonCompliantProcessed(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	article := testArticle("https://x.com/nc")
	require.NoError(t, repos.Article.CreateArticle(ctx, article))
	require.NoError(t, repos.Article.MarkArticleProcessed(ctx, article.ID, false, "title too short"))

	got, err := repos.Article.GetArticle(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusProcessed, got.Status)
	assert.False(t, got.ZenCompliant)
	assert.Equal(t, "title too short", got.ErrorMessage)
}

func TestArticleRepository_Reset(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	article := testArticle("https://x.com/reset")
	require.NoError(t, repos.Article.CreateArticle(ctx, article))
	require.NoError(t, repos.Article.MarkArticleProcessed(ctx, article.ID, false, "content too short"))

	require.NoError(t, repos.Article.ResetArticle(ctx, article.ID))
	got, err := repos.Article.GetArticle(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, got.Status)
	assert.Empty(t, got.ErrorMessage)
	assert.False(t, got.ZenCompliant)
}

func TestArticleRepository_PartialUpdate(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	article := testArticle("https://x.com/patch")
	require.NoError(t, repos.Article.CreateArticle(ctx, article))

	status := domain.StatusError
	msg := "manual override"
	require.NoError(t, repos.Article.UpdateArticle(ctx, article.ID, ArticleUpdate{
		Status:       &status,
		ErrorMessage: &msg,
	}))

	got, err := repos.Article.GetArticle(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusError, got.Status)
	assert.Equal(t, "manual override", got.ErrorMessage)
	assert.NotNil(t, got.ProcessedAt) // terminal status stamps processed_at

	// empty update is a no-op, not an error
	require.NoError(t, repos.Article.UpdateArticle(ctx, article.ID, ArticleUpdate{}))

	err = repos.Article.UpdateArticle(ctx, "missing", ArticleUpdate{Status: &status})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestArticleRepository_Stats(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	stats, err := repos.Article.GetStats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalArticles)

	a1 := testArticle("https://x.com/s1")
	a2 := testArticle("https://x.com/s2")
	a3 := testArticle("https://x.com/s3")
	require.NoError(t, repos.Article.CreateArticle(ctx, a1))
	require.NoError(t, repos.Article.CreateArticle(ctx, a2))
	require.NoError(t, repos.Article.CreateArticle(ctx, a3))

	require.NoError(t, repos.Article.MarkArticleProcessed(ctx, a1.ID, true, ""))
	require.NoError(t, repos.Article.MarkArticleProcessed(ctx, a2.ID, false, "content too short"))
	require.NoError(t, repos.Article.MarkArticleError(ctx, a3.ID, "boom"))

	stats, err = repos.Article.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalArticles)
	assert.Equal(t, 2, stats.ProcessedArticles)
	assert.Equal(t, 1, stats.ZenCompliant)
	assert.Equal(t, 1, stats.ErrorCount)
}

func TestConfigRepository_CRUD(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	_, err := repos.Config.GetConfig(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	cfg := &domain.FeedConfig{
		SourceURL:   "https://source.example.com/feed.xml",
		Title:       "RSS to Zen Bridge",
		Description: "Automated RSS to Zen publishing",
		SiteLink:    "https://source.example.com",
		IsActive:    true,
	}
	require.NoError(t, repos.Config.CreateConfig(ctx, cfg))
	require.NotEmpty(t, cfg.ID)
	assert.Equal(t, "ru", cfg.Language)
	assert.Equal(t, 30, cfg.CheckInterval)

	got, err := repos.Config.GetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg.SourceURL, got.SourceURL)
	assert.Nil(t, got.LastChecked)

	got.Title = "Updated Title"
	got.CheckInterval = 15
	require.NoError(t, repos.Config.UpdateConfig(ctx, got))

	got, err = repos.Config.GetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Updated Title", got.Title)
	assert.Equal(t, 15, got.CheckInterval)
}

func TestConfigRepository_TouchLastChecked(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	cfg := &domain.FeedConfig{
		SourceURL: "https://source.example.com/feed.xml",
		Title:     "Bridge",
		SiteLink:  "https://source.example.com",
		IsActive:  true,
	}
	require.NoError(t, repos.Config.CreateConfig(ctx, cfg))
	require.NoError(t, repos.Config.TouchLastChecked(ctx, cfg.ID))

	got, err := repos.Config.GetConfig(ctx)
	require.NoError(t, err)
	require.NotNil(t, got.LastChecked)
	assert.WithinDuration(t, time.Now(), *got.LastChecked, 5*time.Second)

	err = repos.Config.TouchLastChecked(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConfigRepository_InactiveStillReturned(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	cfg := &domain.FeedConfig{
		SourceURL: "https://source.example.com/feed.xml",
		Title:     "Bridge",
		SiteLink:  "https://source.example.com",
		IsActive:  false,
	}
	require.NoError(t, repos.Config.CreateConfig(ctx, cfg))

	// a deactivated config must stay reachable, otherwise it could never
	// be reactivated through an update
	got, err := repos.Config.GetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg.ID, got.ID)
	assert.False(t, got.IsActive)

	got.IsActive = true
	require.NoError(t, repos.Config.UpdateConfig(ctx, got))

	got, err = repos.Config.GetConfig(ctx)
	require.NoError(t, err)
	assert.True(t, got.IsActive)
}

func TestConfigRepository_HasConfig(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	exists, err := repos.Config.HasConfig(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	// an inactive config still counts, seeding must not duplicate it
	cfg := &domain.FeedConfig{
		SourceURL: "https://source.example.com/feed.xml",
		Title:     "Bridge",
		SiteLink:  "https://source.example.com",
		IsActive:  false,
	}
	require.NoError(t, repos.Config.CreateConfig(ctx, cfg))

	exists, err = repos.Config.HasConfig(ctx)
	require.NoError(t, err)
	assert.True(t, exists)
}
