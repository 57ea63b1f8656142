package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Chernika535/Zen-RSS-pro/pkg/domain"
)

// ArticleRepository handles article persistence
type ArticleRepository struct {
	db *sqlx.DB
}

// articleSQL represents an article row for SQL operations
type articleSQL struct {
	ID           string      `db:"id"`
	Title        string      `db:"title"`
	Link         string      `db:"link"`
	Author       string      `db:"author"`
	PubDate      time.Time   `db:"pub_date"`
	Categories   stringsJSON `db:"categories"`
	Description  string      `db:"description"`
	Content      string      `db:"content"`
	Images       stringsJSON `db:"images"`
	Status       string      `db:"status"`
	ErrorMessage string      `db:"error_message"`
	ZenCompliant bool        `db:"zen_compliant"`
	ProcessedAt  *time.Time  `db:"processed_at"`
	CreatedAt    time.Time   `db:"created_at"`
}

// stringsJSON is a JSON array of strings for SQL operations
type stringsJSON []string

// Value implements driver.Valuer for database storage
func (s stringsJSON) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner for database retrieval
func (s *stringsJSON) Scan(value interface{}) error {
	if value == nil {
		*s = stringsJSON{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		*s = stringsJSON{}
		return nil
	}

	return json.Unmarshal(data, s)
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(database *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: database}
}

// CreateArticle inserts a new article. The link column is unique, inserting a
// known link returns ErrDuplicate. ID and CreatedAt are assigned when unset.
func (r *ArticleRepository) CreateArticle(ctx context.Context, article *domain.Article) error {
	if article.ID == "" {
		article.ID = uuid.NewString()
	}
	if article.CreatedAt.IsZero() {
		article.CreatedAt = time.Now().UTC()
	}
	if article.Status == "" {
		article.Status = domain.StatusPending
	}

	row := toArticleSQL(article)
	query := `
		INSERT INTO articles (
			id, title, link, author, pub_date, categories, description,
			content, images, status, error_message, zen_compliant, created_at
		) VALUES (
			:id, :title, :link, :author, :pub_date, :categories, :description,
			:content, :images, :status, :error_message, :zen_compliant, :created_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create article %s: %w", article.Link, ErrDuplicate)
		}
		return fmt.Errorf("create article: %w", err)
	}
	return nil
}

// GetArticle retrieves an article by ID
func (r *ArticleRepository) GetArticle(ctx context.Context, id string) (*domain.Article, error) {
	var row articleSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM articles WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("article %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	return toDomainArticle(&row), nil
}

// GetArticleByLink retrieves an article by its source link, the dedup key
func (r *ArticleRepository) GetArticleByLink(ctx context.Context, link string) (*domain.Article, error) {
	var row articleSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM articles WHERE link = ?", link)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("article with link %s: %w", link, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get article by link: %w", err)
	}
	return toDomainArticle(&row), nil
}

// GetArticles retrieves all articles, most recently created first
func (r *ArticleRepository) GetArticles(ctx context.Context) ([]*domain.Article, error) {
	var rows []articleSQL
	err := r.db.SelectContext(ctx, &rows, "SELECT * FROM articles ORDER BY created_at DESC, rowid DESC")
	if err != nil {
		return nil, fmt.Errorf("get articles: %w", err)
	}

	articles := make([]*domain.Article, len(rows))
	for i := range rows {
		articles[i] = toDomainArticle(&rows[i])
	}
	return articles, nil
}

// UpdateArticleStatus sets the article status without touching anything else
func (r *ArticleRepository) UpdateArticleStatus(ctx context.Context, id string, status domain.Status) error {
	res, err := r.db.ExecContext(ctx, "UPDATE articles SET status = ? WHERE id = ?", status, id)
	if err != nil {
		return fmt.Errorf("update article status: %w", err)
	}
	return requireRow(res, id)
}

// MarkArticleProcessed moves the article to the terminal processed state with
// the compliance verdict. processed_at is stamped on the first terminal
// transition and never overwritten after that.
func (r *ArticleRepository) MarkArticleProcessed(ctx context.Context, id string, compliant bool, reason string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			UPDATE articles
			SET status = ?,
			    zen_compliant = ?,
			    error_message = ?,
			    processed_at = COALESCE(processed_at, ?)
			WHERE id = ?
		`
		res, err := r.db.ExecContext(ctx, query, domain.StatusProcessed, compliant, reason, time.Now().UTC(), id)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("mark article processed: %w", err)}
		}
		if err := requireRow(res, id); err != nil {
			return &criticalError{err: err}
		}
		return nil
	})
}

// MarkArticleError moves the article to the terminal error state
func (r *ArticleRepository) MarkArticleError(ctx context.Context, id, errMsg string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			UPDATE articles
			SET status = ?,
			    zen_compliant = 0,
			    error_message = ?,
			    processed_at = COALESCE(processed_at, ?)
			WHERE id = ?
		`
		res, err := r.db.ExecContext(ctx, query, domain.StatusError, errMsg, time.Now().UTC(), id)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("mark article error: %w", err)}
		}
		if err := requireRow(res, id); err != nil {
			return &criticalError{err: err}
		}
		return nil
	})
}

// ResetArticle returns the article to pending for reprocessing, clearing the
// error message and the compliance verdict
func (r *ArticleRepository) ResetArticle(ctx context.Context, id string) error {
	query := `
		UPDATE articles
		SET status = ?, error_message = '', zen_compliant = 0
		WHERE id = ?
	`
	res, err := r.db.ExecContext(ctx, query, domain.StatusPending, id)
	if err != nil {
		return fmt.Errorf("reset article: %w", err)
	}
	return requireRow(res, id)
}

// ArticleUpdate describes a partial article update, nil fields stay untouched
type ArticleUpdate struct {
	Status       *domain.Status
	ErrorMessage *string
	ZenCompliant *bool
}

// UpdateArticle applies a partial update. Setting a terminal status stamps
// processed_at the same way the state machine transitions do.
func (r *ArticleRepository) UpdateArticle(ctx context.Context, id string, upd ArticleUpdate) error {
	sets := make([]string, 0, 4)
	args := make([]interface{}, 0, 5)

	if upd.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *upd.Status)
		if upd.Status.Terminal() {
			sets = append(sets, "processed_at = COALESCE(processed_at, ?)")
			args = append(args, time.Now().UTC())
		}
	}
	if upd.ErrorMessage != nil {
		sets = append(sets, "error_message = ?")
		args = append(args, *upd.ErrorMessage)
	}
	if upd.ZenCompliant != nil {
		sets = append(sets, "zen_compliant = ?")
		args = append(args, *upd.ZenCompliant)
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := "UPDATE articles SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	return requireRow(res, id)
}

// GetStats recomputes processing counters from the article set
func (r *ArticleRepository) GetStats(ctx context.Context) (*domain.ProcessingStats, error) {
	var row struct {
		Total     int `db:"total"`
		Processed int `db:"processed"`
		Compliant int `db:"compliant"`
		Errors    int `db:"errors"`
	}
	query := `
		SELECT COUNT(*) AS total,
		       COALESCE(SUM(status = 'processed'), 0) AS processed,
		       COALESCE(SUM(zen_compliant), 0) AS compliant,
		       COALESCE(SUM(status = 'error'), 0) AS errors
		FROM articles
	`
	if err := r.db.GetContext(ctx, &row, query); err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}

	return &domain.ProcessingStats{
		TotalArticles:     row.Total,
		ProcessedArticles: row.Processed,
		ZenCompliant:      row.Compliant,
		ErrorCount:        row.Errors,
	}, nil
}

// requireRow converts a zero-rows-affected result into ErrNotFound
func requireRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("article %s: %w", id, ErrNotFound)
	}
	return nil
}

func toArticleSQL(a *domain.Article) *articleSQL {
	return &articleSQL{
		ID:           a.ID,
		Title:        a.Title,
		Link:         a.Link,
		Author:       a.Author,
		PubDate:      a.PubDate,
		Categories:   stringsJSON(a.Categories),
		Description:  a.Description,
		Content:      a.Content,
		Images:       stringsJSON(a.Images),
		Status:       string(a.Status),
		ErrorMessage: a.ErrorMessage,
		ZenCompliant: a.ZenCompliant,
		ProcessedAt:  a.ProcessedAt,
		CreatedAt:    a.CreatedAt,
	}
}

func toDomainArticle(row *articleSQL) *domain.Article {
	return &domain.Article{
		ID:           row.ID,
		Title:        row.Title,
		Link:         row.Link,
		Author:       row.Author,
		PubDate:      row.PubDate,
		Categories:   row.Categories,
		Description:  row.Description,
		Content:      row.Content,
		Images:       row.Images,
		Status:       domain.Status(row.Status),
		ErrorMessage: row.ErrorMessage,
		ZenCompliant: row.ZenCompliant,
		ProcessedAt:  row.ProcessedAt,
		CreatedAt:    row.CreatedAt,
	}
}
