package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Chernika535/Zen-RSS-pro/pkg/domain"
)

// ConfigRepository handles feed configuration persistence
type ConfigRepository struct {
	db *sqlx.DB
}

// configSQL represents a feed_config row for SQL operations
type configSQL struct {
	ID            string     `db:"id"`
	SourceURL     string     `db:"source_url"`
	Title         string     `db:"title"`
	Description   string     `db:"description"`
	SiteLink      string     `db:"site_link"`
	Language      string     `db:"language"`
	CheckInterval int        `db:"check_interval"`
	IsActive      bool       `db:"is_active"`
	LastChecked   *time.Time `db:"last_checked"`
	CreatedAt     time.Time  `db:"created_at"`
}

// NewConfigRepository creates a new config repository
func NewConfigRepository(database *sqlx.DB) *ConfigRepository {
	return &ConfigRepository{db: database}
}

// CreateConfig inserts a feed configuration. ID and CreatedAt are assigned
// when unset.
func (r *ConfigRepository) CreateConfig(ctx context.Context, cfg *domain.FeedConfig) error {
	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
	}
	if cfg.CreatedAt.IsZero() {
		cfg.CreatedAt = time.Now().UTC()
	}
	if cfg.Language == "" {
		cfg.Language = "ru"
	}
	if cfg.CheckInterval == 0 {
		cfg.CheckInterval = 30
	}

	query := `
		INSERT INTO feed_config (
			id, source_url, title, description, site_link, language,
			check_interval, is_active, created_at
		) VALUES (
			:id, :source_url, :title, :description, :site_link, :language,
			:check_interval, :is_active, :created_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, toConfigSQL(cfg)); err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	return nil
}

// GetConfig returns the single feed configuration regardless of its active
// state. A deactivated config stays retrievable and editable, callers that
// care about activation check IsActive themselves.
func (r *ConfigRepository) GetConfig(ctx context.Context) (*domain.FeedConfig, error) {
	var row configSQL
	err := r.db.GetContext(ctx, &row,
		"SELECT * FROM feed_config ORDER BY created_at LIMIT 1")
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("feed config: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get config: %w", err)
	}
	return toDomainConfig(&row), nil
}

// HasConfig reports whether any feed configuration exists, active or not
func (r *ConfigRepository) HasConfig(ctx context.Context) (bool, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM feed_config"); err != nil {
		return false, fmt.Errorf("count configs: %w", err)
	}
	return count > 0, nil
}

// UpdateConfig replaces the mutable fields of a configuration by id
func (r *ConfigRepository) UpdateConfig(ctx context.Context, cfg *domain.FeedConfig) error {
	query := `
		UPDATE feed_config
		SET source_url = :source_url,
		    title = :title,
		    description = :description,
		    site_link = :site_link,
		    language = :language,
		    check_interval = :check_interval,
		    is_active = :is_active
		WHERE id = :id
	`
	res, err := r.db.NamedExecContext(ctx, query, toConfigSQL(cfg))
	if err != nil {
		return fmt.Errorf("update config: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("feed config %s: %w", cfg.ID, ErrNotFound)
	}
	return nil
}

// TouchLastChecked stamps the completion of a fetch cycle
func (r *ConfigRepository) TouchLastChecked(ctx context.Context, id string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		res, err := r.db.ExecContext(ctx,
			"UPDATE feed_config SET last_checked = ? WHERE id = ?", time.Now().UTC(), id)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("touch last checked: %w", err)}
		}

		n, err := res.RowsAffected()
		if err != nil {
			return &criticalError{err: fmt.Errorf("rows affected: %w", err)}
		}
		if n == 0 {
			return &criticalError{err: fmt.Errorf("feed config %s: %w", id, ErrNotFound)}
		}
		return nil
	})
}

func toConfigSQL(cfg *domain.FeedConfig) *configSQL {
	return &configSQL{
		ID:            cfg.ID,
		SourceURL:     cfg.SourceURL,
		Title:         cfg.Title,
		Description:   cfg.Description,
		SiteLink:      cfg.SiteLink,
		Language:      cfg.Language,
		CheckInterval: cfg.CheckInterval,
		IsActive:      cfg.IsActive,
		LastChecked:   cfg.LastChecked,
		CreatedAt:     cfg.CreatedAt,
	}
}

func toDomainConfig(row *configSQL) *domain.FeedConfig {
	return &domain.FeedConfig{
		ID:            row.ID,
		SourceURL:     row.SourceURL,
		Title:         row.Title,
		Description:   row.Description,
		SiteLink:      row.SiteLink,
		Language:      row.Language,
		CheckInterval: row.CheckInterval,
		IsActive:      row.IsActive,
		LastChecked:   row.LastChecked,
		CreatedAt:     row.CreatedAt,
	}
}
