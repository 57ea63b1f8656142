package domain

import "time"

// FeedConfig describes the source feed and the metadata of the regenerated
// Zen feed. Exactly one active config is expected at any time.
type FeedConfig struct {
	ID            string     `json:"id"`
	SourceURL     string     `json:"sourceUrl"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	SiteLink      string     `json:"siteLink"`
	Language      string     `json:"language"`
	CheckInterval int        `json:"checkInterval"` // minutes
	IsActive      bool       `json:"isActive"`
	LastChecked   *time.Time `json:"lastChecked,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// ProcessingStats is a derived aggregate over the article set, always
// recomputable from storage and never independently authoritative.
type ProcessingStats struct {
	TotalArticles     int        `json:"totalArticles"`
	ProcessedArticles int        `json:"processedArticles"`
	ZenCompliant      int        `json:"zenCompliantArticles"`
	ErrorCount        int        `json:"errorCount"`
	LastUpdated       *time.Time `json:"lastUpdated,omitempty"`
}
