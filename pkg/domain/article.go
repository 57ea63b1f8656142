package domain

import "time"

// Status represents the processing lifecycle state of an article
type Status string

// article lifecycle states, pending -> processing -> processed | error
const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusProcessed  Status = "processed"
	StatusError      Status = "error"
)

// UnknownAuthor is the sentinel used when the source feed carries no author
const UnknownAuthor = "Unknown"

// Article represents a single feed entry prepared for Zen publishing
type Article struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Link         string     `json:"link"`
	Author       string     `json:"author"`
	PubDate      time.Time  `json:"pubDate"`
	Categories   []string   `json:"category"`
	Description  string     `json:"description"`
	Content      string     `json:"content"`
	Images       []string   `json:"images"`
	Status       Status     `json:"status"`
	ErrorMessage string     `json:"errorMessage,omitempty"`
	ZenCompliant bool       `json:"zenCompliant"`
	ProcessedAt  *time.Time `json:"processedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// Terminal reports whether the article reached a final processing state
func (s Status) Terminal() bool {
	return s == StatusProcessed || s == StatusError
}
