// Package feed fetches and parses source RSS/Atom feeds and serializes the
// regenerated Zen feed.
package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/Chernika535/Zen-RSS-pro/pkg/domain"
)

// FetchError covers both transport failures and malformed feed documents.
// The whole fetch cycle aborts on it, unlike per-item failures.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch feed %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Feed is a parsed source feed
type Feed struct {
	Title       string
	Description string
	Link        string
	Items       []Item
}

// Item is a single parsed feed entry before any transformation
type Item struct {
	Title       string
	Link        string
	Author      string
	Published   time.Time
	Description string
	Content     string
	Categories  []string
}

// Parser fetches and parses RSS/Atom feeds
type Parser struct {
	client    *http.Client
	userAgent string
}

// NewParser creates a new feed parser
func NewParser(timeout time.Duration, userAgent string) *Parser {
	return &Parser{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
	}
}

// Parse fetches and parses a feed from the given URL. Any failure, transport
// or parse, is reported as a *FetchError.
func (p *Parser) Parse(ctx context.Context, url string) (*Feed, error) {
	body, err := p.fetch(ctx, url)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer body.Close()

	parser := gofeed.NewParser()
	parsed, err := parser.Parse(body)
	if err != nil {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("parse feed: %w", err)}
	}

	result := &Feed{
		Title:       parsed.Title,
		Description: parsed.Description,
		Link:        parsed.Link,
		Items:       make([]Item, 0, len(parsed.Items)),
	}

	for _, item := range parsed.Items {
		parsedItem := Item{
			Title:       item.Title,
			Link:        item.Link,
			Description: item.Description,
			Content:     item.Content,
			Categories:  item.Categories,
		}

		// set author with the Unknown sentinel fallback
		if item.Author != nil && item.Author.Name != "" {
			parsedItem.Author = item.Author.Name
		} else {
			parsedItem.Author = domain.UnknownAuthor
		}

		// set published time
		if item.PublishedParsed != nil {
			parsedItem.Published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			parsedItem.Published = *item.UpdatedParsed
		}

		result.Items = append(result.Items, parsedItem)
	}

	return result, nil
}

// fetch retrieves content from a URL
func (p *Parser) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", p.userAgent)
	addBrowserHeaders(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}
