package feed

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Chernika535/Zen-RSS-pro/pkg/domain"
	"github.com/Chernika535/Zen-RSS-pro/pkg/images"
)

// generatorTag identifies the bridge in the channel metadata
const generatorTag = "RSS to Zen Bridge"

// RSS is the root element of the generated Zen feed
type RSS struct {
	XMLName   xml.Name    `xml:"rss"`
	Version   string      `xml:"version,attr"`
	ContentNS string      `xml:"xmlns:content,attr"`
	MediaNS   string      `xml:"xmlns:media,attr"`
	Channel   *RSSChannel `xml:"channel"`
}

// RSSChannel carries the output feed metadata from the configuration
type RSSChannel struct {
	Title         cdata      `xml:"title"`
	Link          string     `xml:"link"`
	Description   cdata      `xml:"description"`
	Language      string     `xml:"language"`
	LastBuildDate string     `xml:"lastBuildDate"`
	Generator     string     `xml:"generator"`
	Items         []*RSSItem `xml:"item"`
}

// RSSItem represents a single compliant article in the output feed
type RSSItem struct {
	Title       cdata       `xml:"title"`
	Link        string      `xml:"link"`
	PubDate     string      `xml:"pubDate"`
	Author      cdata       `xml:"author"`
	Categories  []cdata     `xml:"category"`
	Description cdata       `xml:"description"`
	Content     cdata       `xml:"content:encoded"`
	Enclosures  []Enclosure `xml:"enclosure"`
	GUID        string      `xml:"guid"`
}

// Enclosure references one validated article image
type Enclosure struct {
	URL  string `xml:"url,attr"`
	Type string `xml:"type,attr"`
}

// cdata wraps a string into a CDATA section on marshal
type cdata struct {
	Text string `xml:",cdata"`
}

// Generator builds the Zen RSS document from stored articles
type Generator struct {
	nowFn func() time.Time // injectable for test determinism
}

// NewGenerator creates a new feed generator
func NewGenerator() *Generator {
	return &Generator{nowFn: time.Now}
}

// Generate serializes the output feed: only processed, Zen-compliant articles
// are included, their images are re-resolved and re-validated at render time.
// A missing configuration is a hard error, zero compliant articles is not.
func (g *Generator) Generate(cfg *domain.FeedConfig, articles []*domain.Article) (string, error) {
	if cfg == nil {
		return "", fmt.Errorf("feed configuration not found")
	}

	items := make([]*RSSItem, 0, len(articles))
	for _, article := range articles {
		if article.Status != domain.StatusProcessed || !article.ZenCompliant {
			continue
		}
		items = append(items, g.convertArticle(article, cfg.SiteLink))
	}

	doc := &RSS{
		Version:   "2.0",
		ContentNS: "http://purl.org/rss/1.0/modules/content/",
		MediaNS:   "http://search.yahoo.com/mrss/",
		Channel: &RSSChannel{
			Title:         cdata{cfg.Title},
			Link:          cfg.SiteLink,
			Description:   cdata{cfg.Description},
			Language:      cfg.Language,
			LastBuildDate: g.nowFn().UTC().Format(http.TimeFormat),
			Generator:     generatorTag,
			Items:         items,
		},
	}

	output, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}

	return xml.Header + string(output), nil
}

// convertArticle builds an output item, stripping images that fail render-time
// validation from the markup rather than only omitting their enclosures
func (g *Generator) convertArticle(article *domain.Article, siteLink string) *RSSItem {
	base := article.Link
	if base == "" {
		base = siteLink
	}
	content, imgs := images.Rewrite(article.Content, base)

	enclosures := make([]Enclosure, 0, len(imgs))
	for _, u := range imgs {
		enclosures = append(enclosures, Enclosure{URL: u, Type: mimeType(u)})
	}

	cats := make([]cdata, 0, len(article.Categories))
	for _, c := range article.Categories {
		cats = append(cats, cdata{c})
	}

	return &RSSItem{
		Title:       cdata{article.Title},
		Link:        article.Link,
		PubDate:     article.PubDate.UTC().Format(http.TimeFormat),
		Author:      cdata{article.Author},
		Categories:  cats,
		Description: cdata{article.Description},
		Content:     cdata{content},
		Enclosures:  enclosures,
		GUID:        article.Link,
	}
}

// mimeType derives the enclosure MIME type from the image extension
func mimeType(url string) string {
	u := strings.ToLower(url)
	switch {
	case strings.HasSuffix(u, ".png"):
		return "image/png"
	case strings.HasSuffix(u, ".webp"):
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
