// Package images resolves and validates article image URLs against Zen rules.
package images

import (
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// allowedExts are the image extensions Zen accepts, matched case-insensitively
var allowedExts = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".webp": {},
}

// Extract collects absolute, extension-validated image URLs from the HTML
// content without touching the markup. Relative and scheme-relative sources
// are resolved against base. Images failing resolution or validation are
// silently skipped.
func Extract(content, base string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil
	}

	var result []string
	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		resolved, ok := Resolve(src, base)
		if !ok {
			return
		}
		result = append(result, resolved)
	})
	return result
}

// Rewrite re-validates images at render time: every img whose source fails
// resolution or validation is removed from the markup, the rest get their
// src rewritten to the absolute URL. Returns the rewritten markup and the
// surviving image URLs in document order.
func Rewrite(content, base string) (string, []string) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return content, nil
	}

	var result []string
	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		resolved, ok := Resolve(src, base)
		if !ok {
			sel.Remove()
			return
		}
		sel.SetAttr("src", resolved)
		result = append(result, resolved)
	})

	rewritten, err := doc.Find("body").Html()
	if err != nil {
		return content, result
	}
	return rewritten, result
}

// Resolve turns an image src into an absolute URL and validates it. A src is
// accepted when the resolved URL uses http or https and its path extension,
// query string aside, is one of jpg/jpeg/png/webp.
func Resolve(src, base string) (string, bool) {
	if src == "" {
		return "", false
	}

	u, err := url.Parse(src)
	if err != nil {
		return "", false
	}

	if !u.IsAbs() { // covers relative and scheme-relative sources
		if base == "" {
			return "", false
		}
		baseURL, err := url.Parse(base)
		if err != nil {
			return "", false
		}
		u = baseURL.ResolveReference(u)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}

	ext := strings.ToLower(path.Ext(u.Path))
	if _, ok := allowedExts[ext]; !ok {
		return "", false
	}

	return u.String(), true
}
