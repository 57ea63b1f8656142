// Package sanitize reduces raw feed HTML to the markup subset accepted by Zen.
package sanitize

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// allowedTags is the Zen markup allowlist, everything else is flattened to text
var allowedTags = map[string]struct{}{
	"p": {}, "br": {}, "strong": {}, "em": {}, "i": {}, "b": {}, "a": {}, "img": {},
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
	"ul": {}, "ol": {}, "li": {}, "blockquote": {},
}

var tagRe = regexp.MustCompile(`<[^>]*>`)

// Sanitize rewrites an HTML fragment keeping only allowlisted elements.
// Allowed elements keep their attributes untouched. Disallowed elements are
// replaced by their flattened text content when non-blank, otherwise dropped.
// Script and style elements are removed together with their text. Malformed
// input falls back to a brute-force tag strip instead of failing.
func Sanitize(raw string) string {
	if raw == "" {
		return ""
	}

	doc, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return StripTags(raw)
	}

	body := findBody(doc)
	if body == nil {
		return StripTags(raw)
	}

	// rebuild the tree into a fresh container instead of mutating in place
	clean := &html.Node{Type: html.ElementNode, Data: "div"}
	rebuild(clean, body)

	var sb strings.Builder
	for c := clean.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&sb, c); err != nil {
			return StripTags(raw)
		}
	}
	return sb.String()
}

// StripTags removes all markup from the string, the fallback for unparseable input
func StripTags(raw string) string {
	return tagRe.ReplaceAllString(raw, "")
}

// rebuild copies allowed nodes from src into dst, collapsing the rest
func rebuild(dst, src *html.Node) {
	for c := src.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			dst.AppendChild(&html.Node{Type: html.TextNode, Data: c.Data})
		case html.ElementNode:
			name := strings.ToLower(c.Data)
			if name == "script" || name == "style" {
				continue
			}
			if _, ok := allowedTags[name]; ok {
				clone := &html.Node{
					Type:     html.ElementNode,
					Data:     c.Data,
					DataAtom: c.DataAtom,
					Attr:     append([]html.Attribute(nil), c.Attr...),
				}
				rebuild(clone, c)
				dst.AppendChild(clone)
				continue
			}
			if text := flattenText(c); strings.TrimSpace(text) != "" {
				dst.AppendChild(&html.Node{Type: html.TextNode, Data: text})
			}
		}
	}
}

// flattenText collects the text content of a subtree, skipping script and style
func flattenText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode {
			name := strings.ToLower(node.Data)
			if name == "script" || name == "style" {
				return
			}
		}
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func findBody(doc *html.Node) *html.Node {
	var body *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if body != nil {
			return
		}
		if n.Type == html.ElementNode && n.Data == "body" {
			body = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return body
}
