package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize_AllowedTagsPreserved(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "paragraph with inline formatting",
			input: "<p>Hello <strong>world</strong> and <em>more</em></p>",
			want:  "<p>Hello <strong>world</strong> and <em>more</em></p>",
		},
		{
			name:  "anchor keeps href untouched",
			input: `<p><a href="https://example.com/page?a=1&amp;b=2">link</a></p>`,
			want:  `<p><a href="https://example.com/page?a=1&amp;b=2">link</a></p>`,
		},
		{
			name:  "image keeps src and alt",
			input: `<p><img src="/pic.jpg" alt="pic"/></p>`,
			want:  `<p><img src="/pic.jpg" alt="pic"/></p>`,
		},
		{
			name:  "headings and lists",
			input: "<h2>Title</h2><ul><li>one</li><li>two</li></ul><blockquote>q</blockquote>",
			want:  "<h2>Title</h2><ul><li>one</li><li>two</li></ul><blockquote>q</blockquote>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestSanitize_DisallowedReplacedByText(t *testing.T) {
	got := Sanitize("<div>hello</div>")
	assert.Equal(t, "hello", got)
	assert.NotContains(t, got, "<div>")

	got = Sanitize("<p>before</p><section><span>inside</span> tail</section>")
	assert.Equal(t, "<p>before</p>inside tail", got)
}

func TestSanitize_DisallowedWrapperFlattensChildren(t *testing.T) {
	// allowed markup nested inside a disallowed wrapper collapses to text
	got := Sanitize("<div><p><b>x</b>y</p></div>")
	assert.Equal(t, "xy", got)
}

func TestSanitize_EmptyDisallowedRemoved(t *testing.T) {
	got := Sanitize("<p>keep</p><div>   </div>")
	assert.Equal(t, "<p>keep</p>", got)
}

func TestSanitize_ScriptAndStyleDropped(t *testing.T) {
	got := Sanitize(`<p>text</p><script>alert("xss")</script><style>p{color:red}</style>`)
	assert.Equal(t, "<p>text</p>", got)
	assert.NotContains(t, got, "alert")
	assert.NotContains(t, got, "color")
}

func TestSanitize_ScriptInsideDisallowedContributesNoText(t *testing.T) {
	got := Sanitize(`<div>visible<script>var hidden = 1;</script></div>`)
	assert.Equal(t, "visible", got)
	assert.NotContains(t, got, "hidden")
}

func TestSanitize_Empty(t *testing.T) {
	assert.Equal(t, "", Sanitize(""))
}

func TestSanitize_MalformedInput(t *testing.T) {
	// html parser tolerates broken fragments, output must never fail
	got := Sanitize("<p>unclosed <b>bold")
	assert.Contains(t, got, "unclosed")
	assert.Contains(t, got, "bold")

	got = Sanitize("just plain text")
	assert.Equal(t, "just plain text", got)
}

func TestSanitize_TextEscaping(t *testing.T) {
	got := Sanitize("<p>a &amp; b</p>")
	assert.Equal(t, "<p>a &amp; b</p>", got)
}

func TestStripTags(t *testing.T) {
	assert.Equal(t, "hello world", StripTags("<p>hello <b>world</b></p>"))
	assert.Equal(t, "plain", StripTags("plain"))
}

func TestSanitize_LargeNested(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 50; i++ {
		sb.WriteString("<article><p>chunk</p></article>")
	}
	got := Sanitize(sb.String())
	assert.NotContains(t, got, "article")
	assert.Contains(t, got, "chunk")
}
