package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		src  string
		base string
		want string
		ok   bool
	}{
		{name: "absolute passes through", src: "https://cdn.example.com/a.jpg", base: "https://x.com/post", want: "https://cdn.example.com/a.jpg", ok: true},
		{name: "relative resolved against base", src: "photo.PNG", base: "https://x.com/post", want: "https://x.com/photo.PNG", ok: true},
		{name: "rooted path resolved against base", src: "/img/b.jpeg", base: "https://x.com/post/deep", want: "https://x.com/img/b.jpeg", ok: true},
		{name: "scheme relative", src: "//cdn.x.com/c.webp", base: "https://x.com/post", want: "https://cdn.x.com/c.webp", ok: true},
		{name: "disallowed extension", src: "/a.gif", base: "https://x.com/post", ok: false},
		{name: "no extension", src: "https://x.com/image", base: "", ok: false},
		{name: "query string stripped before check", src: "https://x.com/a.jpg?w=300&h=200", base: "", want: "https://x.com/a.jpg?w=300&h=200", ok: true},
		{name: "non-http scheme", src: "ftp://x.com/a.jpg", base: "", ok: false},
		{name: "empty src", src: "", base: "https://x.com", ok: false},
		{name: "relative without base", src: "a.jpg", base: "", ok: false},
		{name: "malformed base", src: "a.jpg", base: "://broken", ok: false},
		{name: "malformed src", src: "http://[::1]:bad/a.jpg", base: "https://x.com", ok: false},
		{name: "uppercase extension", src: "https://x.com/A.JPEG", base: "", want: "https://x.com/A.JPEG", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.src, tt.base)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestExtract(t *testing.T) {
	content := `<p>text</p>` +
		`<img src="/a.gif">` +
		`<img src="photo.PNG">` +
		`<img src="https://cdn.x.com/pic.jpg">` +
		`<img src="">` +
		`<img alt="no src">`

	got := Extract(content, "https://x.com/post")
	assert.Equal(t, []string{"https://x.com/photo.PNG", "https://cdn.x.com/pic.jpg"}, got)
}

func TestExtract_DoesNotNeedBaseForAbsolute(t *testing.T) {
	got := Extract(`<img src="https://x.com/a.webp">`, "")
	assert.Equal(t, []string{"https://x.com/a.webp"}, got)
}

func TestExtract_NoImages(t *testing.T) {
	assert.Empty(t, Extract("<p>nothing here</p>", "https://x.com"))
	assert.Empty(t, Extract("", "https://x.com"))
}

func TestRewrite(t *testing.T) {
	content := `<p>intro</p><img src="pic.jpg"/><img src="/bad.gif"/><p>outro</p>`

	rewritten, imgs := Rewrite(content, "https://x.com/post")
	require.Equal(t, []string{"https://x.com/pic.jpg"}, imgs)
	assert.Contains(t, rewritten, `<img src="https://x.com/pic.jpg"/>`)
	assert.NotContains(t, rewritten, "bad.gif")
	assert.Contains(t, rewritten, "<p>intro</p>")
	assert.Contains(t, rewritten, "<p>outro</p>")
}

func TestRewrite_AllImagesInvalid(t *testing.T) {
	rewritten, imgs := Rewrite(`<p>text</p><img src="/a.svg"/>`, "https://x.com")
	assert.Empty(t, imgs)
	assert.NotContains(t, rewritten, "img")
	assert.Contains(t, rewritten, "<p>text</p>")
}
