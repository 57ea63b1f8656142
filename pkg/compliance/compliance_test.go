package compliance

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Chernika535/Zen-RSS-pro/pkg/domain"
)

func TestCheck_Boundaries(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		content   string
		compliant bool
		reason    string
	}{
		{
			name:      "title of 9 characters fails",
			title:     strings.Repeat("t", 9),
			content:   strings.Repeat("c", 100),
			compliant: false,
			reason:    ReasonTitleTooShort,
		},
		{
			name:      "title of 10 and content of 80 passes",
			title:     strings.Repeat("t", 10),
			content:   strings.Repeat("c", 80),
			compliant: true,
		},
		{
			name:      "content of 79 fails",
			title:     strings.Repeat("t", 10),
			content:   strings.Repeat("c", 79),
			compliant: false,
			reason:    ReasonContentTooShort,
		},
		{
			name:      "content of 50000 passes",
			title:     strings.Repeat("t", 10),
			content:   strings.Repeat("c", 50000),
			compliant: true,
		},
		{
			name:      "content of 50001 fails",
			title:     strings.Repeat("t", 10),
			content:   strings.Repeat("c", 50001),
			compliant: false,
			reason:    ReasonContentTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Check(&domain.Article{Title: tt.title, Content: tt.content})
			assert.Equal(t, tt.compliant, res.Compliant)
			assert.Equal(t, tt.reason, res.Reason)
		})
	}
}

func TestCheck_CountsRunesNotBytes(t *testing.T) {
	// cyrillic title of 10 characters is 20 bytes but still passes
	res := Check(&domain.Article{
		Title:   "Технология",
		Content: strings.Repeat("текст из десяти байт ", 10),
	})
	assert.True(t, res.Compliant)
}

func TestCheck_IsPure(t *testing.T) {
	a := &domain.Article{Title: "short", Content: "tiny"}
	before := *a
	_ = Check(a)
	assert.Equal(t, before, *a)
}
