// Package compliance evaluates articles against Zen content rules.
package compliance

import (
	"unicode/utf8"

	"github.com/Chernika535/Zen-RSS-pro/pkg/domain"
)

// Zen content limits, measured in characters
const (
	MinTitleLen   = 10
	MinContentLen = 80
	MaxContentLen = 50000
)

// fixed human-readable rejection reasons
const (
	ReasonTitleTooShort   = "title too short for Zen: minimum 10 characters"
	ReasonContentTooShort = "content too short for Zen: minimum 80 characters"
	ReasonContentTooLong  = "content too long for Zen: maximum 50000 characters"
)

// Result holds the outcome of a compliance evaluation
type Result struct {
	Compliant bool
	Reason    string
}

// Check is a deterministic, pure evaluation of an article against Zen rules.
// It never errors: a rule violation is a normal result, not a failure.
func Check(article *domain.Article) Result {
	if utf8.RuneCountInString(article.Title) < MinTitleLen {
		return Result{Reason: ReasonTitleTooShort}
	}

	contentLen := utf8.RuneCountInString(article.Content)
	if contentLen < MinContentLen {
		return Result{Reason: ReasonContentTooShort}
	}
	if contentLen > MaxContentLen {
		return Result{Reason: ReasonContentTooLong}
	}

	return Result{Compliant: true}
}
