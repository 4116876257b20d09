// Package length measures and bounds copy length in full-width-equivalent
// characters and drives the bounded expand/condense refinement loop.
package length

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/masashitakano917-maker/apt-explain-sub000/internal/jptext"
)

// maxRefineAttempts bounds the refinement loop. The loop always terminates
// with some usable text, never an error.
const maxRefineAttempts = 3

// Count returns the length of s in full-width-equivalent characters: each
// Unicode code point counts as one unit, the domain convention for Japanese
// copy-length limits.
func Count(s string) int {
	return utf8.RuneCountInString(s)
}

// HardCap truncates text to at most max units, preferring to cut at the last
// sentence-terminal mark inside the truncated window. Falls back to a hard cut
// at exactly max units when no terminal mark exists. Trailing whitespace is
// trimmed. Text at or under the cap is returned unchanged.
func HardCap(text string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}

	window := runes[:max]
	cut := -1
	for i := len(window) - 1; i >= 0; i-- {
		switch window[i] {
		case '。', '！', '？', '.':
			cut = i + 1
		}
		if cut >= 0 {
			break
		}
	}
	if cut < 0 {
		cut = max
	}
	return strings.TrimRight(string(window[:cut]), " \t\n　")
}

// Rewriter is the external text-generation collaborator as the length loop
// sees it: a fallible request/response call.
type Rewriter interface {
	Rewrite(ctx context.Context, prompt, current string) (string, error)
}

// Scrubber re-applies the deterministic cleanups to whatever the collaborator
// returns (price/solicitation stripping, banned-term stripping).
type Scrubber func(string) string

// Ensure adjusts draft toward the [min, max] range by asking the collaborator
// to expand or condense, at most maxRefineAttempts times. Collaborator
// failures or unusable output keep the previous draft and consume an attempt.
// An inverted range is corrected by swapping. The result is hard-capped when
// still over max. Ensure never fails and always returns some text.
func Ensure(ctx context.Context, rw Rewriter, draft string, min, max int, scrub Scrubber) string {
	if min > max {
		min, max = max, min
	}

	for attempt := 0; attempt < maxRefineAttempts; attempt++ {
		n := Count(draft)
		if n >= min && n <= max {
			break
		}
		if rw == nil {
			break
		}

		prompt := condensePrompt(min, max)
		if n < min {
			prompt = expandPrompt(min, max)
		}

		candidate, err := rw.Rewrite(ctx, prompt, draft)
		if err != nil || strings.TrimSpace(candidate) == "" {
			continue
		}
		if scrub != nil {
			candidate = scrub(candidate)
		}
		candidate = jptext.NormalizeWalkPhrase(candidate)
		if strings.TrimSpace(candidate) == "" {
			continue
		}
		draft = candidate
	}

	if Count(draft) > max {
		draft = HardCap(draft, max)
	}
	return draft
}
