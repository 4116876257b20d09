// Package jptext canonicalizes Japanese marketing copy before pattern matching.
//
// All pattern rules in this repository are authored against the normalized
// form: NFKC-folded (full-width ASCII to half-width, half-width kana to
// full-width kana, ㎡ to m2), dash and middle-dot variants folded to one
// canonical rune each, and whitespace runs collapsed to a single space.
package jptext

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// Dash-like runes NFKC leaves alone. The katakana long vowel mark
	// (U+30FC) is NOT a dash and must survive untouched.
	dashVariants = map[rune]bool{
		'‐': true, // ‐
		'‑': true, // ‑
		'‒': true, // ‒
		'–': true, // –
		'—': true, // —
		'―': true, // ―
		'−': true, // − minus sign
	}

	// Middle-dot variants folded to U+30FB.
	dotVariants = map[rune]bool{
		'·': true, // ·
		'•': true, // •
		'∙': true, // ∙
	}

	whitespaceRun = regexp.MustCompile(`[\s\x{3000}]+`)

	walkPhrase = regexp.MustCompile(`徒歩約?([0-9０-９]{1,3})分`)
)

// Normalize canonicalizes text for pattern matching. It is idempotent and
// never fails; empty input returns empty output.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	s = norm.NFKC.String(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case dashVariants[r]:
			b.WriteRune('-')
		case dotVariants[r]:
			b.WriteRune('・')
		default:
			b.WriteRune(r)
		}
	}
	s = b.String()

	// Collapse whitespace runs (NFKC already folded U+3000 to a space).
	s = whitespaceRun.ReplaceAllString(s, " ")

	return strings.TrimSpace(s)
}

// NormalizeWalkPhrase rewrites every 徒歩N分 phrase to the canonical 徒歩約N分
// form, folding full-width digits on the way. Phrases that already carry 約
// are left as they are, so the function is idempotent.
func NormalizeWalkPhrase(s string) string {
	return walkPhrase.ReplaceAllStringFunc(s, func(m string) string {
		sub := walkPhrase.FindStringSubmatch(m)
		return "徒歩約" + FoldDigits(sub[1]) + "分"
	})
}

// FoldDigits folds full-width digits to ASCII. Other runes pass through.
func FoldDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '０' && r <= '９' {
			b.WriteRune(r - '０' + '0')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
