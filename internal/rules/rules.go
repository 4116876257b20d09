// Package rules evaluates listing copy against the fair-trade wording catalog.
//
// Two rule shapes exist: loose literal terms, whose characters may be separated
// by whitespace/dash/dot runs so trivially obfuscated spacing still triggers,
// and compiled predicate patterns evaluated once with examinable match bounds.
// Catalogs are static immutable tables; evaluation is pure and never fails.
package rules

import (
	"regexp"
	"strings"

	"github.com/masashitakano917-maker/apt-explain-sub000/internal/jptext"
	"github.com/masashitakano917-maker/apt-explain-sub000/internal/model"
)

// kind discriminates the two rule payload shapes.
type kind int

const (
	kindTerm kind = iota
	kindPattern
)

// Rule is one catalog entry. Exactly one of Term / Pattern is set, matching
// the kind.
type Rule struct {
	ID       string
	Label    string
	Category model.Category
	Severity model.Severity

	// BuildingOnly rules apply to whole-building copy and never to
	// single-unit copy.
	BuildingOnly bool

	kind    kind
	Term    string
	Pattern *regexp.Regexp
	Message string

	loose *regexp.Regexp // compiled loose matcher for term rules
}

// separators that may split the characters of a loose term without defeating
// the match ("日本 一" still matches 日本一).
const looseSeparators = `[\s 　・、\-‐‑‒–—―.．,，]*`

// looseTermPattern compiles a term into its loose matcher.
func looseTermPattern(term string) *regexp.Regexp {
	var parts []string
	for _, r := range term {
		parts = append(parts, regexp.QuoteMeta(string(r)))
	}
	return regexp.MustCompile(strings.Join(parts, looseSeparators))
}

// Registry holds the compiled rule catalog.
type Registry struct {
	rules []Rule
}

// NewRegistry compiles the built-in catalog.
func NewRegistry() *Registry {
	rules := make([]Rule, 0, len(baseCatalog)+len(unitDisclosureCatalog))
	rules = append(rules, baseCatalog...)
	rules = append(rules, unitDisclosureCatalog...)
	for i := range rules {
		if rules[i].kind == kindTerm {
			rules[i].loose = looseTermPattern(rules[i].Term)
		}
	}
	return &Registry{rules: rules}
}

// Rules returns the compiled catalog.
func (r *Registry) Rules() []Rule {
	return r.rules
}

// Check evaluates text under the given scope and returns every issue found.
// Term rules match against the normalized text and report offsets into it;
// predicate rules are tried against the raw text first so offsets can point
// into it, falling back to the normalized form. Output order is not
// guaranteed; consumers sort before display. Check never fails, including on
// the empty string.
func (r *Registry) Check(text string, scope model.Scope) []model.Issue {
	if text == "" {
		return nil
	}
	normalized := jptext.Normalize(text)

	var issues []model.Issue
	for i := range r.rules {
		rule := &r.rules[i]
		if rule.BuildingOnly && scope != model.ScopeBuilding {
			continue
		}

		switch rule.kind {
		case kindTerm:
			for _, loc := range rule.loose.FindAllStringIndex(normalized, -1) {
				issues = append(issues, issueAt(rule, normalized, loc))
			}
		case kindPattern:
			if loc := rule.Pattern.FindStringIndex(text); loc != nil {
				issues = append(issues, issueAt(rule, text, loc))
			} else if loc := rule.Pattern.FindStringIndex(normalized); loc != nil {
				issues = append(issues, issueAt(rule, normalized, loc))
			}
		}
	}
	return issues
}

// StripErrorTerms deletes every span matching an error-severity term rule.
// Used by the length-control loop to scrub collaborator output before
// re-measuring.
func (r *Registry) StripErrorTerms(text string) string {
	for i := range r.rules {
		rule := &r.rules[i]
		if rule.kind != kindTerm || rule.Severity != model.SeverityError || rule.BuildingOnly {
			continue
		}
		text = rule.loose.ReplaceAllString(text, "")
	}
	return text
}

func issueAt(rule *Rule, evaluated string, loc []int) model.Issue {
	return model.Issue{
		RuleID:   rule.ID,
		Label:    rule.Label,
		Category: rule.Category,
		Severity: rule.Severity,
		Start:    loc[0],
		End:      loc[1],
		Excerpt:  evaluated[loc[0]:loc[1]],
		Message:  rule.Message,
	}
}
