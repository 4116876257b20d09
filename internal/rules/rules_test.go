package rules

import (
	"strings"
	"testing"

	"github.com/masashitakano917-maker/apt-explain-sub000/internal/model"
)

func TestCheck_NihonIchi(t *testing.T) {
	registry := NewRegistry()

	issues := registry.Check("日本一の立地を誇ります。", model.ScopeBuilding)

	var hit *model.Issue
	for i := range issues {
		if strings.HasPrefix(issues[i].RuleID, "yuii-") {
			hit = &issues[i]
			break
		}
	}
	if hit == nil {
		t.Fatalf("expected a yuii-* issue, got %+v", issues)
	}
	if hit.Category != model.CategoryBanned {
		t.Errorf("Category = %q, want 禁止用語", hit.Category)
	}
	if hit.Excerpt != "日本一" {
		t.Errorf("Excerpt = %q, want 日本一", hit.Excerpt)
	}
}

func TestCheck_LooseTermMatching(t *testing.T) {
	registry := NewRegistry()

	// Obfuscated spacing must still trigger.
	for _, text := range []string{"日本 一の眺望", "日本・一の眺望", "日本－一の眺望"} {
		issues := registry.Check(text, model.ScopeUnit)
		found := false
		for _, is := range issues {
			if is.RuleID == "yuii-nihon-ichi" {
				found = true
			}
		}
		if !found {
			t.Errorf("expected yuii-nihon-ichi to fire on %q", text)
		}
	}
}

func TestCheck_UnitDisclosureScope(t *testing.T) {
	registry := NewRegistry()
	text := "専有面積は75.2㎡の角部屋です。"

	building := registry.Check(text, model.ScopeBuilding)
	var gotM2, gotKado bool
	for _, is := range building {
		switch is.RuleID {
		case "juko-menseki-m2":
			gotM2 = true
		case "juko-kado-heya":
			gotKado = true
		}
	}
	if !gotM2 || !gotKado {
		t.Errorf("building scope: want both unit-size and unit-term issues, got %+v", building)
	}

	unit := registry.Check(text, model.ScopeUnit)
	for _, is := range unit {
		if is.Category == model.CategoryUnitDisclosure {
			t.Errorf("unit scope must not apply unit-disclosure rules, got %+v", is)
		}
	}
}

func TestCheck_Predicates(t *testing.T) {
	registry := NewRegistry()

	tests := []struct {
		text   string
		ruleID string
	}{
		{"資産価値が上がるマンションです。", "gonin-shisan-kachi"},
		{"5,980万円→5,480万円に値下げ。", "gonin-niju-kakaku"},
		{"満足度100%を実現。", "gonin-hyaku-percent"},
		{"満足度１００％を実現。", "gonin-hyaku-percent"},
	}

	for _, tt := range tests {
		issues := registry.Check(tt.text, model.ScopeUnit)
		found := false
		for _, is := range issues {
			if is.RuleID == tt.ruleID {
				found = true
				if is.Start < 0 || is.End <= is.Start {
					t.Errorf("%s: bad bounds %d..%d", tt.ruleID, is.Start, is.End)
				}
			}
		}
		if !found {
			t.Errorf("expected %s to fire on %q, got %+v", tt.ruleID, tt.text, issues)
		}
	}
}

func TestCheck_EmptyAndClean(t *testing.T) {
	registry := NewRegistry()

	if issues := registry.Check("", model.ScopeBuilding); len(issues) != 0 {
		t.Errorf("empty text must produce no issues, got %+v", issues)
	}
	if issues := registry.Check("緑豊かな住宅街にある落ち着いた住まいです。", model.ScopeBuilding); len(issues) != 0 {
		t.Errorf("clean text must produce no issues, got %+v", issues)
	}
}

func TestStripErrorTerms(t *testing.T) {
	registry := NewRegistry()

	out := registry.StripErrorTerms("日本一の立地で、格安の物件です。")
	if strings.Contains(out, "日本一") || strings.Contains(out, "格安") {
		t.Errorf("banned terms survived stripping: %q", out)
	}
	// Warn-severity terms are not stripped.
	out = registry.StripErrorTerms("人気のエリアです。")
	if !strings.Contains(out, "人気の") {
		t.Errorf("warn terms must not be stripped: %q", out)
	}
}

func TestMergeOverlapping(t *testing.T) {
	issues := []model.Issue{
		{Start: 10, End: 16, Excerpt: "日本一", Message: "dup"},
		{Start: 4, End: 12, Excerpt: "これは日本", Message: "dup"},
		{Start: 30, End: 36, Excerpt: "別件", Message: "other"},
	}

	merged := MergeOverlapping(issues)
	if len(merged) != 2 {
		t.Fatalf("expected 2 merged issues, got %d: %+v", len(merged), merged)
	}
	if merged[0].Start != 4 || merged[0].End != 16 {
		t.Errorf("merged span = %d..%d, want 4..16", merged[0].Start, merged[0].End)
	}
	if merged[0].Excerpt != "これは日本 / 日本一" {
		t.Errorf("merged excerpt = %q", merged[0].Excerpt)
	}
}

func TestMergeOverlapping_DistinctMessagesTouching(t *testing.T) {
	// Overlapping spans with different messages stay separate.
	issues := []model.Issue{
		{Start: 0, End: 6, Message: "a"},
		{Start: 3, End: 9, Message: "b"},
	}
	merged := MergeOverlapping(issues)
	if len(merged) != 2 {
		t.Errorf("distinct messages must not merge, got %+v", merged)
	}
}
