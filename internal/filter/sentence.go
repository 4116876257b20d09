// Package filter deletes whole sentences that trip the NG catalog and appends
// short factual sentences that are structurally required but absent.
package filter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/masashitakano917-maker/apt-explain-sub000/internal/jptext"
	"github.com/masashitakano917-maker/apt-explain-sub000/internal/model"
)

// ngRule is one entry of the sentence-level NG catalog. This catalog is
// separate from the rules registry: it is oriented toward unit-identifying
// numeric facts, assertive renovation phrasing, price/phone/URL leakage,
// solicitation and hype. Patterns are authored against normalized sentences.
type ngRule struct {
	ID           string
	Reason       string
	Pattern      *regexp.Regexp
	BuildingOnly bool
}

var ngCatalog = []ngRule{
	{
		ID: "ng-menseki", Reason: "住戸の面積が含まれています", BuildingOnly: true,
		Pattern: regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?\s*(?:m2|平米|平方メートル|[畳帖])`),
	},
	{
		ID: "ng-madori", Reason: "間取りが含まれています", BuildingOnly: true,
		Pattern: regexp.MustCompile(`[0-9]\s*(?:S?LDK|DK)`),
	},
	{
		ID: "ng-muki", Reason: "住戸の方位が含まれています", BuildingOnly: true,
		Pattern: regexp.MustCompile(`(?:南東|南西|北東|北西|南|北|東|西)向き`),
	},
	{
		ID: "ng-kai", Reason: "住戸を特定する表現が含まれています", BuildingOnly: true,
		Pattern: regexp.MustCompile(`[0-9]{1,2}階部分|最上階の住戸|角部屋|角住戸`),
	},
	{
		ID: "ng-shuzen", Reason: "修繕・改修の予定を断定する表現が含まれています",
		Pattern: regexp.MustCompile(`(?:大規模)?(?:修繕|改修|リフォーム|リノベーション)(?:工事)?[^。]{0,12}(?:予定|見込み)`),
	},
	{
		ID: "ng-kakaku", Reason: "価格情報が含まれています",
		Pattern: regexp.MustCompile(`[0-9][0-9,]*\s*(?:万円|億円|円)`),
	},
	{
		ID: "ng-denwa", Reason: "電話番号が含まれています",
		Pattern: regexp.MustCompile(`0[0-9]{1,4}-[0-9]{1,4}-[0-9]{3,4}|\(0[0-9]{1,4}\)[0-9]{1,4}-[0-9]{4}|0[0-9]{9,10}`),
	},
	{
		ID: "ng-url", Reason: "URLが含まれています",
		Pattern: regexp.MustCompile(`https?://[^\s]+|www\.[^\s]+`),
	},
	{
		ID: "ng-kanyu", Reason: "勧誘表現が含まれています",
		Pattern: regexp.MustCompile(`お問い合わせ|お気軽に|ご連絡ください|ご来場|内覧|お電話|資料請求`),
	},
	{
		ID: "ng-aori", Reason: "煽り表現が含まれています",
		Pattern: regexp.MustCompile(`必見|今だけ|お見逃しなく|お早めに|チャンス`),
	},
}

// sentence-terminal marks; a closing quote or bracket right after the mark
// stays attached to the sentence.
func isTerminal(r rune) bool {
	switch r {
	case '。', '！', '？', '!', '?':
		return true
	}
	return false
}

func isCloser(r rune) bool {
	switch r {
	case '」', '』', '）', ')', '”', '"':
		return true
	}
	return false
}

// SplitSentences splits text into maximal substrings ending at a
// sentence-terminal mark. An ASCII period only terminates when followed by
// whitespace or end of text, so decimals like 75.2 do not split. Each sentence
// is returned trimmed; order is preserved; never fails.
func SplitSentences(text string) []string {
	var sentences []string
	var cur []rune
	runes := []rune(text)

	flush := func() {
		if s := strings.TrimSpace(string(cur)); s != "" {
			sentences = append(sentences, s)
		}
		cur = cur[:0]
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		cur = append(cur, r)

		boundary := isTerminal(r)
		if r == '.' {
			boundary = i+1 >= len(runes) || runes[i+1] == ' ' || runes[i+1] == '\t' || runes[i+1] == '\n'
		}
		if !boundary {
			continue
		}
		for i+1 < len(runes) && isCloser(runes[i+1]) {
			i++
			cur = append(cur, runes[i])
		}
		flush()
	}
	flush()

	return sentences
}

// Result is the outcome of one filtering pass.
type Result struct {
	Kept    string
	Deleted []model.DeletedSentence
}

// Filter evaluates each sentence against the NG catalog and drops any
// sentence that trips a rule, recording every triggering reason. Surviving
// sentences are kept verbatim and in order. A sentence is kept or removed as a
// whole unit, never partially.
func Filter(text string, scope model.Scope) Result {
	var result Result
	var kept []string

	for _, sentence := range SplitSentences(text) {
		normalized := jptext.Normalize(sentence)

		var reasons []string
		for i := range ngCatalog {
			rule := &ngCatalog[i]
			if rule.BuildingOnly && scope != model.ScopeBuilding {
				continue
			}
			if rule.Pattern.MatchString(normalized) {
				reasons = append(reasons, rule.Reason)
			}
		}

		if len(reasons) > 0 {
			result.Deleted = append(result.Deleted, model.DeletedSentence{
				Text:    sentence,
				Reasons: reasons,
			})
			continue
		}
		kept = append(kept, sentence)
	}

	result.Kept = strings.Join(kept, "")
	return result
}

// Presence patterns for the additive fact repair. Lightweight: they check
// mention, not correctness. Forcing correctness is the lock package's job.
var (
	presenceUnitCount = regexp.MustCompile(`総戸数`)
	presenceStructure = regexp.MustCompile(`鉄筋コンクリート|鉄骨|SRC|RC造`)
	presenceBuilt     = regexp.MustCompile(`(?:19|20)[0-9]{2}年[^。]{0,4}(?:築|建築|竣工|新築)|築[0-9]{1,3}年`)
	presenceManager   = regexp.MustCompile(`管理会社`)
)

// AppendFactSentences appends a short declarative sentence for each
// authoritative building fact (unit count, structure, built date, management)
// the kept text does not already mention. Strictly additive: existing text is
// never overwritten or contradicted, and running the repair twice is a no-op
// because the presence checks then succeed.
func AppendFactSentences(text string, facts model.Facts) string {
	normalized := jptext.Normalize(text)

	var add []string
	if facts.UnitCount != nil && !presenceUnitCount.MatchString(normalized) {
		add = append(add, fmt.Sprintf("総戸数は%d戸です。", *facts.UnitCount))
	}
	if facts.Structure != "" && !presenceStructure.MatchString(normalized) {
		add = append(add, fmt.Sprintf("建物は%sです。", facts.Structure))
	}
	if facts.BuiltDate != "" && !presenceBuilt.MatchString(normalized) {
		add = append(add, fmt.Sprintf("%sの建物です。", facts.BuiltDate))
	}
	if facts.Manager != "" && !presenceManager.MatchString(normalized) {
		add = append(add, fmt.Sprintf("管理会社は%sです。", facts.Manager))
	}

	if len(add) == 0 {
		return text
	}
	return text + strings.Join(add, "")
}
