// Package lock protects extracted building facts through free-text rewriting.
//
// Masking replaces every structurally recognizable occurrence of a fact's
// shape (not its exact literal value) with a placeholder bound to the
// canonical rendering of that fact. The extracted fact is ground truth and the
// draft text is untrusted, so whatever number or name the draft asserted is
// overridden. Unmasking writes the canonical literals back. ForceFacts is the
// composition of the two and is the last step before any text is accepted.
package lock

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/masashitakano917-maker/apt-explain-sub000/internal/jptext"
	"github.com/masashitakano917-maker/apt-explain-sub000/internal/model"
)

// defaultWalkMinutes substitutes for a missing walk-minutes value when the
// station itself is known. Callers can detect the substitution through
// TokenSet.DefaultedWalk and surface a warning.
const defaultWalkMinutes = 10

// placeholders embedded in masked text. Double braces survive LLM rewriting
// reliably and never occur in listing copy.
var placeholders = map[model.FactField]string{
	model.FieldStationWalk: "{{STATION_WALK}}",
	model.FieldUnitCount:   "{{UNIT_COUNT}}",
	model.FieldStructure:   "{{STRUCTURE}}",
	model.FieldFloorCount:  "{{FLOOR_COUNT}}",
	model.FieldBuiltDate:   "{{BUILT_DATE}}",
	model.FieldDeveloper:   "{{DEVELOPER}}",
	model.FieldBuilder:     "{{BUILDER}}",
	model.FieldManager:     "{{MANAGER}}",
}

// companyFields are unmasked with a leading ： to reproduce the
// label-colon-value form the detectors consume.
var companyFields = map[model.FactField]bool{
	model.FieldDeveloper: true,
	model.FieldBuilder:   true,
	model.FieldManager:   true,
}

// detectors recognize the shape of each fact in free text, full-width or
// half-width digits alike. Order matters within a field: earlier patterns are
// replaced first, so narrower shapes (quoted station form, SRC before RC) win.
var detectors = map[model.FactField][]*regexp.Regexp{
	model.FieldStationWalk: {
		regexp.MustCompile(`(?:[^\s「『(（、。]{1,12}線)?[「『][^」』]{1,20}[」』]駅?(?:から|より)?徒歩約?[0-9０-９]{1,3}分`),
		regexp.MustCompile(`[^\s、。「」]{1,12}駅(?:から|より)?徒歩約?[0-9０-９]{1,3}分`),
	},
	model.FieldUnitCount: {
		regexp.MustCompile(`総戸数[^0-9０-９]{0,4}[0-9０-９]{1,4}戸`),
		regexp.MustCompile(`全[0-9０-９]{1,4}戸`),
	},
	model.FieldStructure: {
		regexp.MustCompile(`鉄骨鉄筋コンクリート造?`),
		regexp.MustCompile(`SRC造?`),
		regexp.MustCompile(`鉄筋コンクリート造?`),
		regexp.MustCompile(`RC造`),
	},
	model.FieldFloorCount: {
		regexp.MustCompile(`地上[0-9０-９]{1,3}階(?:建て?)?`),
		regexp.MustCompile(`[0-9０-９]{1,3}階建て?`),
	},
	model.FieldBuiltDate: {
		regexp.MustCompile(`[0-9０-９]{4}年(?:[0-9０-９]{1,2}月)?(?:築|建築|新築)`),
	},
	model.FieldDeveloper: {
		regexp.MustCompile(`分譲会社\s*[:：]?\s*[^\s、。，,]{1,40}`),
	},
	model.FieldBuilder: {
		regexp.MustCompile(`施工会社\s*[:：]?\s*[^\s、。，,]{1,40}`),
	},
	model.FieldManager: {
		regexp.MustCompile(`管理会社\s*[:：]?\s*[^\s、。，,]{1,40}`),
	},
}

// labels re-emitted in front of the placeholder for company fields, so the
// label survives masking even when the draft used a loose label-only form.
var companyLabels = map[model.FactField]string{
	model.FieldDeveloper: "分譲会社",
	model.FieldBuilder:   "施工会社",
	model.FieldManager:   "管理会社",
}

// TokenSet binds fact fields to their canonical literal renderings for one
// text instance. The literals are immutable once derived.
type TokenSet struct {
	literals map[model.FactField]string

	// DefaultedWalk reports that walk minutes were absent and the
	// 10-minute fallback was rendered into the station-walk literal.
	DefaultedWalk bool
}

// Literal returns the canonical literal for a field, if the field was locked.
func (ts *TokenSet) Literal(field model.FactField) (string, bool) {
	if ts == nil {
		return "", false
	}
	lit, ok := ts.literals[field]
	return lit, ok
}

// Fields returns the locked fields in the model's stable order.
func (ts *TokenSet) Fields() []model.FactField {
	if ts == nil {
		return nil
	}
	var fields []model.FactField
	for _, f := range model.AllFactFields {
		if _, ok := ts.literals[f]; ok {
			fields = append(fields, f)
		}
	}
	return fields
}

// Placeholder returns the placeholder string embedded in masked text for a
// field. Prompt builders use it to hand locked slots to the collaborator.
func Placeholder(field model.FactField) string {
	return placeholders[field]
}

// Mask derives a TokenSet from facts and replaces every fact-shaped span in
// text with the corresponding placeholder. Only fields present in facts are
// locked; absent fields leave the text untouched. Mask never fails, including
// on empty text.
func Mask(text string, facts model.Facts) (string, *TokenSet) {
	ts := &TokenSet{literals: make(map[model.FactField]string)}

	for _, field := range model.AllFactFields {
		if !facts.Has(field) {
			continue
		}
		ts.literals[field] = renderLiteral(field, facts, ts)

		replacement := placeholders[field]
		if companyFields[field] {
			replacement = companyLabels[field] + placeholders[field]
		}
		for _, re := range detectors[field] {
			text = re.ReplaceAllString(text, replacement)
		}
	}

	return text, ts
}

// Unmask replaces each placeholder with its literal token value. Placeholders
// without a token are left alone, so unmasking is safe on text containing
// unknown or absent placeholders. The walk-phrase canonicalization is
// re-applied afterwards because unmasked literals may reintroduce a raw
// 徒歩N分 form.
func Unmask(text string, ts *TokenSet) string {
	for _, field := range model.AllFactFields {
		lit, ok := ts.Literal(field)
		if !ok {
			continue
		}
		if companyFields[field] {
			lit = "：" + lit
		}
		text = strings.ReplaceAll(text, placeholders[field], lit)
	}
	return jptext.NormalizeWalkPhrase(text)
}

// ForceFacts forces every fact-bearing span in text to the canonical values,
// no matter what the input text asserted. It is idempotent and must be the
// last transformation before text is accepted as final.
func ForceFacts(text string, facts model.Facts) string {
	masked, ts := Mask(text, facts)
	return Unmask(masked, ts)
}

// renderLiteral builds the canonical literal for a fact field.
func renderLiteral(field model.FactField, facts model.Facts, ts *TokenSet) string {
	switch field {
	case model.FieldStationWalk:
		minutes := defaultWalkMinutes
		if facts.WalkMinutes != nil {
			minutes = *facts.WalkMinutes
		} else {
			ts.DefaultedWalk = true
		}
		var b strings.Builder
		if facts.Line != "" {
			b.WriteString(facts.Line)
			b.WriteString("線")
		}
		fmt.Fprintf(&b, "「%s」駅から徒歩約%d分", facts.Station, minutes)
		return b.String()
	case model.FieldUnitCount:
		return fmt.Sprintf("総戸数%d戸", *facts.UnitCount)
	case model.FieldStructure:
		return facts.Structure
	case model.FieldFloorCount:
		return fmt.Sprintf("地上%d階建て", *facts.FloorCount)
	case model.FieldBuiltDate:
		return facts.BuiltDate
	case model.FieldDeveloper:
		return facts.Developer
	case model.FieldBuilder:
		return facts.Builder
	case model.FieldManager:
		return facts.Manager
	default:
		return ""
	}
}
