package model

// Category classifies the nature of a rule violation
type Category string

const (
	CategoryBanned         Category = "禁止用語"  // terms the fair-trade code forbids outright
	CategoryMisleading     Category = "優良誤認"  // misleading-claim phrasing
	CategoryTrademark      Category = "商標"     // third-party brand names
	CategoryUnitDisclosure Category = "住戸特定"  // unit-identifying detail in building-level copy
)

// Severity indicates how a fired rule should be handled
type Severity string

const (
	SeverityError Severity = "error" // hard violation
	SeverityWarn  Severity = "warn"  // flag for human judgment, not auto-removed
)

// Scope distinguishes whole-building marketing copy from single-unit copy
type Scope string

const (
	ScopeBuilding Scope = "building"
	ScopeUnit     Scope = "unit"
)

// Issue is one rule firing on one span of text. Issues are ephemeral: they are
// re-derived on every check call and never persisted. Offsets index into the
// text the rule was evaluated against.
type Issue struct {
	RuleID   string   `json:"rule_id"`
	Label    string   `json:"label"`
	Category Category `json:"category"`
	Severity Severity `json:"severity"`
	Start    int      `json:"start"`
	End      int      `json:"end"`
	Excerpt  string   `json:"excerpt"`
	Message  string   `json:"message"`
}
