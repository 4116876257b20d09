package model

// CheckMode selects what a check pass produces.
type CheckMode string

const (
	// ModeDelete drops every sentence that trips the NG catalog and
	// returns the kept text plus the deletions with their reasons.
	ModeDelete CheckMode = "delete"

	// ModeAnnotate leaves the text untouched and returns the merged issue
	// list from the rule registry.
	ModeAnnotate CheckMode = "annotate"
)

// GenerateRequest asks for fresh listing copy for one property.
type GenerateRequest struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Tone     string `json:"tone,omitempty"`
	MinChars int    `json:"min_chars,omitempty"`
	MaxChars int    `json:"max_chars,omitempty"`
}

// CheckRequest asks for a compliance pass over existing text. Facts, when
// supplied, are authoritative and forced into the text before checking.
type CheckRequest struct {
	Text  string    `json:"text"`
	Scope Scope     `json:"scope"`
	Mode  CheckMode `json:"mode"`
	Facts *Facts    `json:"facts,omitempty"`
}

// PolishRequest asks for a tone adjustment without content change.
type PolishRequest struct {
	Text     string `json:"text"`
	Tone     string `json:"tone"`
	MinChars int    `json:"min_chars,omitempty"`
	MaxChars int    `json:"max_chars,omitempty"`
}
