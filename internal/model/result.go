package model

import "time"

// DeletedSentence records one sentence removed by the sentence-level filter,
// with every reason that triggered the removal.
type DeletedSentence struct {
	Text    string   `json:"text"`
	Reasons []string `json:"reasons"`
}

// CheckResult is the aggregate of one check pass. Deletion mode fills KeptText
// and Deleted; annotation mode fills Issues. Both may be present when a caller
// asks for both passes.
type CheckResult struct {
	KeptText string            `json:"kept_text,omitempty"`
	Deleted  []DeletedSentence `json:"deleted,omitempty"`
	Issues   []Issue           `json:"issues,omitempty"`
}

// GenerateResult is the outcome of one generate run. Internal failures degrade
// to the best available text plus warnings; the result is always well-formed.
type GenerateResult struct {
	Name        string    `json:"name"`
	SourceURL   string    `json:"source_url"`
	GeneratedAt time.Time `json:"generated_at"`

	Text  string `json:"text"`
	Facts Facts  `json:"facts"`

	Issues   []Issue           `json:"issues,omitempty"`
	Deleted  []DeletedSentence `json:"deleted,omitempty"`
	Warnings []string          `json:"warnings,omitempty"`
}

// PolishResult is the outcome of one polish run.
type PolishResult struct {
	Text     string   `json:"text"`
	Warnings []string `json:"warnings,omitempty"`
}
