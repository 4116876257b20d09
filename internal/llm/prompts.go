package llm

import (
	"fmt"
	"strings"
)

// Tone labels accepted by the prompt builders. Free-form tones pass through
// verbatim; these are just the documented presets.
const (
	ToneStandard = "標準"
	ToneFriendly = "親しみやすい"
	ToneFormal   = "フォーマル"
	ToneLuxury   = "高級感"
)

// DraftPrompt builds the initial-drafting instruction. factLines is the
// masked fact summary; the draft must weave the {{ }} tokens in untouched.
func DraftPrompt(name, tone string, factLines []string, min, max int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "「%s」という分譲マンションの紹介文を%d〜%d文字で書いてください。", name, min, max)
	if tone != "" {
		fmt.Fprintf(&b, "文体は「%s」な印象にしてください。", tone)
	}
	if len(factLines) > 0 {
		b.WriteString("以下の確定事実をすべて本文に自然に織り込んでください。{{ }}で囲まれたトークンはそのまま使ってください。\n")
		for _, line := range factLines {
			b.WriteString("- ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// PolishPrompt builds the tone-polishing instruction: wording only, no
// content addition or removal.
func PolishPrompt(tone string, min, max int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "次の物件紹介文の文体を「%s」な印象に整えてください。", tone)
	b.WriteString("内容の追加や削除はせず、言い回しだけを調整してください。")
	if min > 0 && max > 0 {
		fmt.Fprintf(&b, "%d〜%d文字に収めてください。", min, max)
	}
	b.WriteString("{{ }}で囲まれたトークンは一切変更しないでください。")
	return b.String()
}
