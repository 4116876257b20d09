// Package pipeline orchestrates the generate, check and polish operations on
// top of the compliance engine. Every operation degrades to the best available
// text plus warnings; validation failures are the only hard errors.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/masashitakano917-maker/apt-explain-sub000/internal/cache"
	"github.com/masashitakano917-maker/apt-explain-sub000/internal/extract"
	"github.com/masashitakano917-maker/apt-explain-sub000/internal/filter"
	"github.com/masashitakano917-maker/apt-explain-sub000/internal/length"
	"github.com/masashitakano917-maker/apt-explain-sub000/internal/llm"
	"github.com/masashitakano917-maker/apt-explain-sub000/internal/lock"
	"github.com/masashitakano917-maker/apt-explain-sub000/internal/model"
	"github.com/masashitakano917-maker/apt-explain-sub000/internal/rules"
)

// Pipeline wires the engine components together.
type Pipeline struct {
	fetcher   *Fetcher
	extractor *extract.FactExtractor
	registry  *rules.Registry
	client    *llm.Client
	config    *model.Config
}

// NewPipeline creates a new pipeline from configuration.
func NewPipeline(cfg *model.Config) *Pipeline {
	var store cache.Cache
	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			store = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		} else {
			store = cache.NewMemoryCache(cfg.Cache.MemoryTTL, 10*time.Minute)
		}
	}

	client, err := llm.NewClient(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		client = llm.NewClientWithProvider(nil, llm.ConfigFromModel(cfg.LLM))
	}

	return &Pipeline{
		fetcher:   NewFetcher(cfg.HTTP, store),
		extractor: extract.NewFactExtractor(),
		registry:  rules.NewRegistry(),
		client:    client,
		config:    cfg,
	}
}

// Generate produces compliant building-level copy for one property.
// The only hard failures are validation errors (missing name/URL); everything
// downstream degrades to the best available text plus warnings.
func (p *Pipeline) Generate(ctx context.Context, req model.GenerateRequest) (*model.GenerateResult, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if strings.TrimSpace(req.URL) == "" {
		return nil, fmt.Errorf("url is required")
	}
	min, max := p.charRange(req.MinChars, req.MaxChars)

	result := &model.GenerateResult{
		Name:        req.Name,
		SourceURL:   req.URL,
		GeneratedAt: time.Now().UTC(),
	}

	// 1. Fetch the source page. A failure means an empty document: facts
	// simply come back all-absent.
	content := ""
	if fetched, err := p.fetcher.FetchWithRetry(ctx, req.URL); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("取得失敗のため物件ページなしで生成します: %v", err))
	} else {
		content = fetched.HTML
	}

	// 2. Extract ground-truth facts.
	facts := p.extractor.Extract(content)
	result.Facts = facts

	// 3. Draft. The collaborator gets the fact slots as lock placeholders;
	// if it is disabled or fails, a deterministic template takes over.
	_, tokens := lock.Mask("", facts)
	if tokens.DefaultedWalk {
		result.Warnings = append(result.Warnings, "徒歩分数が抽出できなかったため約10分を仮置きしています")
	}

	draft := ""
	if p.client.Enabled() {
		prompt := llm.DraftPrompt(req.Name, req.Tone, factLines(tokens), min, max)
		if text, err := p.client.Rewrite(ctx, prompt, ""); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("下書き生成に失敗したため定型文で代替します: %v", err))
		} else {
			draft = text
		}
	}
	if strings.TrimSpace(draft) == "" {
		draft = fallbackDraft(req.Name, tokens)
	}

	// 4. Force ground truth, then scrub sentence-level violations.
	text := lock.ForceFacts(draft, facts)
	filtered := filter.Filter(text, model.ScopeBuilding)
	result.Deleted = filtered.Deleted
	text = filter.AppendFactSentences(filtered.Kept, facts)

	// 5. Length refinement, re-scrubbing whatever the collaborator returns.
	var rw length.Rewriter
	if p.client.Enabled() {
		rw = p.client
	}
	text = length.Ensure(ctx, rw, text, min, max, p.scrub)

	// 6. Facts win over everything the loop produced. Last step, always.
	text = lock.ForceFacts(text, facts)
	result.Text = text

	// 7. Annotate what remains for human review.
	result.Issues = rules.MergeOverlapping(p.registry.Check(text, model.ScopeBuilding))

	return result, nil
}

// Check runs one compliance pass over existing text.
func (p *Pipeline) Check(req model.CheckRequest) *model.CheckResult {
	scope := req.Scope
	if scope == "" {
		scope = model.ScopeBuilding
	}

	text := req.Text
	if req.Facts != nil {
		text = lock.ForceFacts(text, *req.Facts)
	}

	result := &model.CheckResult{}
	switch req.Mode {
	case model.ModeAnnotate:
		result.Issues = rules.MergeOverlapping(p.registry.Check(text, scope))
	default:
		filtered := filter.Filter(text, scope)
		kept := filtered.Kept
		if req.Facts != nil {
			kept = filter.AppendFactSentences(kept, *req.Facts)
		}
		result.KeptText = kept
		result.Deleted = filtered.Deleted
	}
	return result
}

// Polish adjusts tone without adding or removing content. Facts present in
// the input are locked through the rewrite; on any failure the input comes
// back unchanged with a warning.
func (p *Pipeline) Polish(ctx context.Context, req model.PolishRequest) (*model.PolishResult, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, fmt.Errorf("text is required")
	}
	min, max := p.charRange(req.MinChars, req.MaxChars)

	result := &model.PolishResult{Text: req.Text}
	if !p.client.Enabled() {
		result.Warnings = append(result.Warnings, "LLMが無効のため文体調整をスキップしました")
		return result, nil
	}

	facts := p.extractor.Extract(req.Text)
	masked, tokens := lock.Mask(req.Text, facts)

	polished, err := p.client.Rewrite(ctx, llm.PolishPrompt(req.Tone, min, max), masked)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("文体調整に失敗したため原文を返します: %v", err))
		return result, nil
	}
	if strings.TrimSpace(polished) == "" {
		result.Warnings = append(result.Warnings, "調整結果が空になったため原文を返します")
		return result, nil
	}

	text := lock.Unmask(polished, tokens)
	text = p.scrub(text)
	if length.Count(text) > max {
		text = length.HardCap(text, max)
	}
	text = lock.ForceFacts(text, facts)

	if strings.TrimSpace(text) == "" {
		result.Warnings = append(result.Warnings, "調整結果が空になったため原文を返します")
		return result, nil
	}
	result.Text = text
	return result, nil
}

// scrub re-applies the deterministic cleanups to collaborator output: NG
// sentences dropped, banned terms stripped.
func (p *Pipeline) scrub(text string) string {
	filtered := filter.Filter(text, model.ScopeBuilding)
	return p.registry.StripErrorTerms(filtered.Kept)
}

// charRange applies defaults and corrects an inverted range by swapping.
func (p *Pipeline) charRange(min, max int) (int, int) {
	if min <= 0 {
		min = p.config.Length.MinChars
	}
	if max <= 0 {
		max = p.config.Length.MaxChars
	}
	if min > max {
		min, max = max, min
	}
	return min, max
}

// factLines renders the locked fact slots for the drafting prompt.
func factLines(tokens *lock.TokenSet) []string {
	labels := map[model.FactField]string{
		model.FieldStationWalk: "最寄り駅",
		model.FieldUnitCount:   "総戸数",
		model.FieldStructure:   "構造",
		model.FieldFloorCount:  "階数",
		model.FieldBuiltDate:   "築年月",
		model.FieldDeveloper:   "分譲会社",
		model.FieldBuilder:     "施工会社",
		model.FieldManager:     "管理会社",
	}

	var lines []string
	for _, field := range tokens.Fields() {
		lines = append(lines, labels[field]+": "+lock.Placeholder(field))
	}
	return lines
}

// fallbackDraft builds a deterministic draft purely from locked facts, used
// when the collaborator is disabled or every call fails.
func fallbackDraft(name string, tokens *lock.TokenSet) string {
	var b strings.Builder
	fmt.Fprintf(&b, "「%s」のご紹介です。", name)

	if lit, ok := tokens.Literal(model.FieldStationWalk); ok {
		fmt.Fprintf(&b, "%sに位置し、日々の通勤や通学にも便利な立地です。", lit)
	}
	if lit, ok := tokens.Literal(model.FieldStructure); ok {
		floor, hasFloor := tokens.Literal(model.FieldFloorCount)
		if hasFloor {
			fmt.Fprintf(&b, "建物は%s・%sです。", lit, floor)
		} else {
			fmt.Fprintf(&b, "建物は%sです。", lit)
		}
	}
	if lit, ok := tokens.Literal(model.FieldUnitCount); ok {
		fmt.Fprintf(&b, "%sの規模を持つ集合住宅です。", lit)
	}
	if lit, ok := tokens.Literal(model.FieldBuiltDate); ok {
		fmt.Fprintf(&b, "%sの建物です。", lit)
	}
	if lit, ok := tokens.Literal(model.FieldDeveloper); ok {
		fmt.Fprintf(&b, "分譲会社：%s。", lit)
	}
	if lit, ok := tokens.Literal(model.FieldManager); ok {
		fmt.Fprintf(&b, "管理会社：%s。", lit)
	}
	b.WriteString("周辺環境と住まいの基本情報を確認のうえ、詳細は最新の物件概要をご覧ください。")
	return b.String()
}
