package llm

import (
	"context"

	"github.com/masashitakano917-maker/apt-explain-sub000/internal/model"
)

// Provider defines the interface for text-rewriting LLM providers.
//
// Every provider is treated as fallible and possibly slow: each call gets its
// own timeout, and callers must produce usable output even when every call
// fails.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Rewrite asks the model to rewrite text under the given instruction
	Rewrite(ctx context.Context, req RewriteRequest) (*RewriteResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// RewriteRequest contains the input for one rewrite call.
type RewriteRequest struct {
	// Instruction tells the model what to do with Text (draft, expand,
	// condense, adjust tone). Always written so that {{ }} lock tokens
	// must be preserved verbatim.
	Instruction string

	// Text is the current draft. May be empty for initial drafting.
	Text string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// RewriteResponse contains the model's output.
type RewriteResponse struct {
	// Text is the rewritten copy
	Text string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// systemPrompt constrains every provider the same way.
const systemPrompt = `あなたは日本の不動産広告の専門ライターです。不動産の表示に関する公正競争規約を遵守し、事実の捏造をせず、価格・電話番号・URL・勧誘表現を書かないでください。{{ }}で囲まれたトークンは物件の確定事実を表すため、一字も変更せずそのまま残してください。出力は本文のみとし、前置きや説明を付けないでください。`

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Model:     "",
		Timeout:   60,
		MaxTokens: 1500,
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(modelConfig model.LLMConfig) Config {
	return Config{
		Provider:   modelConfig.Provider,
		Model:      modelConfig.Model,
		APIKey:     modelConfig.APIKey,
		BaseURL:    modelConfig.BaseURL,
		Timeout:    modelConfig.Timeout,
		MaxTokens:  modelConfig.MaxTokens,
		HTTPProxy:  modelConfig.HTTPProxy,
		HTTPSProxy: modelConfig.HTTPSProxy,
		NoProxy:    modelConfig.NoProxy,
	}
}
