package llm

import (
	"context"
	"fmt"
)

// Client wraps a Provider behind the simple prompt-in/text-out call shape the
// pipeline and the length controller consume. A nil provider means the LLM is
// disabled; every call then fails fast and callers fall back to deterministic
// output.
type Client struct {
	provider Provider
	config   Config
}

// NewClient creates a rewriting client from configuration. A disabled
// configuration (empty provider) yields a client whose calls always fail.
func NewClient(config Config) (*Client, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}
	return &Client{provider: provider, config: config}, nil
}

// NewClientWithProvider wires an explicit provider. Used by tests to inject
// fakes.
func NewClientWithProvider(provider Provider, config Config) *Client {
	return &Client{provider: provider, config: config}
}

// Enabled reports whether a provider is configured.
func (c *Client) Enabled() bool {
	return c != nil && c.provider != nil
}

// Name returns the configured provider name, or "disabled".
func (c *Client) Name() string {
	if !c.Enabled() {
		return "disabled"
	}
	return c.provider.Name()
}

// Rewrite sends one instruction plus the current draft to the provider and
// returns the rewritten text. Satisfies the length controller's Rewriter
// interface.
func (c *Client) Rewrite(ctx context.Context, instruction, current string) (string, error) {
	if !c.Enabled() {
		return "", fmt.Errorf("LLM provider disabled")
	}
	resp, err := c.provider.Rewrite(ctx, RewriteRequest{
		Instruction: instruction,
		Text:        current,
		MaxTokens:   c.config.MaxTokens,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}
