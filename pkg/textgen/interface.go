// Package textgen defines the abstraction for generative text-completion
// providers used by the agents.
package textgen

import "context"

// Client is the abstraction for text-completion providers. Implementations
// take a fully built prompt and return the generated text.
//
// Agents depend on this interface only; a deterministic stub stands in during
// tests.
type Client interface {
	// Complete sends the prompt to the provider and returns the generated
	// text. It fails when the provider is unconfigured, unreachable, or
	// returns a malformed response.
	Complete(ctx context.Context, prompt string) (string, error)
}
