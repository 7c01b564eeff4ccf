package ai

import "context"

// Provider sends a prompt to an LLM and returns the raw text response.
// Responses carry no structural guarantee; callers parse defensively.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
