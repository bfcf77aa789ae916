// Package ports defines interfaces for external service communication.
package ports

import "context"

// StoryWriter defines the interface for LLM story generation.
type StoryWriter interface {
	// Write sends a complete prompt to the model and returns the generated text.
	Write(ctx context.Context, prompt string) (string, error)
}
