package core

import "context"

// Options controls model behavior; fields are optional per provider.
type Options struct {
	Model               string
	Temperature         float64
	MaxCompletionTokens int
	SystemPrompt        string
}

// Client is a provider-agnostic interface for the LLM operations we need.
type Client interface {
	// Respond sends a single-shot text prompt and returns the model text.
	Respond(ctx context.Context, input string, opts Options) (string, error)
	// RespondVision sends a prompt plus one inline image for multimodal models.
	RespondVision(ctx context.Context, input string, image []byte, mimeType string, opts Options) (string, error)
}
