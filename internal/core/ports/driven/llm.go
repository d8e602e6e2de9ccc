package driven

import "context"

// LLMService produces completions from a rendered prompt.
//
// Implementations may include:
//   - Groq (OpenAI-compatible chat completions)
//   - Ollama (local models)
type LLMService interface {
	// Generate produces a text completion from a prompt.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable with a lightweight request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// GenerateOptions configures text generation behaviour.
type GenerateOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	// Rating calls use a low temperature for consistent scoring.
	Temperature float64

	// StopWords are sequences that stop generation when encountered.
	StopWords []string
}
