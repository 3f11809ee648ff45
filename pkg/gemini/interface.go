package gemini

import "context"

// IGemini defines the interface for the Gemini API client.
// Implementations are safe for concurrent use.
type IGemini interface {
	// GenerateContent sends a content generation request to the Gemini API.
	GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// IsAvailable reports whether the client is configured with an API key.
	// Callers must consult this before GenerateContent.
	IsAvailable() bool

	// Model returns the model being used.
	Model() string
}
