package chat

import (
	"context"

	"campus-assistant/internal/model"
)

// UseCase is the chatbot core: one operation, message in, reply out.
type UseCase interface {
	// Process classifies the message, resolves it through the matching domain
	// handler (or the AI fallback) and returns the display-ready reply.
	// Handlers convert every upstream failure into a user-facing explanation,
	// so the only error Process returns is ErrEmptyMessage.
	Process(ctx context.Context, sc model.Scope, input ProcessInput) (ProcessOutput, error)
}
