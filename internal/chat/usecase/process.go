package usecase

import (
	"context"
	"strings"

	"campus-assistant/internal/chat"
	"campus-assistant/internal/model"
	"campus-assistant/internal/router"
)

// Process is the query router: classify, dispatch, answer. Stateless across
// calls; each invocation is independent and never fails past this boundary.
func (uc *implUseCase) Process(ctx context.Context, sc model.Scope, input chat.ProcessInput) (chat.ProcessOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return chat.ProcessOutput{}, chat.ErrEmptyMessage
	}

	intent := router.Classify(message)
	uc.l.Infof(ctx, "chat.Process: user=%s intent=%s", sc.UserID, intent)

	var result chat.QueryResult
	switch intent {
	case router.IntentClassroom:
		result = uc.handleClassroom(ctx, sc)
	case router.IntentLibrary:
		result = uc.handleLibrary(ctx, sc)
	case router.IntentFaculty:
		result = uc.handleFaculty(ctx, sc, message)
	default:
		result = uc.handleFallback(ctx, message)
	}

	return chat.ProcessOutput{
		Reply:   result.Text,
		Intent:  intent,
		Success: result.Success,
	}, nil
}
