package usecase

import (
	"context"
	"fmt"
	"strings"

	"campus-assistant/internal/chat"
	"campus-assistant/pkg/gemini"
)

// handleFallback routes unmatched messages to the generative model. When no
// model is configured, or the call fails, the static capability message is
// returned instead so the user always gets a reply.
func (uc *implUseCase) handleFallback(ctx context.Context, message string) chat.QueryResult {
	if !uc.ai.IsAvailable() {
		return chat.Unanswered(MsgFallback)
	}

	req := gemini.GenerateRequest{
		SystemInstruction: &gemini.Content{
			Parts: []gemini.Part{{Text: aiSystemPrompt}},
		},
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: message}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     aiTemperature,
			MaxOutputTokens: aiMaxTokens,
		},
	}

	resp, err := uc.ai.GenerateContent(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "chat.handleFallback: GenerateContent failed: %v", err)
		return chat.Unanswered(MsgFallback)
	}

	text := firstCandidateText(resp)
	if text == "" {
		uc.l.Warnf(ctx, "chat.handleFallback: model returned no text")
		return chat.Unanswered(MsgFallback)
	}

	return chat.Answered(fmt.Sprintf(MsgAIPrefix, text))
}

func firstCandidateText(resp *gemini.GenerateResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	return strings.TrimSpace(b.String())
}
