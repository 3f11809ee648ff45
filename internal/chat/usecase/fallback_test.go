package usecase

import (
	"context"
	"errors"
	"testing"

	"campus-assistant/pkg/gemini"
)

func TestHandleFallback(t *testing.T) {
	ctx := context.Background()

	t.Run("Model Error", func(t *testing.T) {
		ai := &mockGemini{
			available: true,
			generateFunc: func(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
				return nil, errors.New("429 resource exhausted")
			},
		}
		uc := newTestUseCase(&mockRepository{}, ai)

		result := uc.handleFallback(ctx, "random question")
		if result.Success {
			t.Error("expected unanswered result")
		}
		if result.Text != MsgFallback {
			t.Errorf("expected static fallback, got %q", result.Text)
		}
	})

	t.Run("Empty Candidates", func(t *testing.T) {
		ai := &mockGemini{
			available: true,
			generateFunc: func(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
				return &gemini.GenerateResponse{}, nil
			},
		}
		uc := newTestUseCase(&mockRepository{}, ai)

		result := uc.handleFallback(ctx, "random question")
		if result.Text != MsgFallback {
			t.Errorf("expected static fallback, got %q", result.Text)
		}
	})

	t.Run("Request Shape", func(t *testing.T) {
		ai := &mockGemini{
			available: true,
			generateFunc: func(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
				if req.SystemInstruction == nil || len(req.SystemInstruction.Parts) == 0 {
					t.Error("expected system instruction")
				}
				if len(req.Contents) != 1 || req.Contents[0].Role != "user" {
					t.Errorf("expected single user content, got %+v", req.Contents)
				}
				if req.Contents[0].Parts[0].Text != "random question" {
					t.Errorf("expected user message forwarded, got %+v", req.Contents[0].Parts)
				}
				return &gemini.GenerateResponse{
					Candidates: []gemini.Candidate{
						{Content: gemini.Content{Parts: []gemini.Part{{Text: "hi"}}}},
					},
				}, nil
			},
		}
		uc := newTestUseCase(&mockRepository{}, ai)

		result := uc.handleFallback(ctx, "random question")
		if !result.Success {
			t.Error("expected success result")
		}
	})
}
