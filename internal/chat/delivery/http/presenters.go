package http

import (
	"campus-assistant/internal/chat"
)

// --- Request DTOs ---

type queryReq struct {
	Message string `json:"message" binding:"required,max=2000"`
}

func (r queryReq) validate() error { return nil }

func (r queryReq) toInput() chat.ProcessInput {
	return chat.ProcessInput{
		Message: r.Message,
	}
}

// --- Response DTOs ---

type queryResp struct {
	Reply    string `json:"reply"`
	Intent   string `json:"intent"`
	Answered bool   `json:"answered"`
}

func (h *handler) newQueryResp(out chat.ProcessOutput) queryResp {
	return queryResp{
		Reply:    out.Reply,
		Intent:   string(out.Intent),
		Answered: out.Success,
	}
}
