package http

import (
	"portfolio-assistant/internal/chatbot"
)

// --- Request DTOs ---

type chatReq struct {
	Message *string `json:"message"`
}

func (r chatReq) toInput() chatbot.ChatInput {
	return chatbot.ChatInput{Message: *r.Message}
}

// --- Response DTOs ---

type chatResp struct {
	Response       string `json:"response"`
	IsFromFallback bool   `json:"isFromFallback"`
	Category       string `json:"category,omitempty"`
	Reason         string `json:"reason,omitempty"`
}

func newChatResp(res chatbot.FallbackResult) chatResp {
	return chatResp{
		Response:       res.Text,
		IsFromFallback: res.IsFromFallback,
		Category:       string(res.Category),
		Reason:         string(res.Reason),
	}
}

type errorResp struct {
	Error string `json:"error"`
}

type suggestionResp struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

func newSuggestionsResp(in []chatbot.Suggestion) []suggestionResp {
	out := make([]suggestionResp, 0, len(in))
	for _, s := range in {
		out = append(out, suggestionResp{Category: string(s.Category), Text: s.Text})
	}
	return out
}
