package llmprovider

import (
	"context"
	"strings"

	"portfolio-assistant/pkg/gemini"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		SystemInstruction: req.systemText(),
		Messages:          convertToGeminiContents(req.Messages),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	})
	if err != nil {
		return nil, wrapError(a.Name(), err, geminiStatus(err))
	}

	out := &Response{
		Content:      convertFromGeminiContent(resp.Content),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// geminiStatus recovers the HTTP status from a genai error message.
func geminiStatus(err error) int {
	msg := err.Error()
	if strings.Contains(msg, "429") || strings.Contains(msg, "RESOURCE_EXHAUSTED") {
		return 429
	}
	return 0
}

func convertToGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, 0, len(msgs))
	for _, msg := range msgs {
		role := gemini.RoleUser
		if msg.Role == RoleAssistant {
			role = gemini.RoleModel
		}
		parts := make([]gemini.Part, 0, len(msg.Parts))
		for _, p := range msg.Parts {
			parts = append(parts, gemini.Part{Text: p.Text})
		}
		contents = append(contents, gemini.Content{Role: role, Parts: parts})
	}
	return contents
}

func convertFromGeminiContent(c gemini.Content) Message {
	parts := make([]Part, 0, len(c.Parts))
	for _, p := range c.Parts {
		parts = append(parts, Part{Text: p.Text})
	}
	return Message{Role: RoleAssistant, Parts: parts}
}
