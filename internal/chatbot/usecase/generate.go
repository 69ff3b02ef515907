package usecase

import (
	"context"
	"fmt"
	"strings"

	"portfolio-assistant/internal/chatbot"
	"portfolio-assistant/pkg/llmprovider"
)

type generation struct {
	text string
	err  error
}

// generate races the live call against the AI timeout. The call's context is
// cancelled as soon as the race is decided.
func (uc *implUseCase) generate(ctx context.Context, message string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.AITimeout)
	defer cancel()

	done := make(chan generation, 1)
	go func() {
		defer func() {
			if p := recover(); p != nil {
				done <- generation{err: fmt.Errorf("%w: %v", chatbot.ErrLivePanicked, p)}
			}
		}()
		resp, err := uc.llm.GenerateContent(ctx, uc.buildRequest(message))
		if err != nil {
			done <- generation{err: err}
			return
		}
		done <- generation{text: resp.Text()}
	}()

	select {
	case g := <-done:
		if g.err != nil {
			return "", g.err
		}
		if strings.TrimSpace(g.text) == "" {
			return "", chatbot.ErrEmptyAIResponse
		}
		return g.text, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (uc *implUseCase) buildRequest(message string) *llmprovider.Request {
	return &llmprovider.Request{
		Messages: []llmprovider.Message{{
			Role:  llmprovider.RoleUser,
			Parts: []llmprovider.Part{{Text: composePrompt(uc.cfg.Preamble, message)}},
		}},
		Temperature: uc.cfg.Temperature,
		MaxTokens:   uc.cfg.MaxTokens,
	}
}

func composePrompt(preamble, message string) string {
	return preamble + "\n\nVisitor: " + message
}
