package chatbot

import (
	"context"

	"portfolio-assistant/internal/intent"
	"portfolio-assistant/pkg/llmprovider"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Reply always returns an answer; failures degrade to offline tiers.
	Reply(ctx context.Context, input ChatInput) FallbackResult
	Suggestions() []Suggestion
}

// Generator is the live generative-AI collaborator.
// *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Responder is the offline knowledge collaborator.
// *knowledge.Selector satisfies it.
type Responder interface {
	Respond(ctx context.Context, message string) (intent.Category, string, error)
}
