package usecase

import (
	"portfolio-assistant/internal/chatbot"
	"portfolio-assistant/internal/intent"
	"portfolio-assistant/pkg/log"
)

// implUseCase is the private implementation of chatbot.UseCase.
type implUseCase struct {
	llm             chatbot.Generator
	responder       chatbot.Responder
	suggestions     []chatbot.Suggestion
	classifyFailure chatbot.FailureClassifier
	cfg             chatbot.Config
	l               log.Logger
}

// New creates a new chatbot UseCase implementation. A nil llm means no AI
// credentials are configured and every reply comes from the responder.
func New(l log.Logger, llm chatbot.Generator, responder chatbot.Responder, quick map[intent.Category]string, cfg chatbot.Config) *implUseCase {
	if cfg.AITimeout <= 0 {
		cfg.AITimeout = defaultAITimeout
	}
	if cfg.Preamble == "" {
		cfg.Preamble = DefaultPreamble
	}
	classify := cfg.FailureClassifier
	if classify == nil {
		classify = DefaultFailureClassifier
	}
	return &implUseCase{
		llm:             llm,
		responder:       responder,
		suggestions:     buildSuggestions(quick),
		classifyFailure: classify,
		cfg:             cfg,
		l:               l,
	}
}
