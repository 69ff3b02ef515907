package usecase

import (
	"portfolio-assistant/internal/chatbot"
	"portfolio-assistant/internal/intent"
)

func (uc *implUseCase) Suggestions() []chatbot.Suggestion {
	out := make([]chatbot.Suggestion, len(uc.suggestions))
	copy(out, uc.suggestions)
	return out
}

// buildSuggestions orders quick replies by category priority.
func buildSuggestions(quick map[intent.Category]string) []chatbot.Suggestion {
	out := make([]chatbot.Suggestion, 0, len(quick))
	for _, cat := range intent.Categories() {
		if text, ok := quick[cat]; ok {
			out = append(out, chatbot.Suggestion{Category: cat, Text: text})
		}
	}
	return out
}
