package usecase

import (
	"context"
	"errors"
	"strings"

	"portfolio-assistant/internal/chatbot"
	"portfolio-assistant/pkg/llmprovider"
)

// DefaultFailureClassifier prefers the sentinel errors the provider adapters
// attach and falls back to inspecting the error text.
func DefaultFailureClassifier(err error) chatbot.Reason {
	if err == nil {
		return chatbot.ReasonGenericAIError
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, llmprovider.ErrProviderTimeout):
		return chatbot.ReasonTimeout
	case errors.Is(err, llmprovider.ErrProviderRateLimited):
		return chatbot.ReasonQuotaExceeded
	case errors.Is(err, llmprovider.ErrNoProvidersConfigured):
		return chatbot.ReasonNoCredentials
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "timed out"):
		return chatbot.ReasonTimeout
	case strings.Contains(msg, "quota"), strings.Contains(msg, "limit"):
		return chatbot.ReasonQuotaExceeded
	}

	return chatbot.ReasonGenericAIError
}
