package chatbot

import (
	"time"

	"portfolio-assistant/internal/intent"
)

// Reason says why an answer came from the offline tiers.
type Reason string

const (
	ReasonNoCredentials   Reason = "no_credentials"
	ReasonTimeout         Reason = "timeout"
	ReasonQuotaExceeded   Reason = "quota_exceeded"
	ReasonGenericAIError  Reason = "generic_ai_error"
	ReasonCompleteFailure Reason = "complete_failure"
)

// FailureClassifier maps an opaque generation error to a Reason.
type FailureClassifier func(err error) Reason

// Config tunes the reply pipeline.
type Config struct {
	AITimeout         time.Duration
	Temperature       float64
	MaxTokens         int
	Preamble          string            // empty uses the built-in preamble
	FailureClassifier FailureClassifier // nil uses the built-in classifier
}

// --- UseCase Inputs ---

type ChatInput struct {
	Message string
}

// --- UseCase Outputs ---

// FallbackResult is the single answer produced for one chat message.
// Category and Reason are empty when the live AI answered.
type FallbackResult struct {
	Text           string
	IsFromFallback bool
	Category       intent.Category
	Reason         Reason
}

// Suggestion is a quick-reply chip shown under the chat widget.
type Suggestion struct {
	Category intent.Category
	Text     string
}
