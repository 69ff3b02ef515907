package chatbot

import "errors"

var (
	ErrEmptyMessage    = errors.New("message is required")
	ErrEmptyAIResponse = errors.New("empty AI response")
	ErrLivePanicked    = errors.New("live generation panicked")
)
