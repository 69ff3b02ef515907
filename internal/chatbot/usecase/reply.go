package usecase

import (
	"context"
	"strings"
	"time"

	"portfolio-assistant/internal/chatbot"
)

// Reply runs the message through live AI, offline knowledge and the fixed
// apology, in that order, and never fails.
func (uc *implUseCase) Reply(ctx context.Context, input chatbot.ChatInput) chatbot.FallbackResult {
	start := time.Now()
	r := &run{ctx: ctx, message: input.Message}

	for s := stateStart; s != stateDone; {
		r.path = append(r.path, s)
		s = advance(s, uc.safeStep(r, s))
	}

	uc.l.Info(ctx, "chat reply",
		"path", pathString(r.path),
		"from_fallback", r.result.IsFromFallback,
		"reason", string(r.result.Reason),
		"category", string(r.result.Category),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return r.result
}

func pathString(path []state) string {
	names := make([]string, len(path))
	for i, s := range path {
		names[i] = s.String()
	}
	return strings.Join(names, ">")
}
