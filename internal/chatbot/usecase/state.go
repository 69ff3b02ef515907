package usecase

import (
	"context"
	"fmt"

	"portfolio-assistant/internal/chatbot"
	"portfolio-assistant/internal/intent"
)

// state is a step of the per-request degradation pipeline.
// Transitions only ever move to a higher state.
type state int

const (
	stateStart state = iota
	stateLive
	stateFallback
	stateLastResort
	stateDone
)

func (s state) String() string {
	switch s {
	case stateStart:
		return "start"
	case stateLive:
		return "live"
	case stateFallback:
		return "fallback"
	case stateLastResort:
		return "last_resort"
	case stateDone:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// run carries one request through the pipeline.
type run struct {
	ctx     context.Context
	message string
	reason  chatbot.Reason
	result  chatbot.FallbackResult
	path    []state
}

// step executes s and returns the next state.
func (uc *implUseCase) step(r *run, s state) state {
	switch s {
	case stateStart:
		if uc.llm == nil {
			r.reason = chatbot.ReasonNoCredentials
			return stateFallback
		}
		return stateLive

	case stateLive:
		text, err := uc.generate(r.ctx, r.message)
		if err != nil {
			r.reason = uc.classifyFailure(err)
			uc.l.Warnf(r.ctx, "internal.chatbot.usecase.live: %s: %v", r.reason, err)
			return stateFallback
		}
		r.result = chatbot.FallbackResult{Text: text}
		return stateDone

	case stateFallback:
		cat, text, err := uc.responder.Respond(r.ctx, r.message)
		if err != nil {
			uc.l.Errorf(r.ctx, "internal.chatbot.usecase.fallback: %v", err)
			return stateLastResort
		}
		r.result = chatbot.FallbackResult{
			Text:           Banner(r.reason) + text,
			IsFromFallback: true,
			Category:       cat,
			Reason:         r.reason,
		}
		return stateDone

	case stateLastResort:
		r.result = lastResort()
		return stateDone
	}

	return stateDone
}

// safeStep runs step and turns a panic into the last-resort tier.
func (uc *implUseCase) safeStep(r *run, s state) (next state) {
	defer func() {
		if p := recover(); p != nil {
			uc.l.Errorf(r.ctx, "internal.chatbot.usecase: panic in %s: %v", s, p)
			if s < stateLastResort {
				next = stateLastResort
				return
			}
			r.result = lastResort()
			next = stateDone
		}
	}()
	return uc.step(r, s)
}

// advance guards the forward-only rule: a step that tries to stay or go
// back jumps to the last-resort tier instead.
func advance(from, to state) state {
	if to > from {
		return to
	}
	if from < stateLastResort {
		return stateLastResort
	}
	return stateDone
}

func lastResort() chatbot.FallbackResult {
	return chatbot.FallbackResult{
		Text:           LastResortMessage,
		IsFromFallback: true,
		Category:       intent.CategoryError,
		Reason:         chatbot.ReasonCompleteFailure,
	}
}
