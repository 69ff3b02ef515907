package knowledge

import (
	"context"
	"math/rand/v2"

	"portfolio-assistant/internal/intent"
	"portfolio-assistant/internal/model"
	"portfolio-assistant/pkg/log"
)

// ProfileSource provides the live code-hosting profile used for enrichment.
type ProfileSource interface {
	Snapshot(ctx context.Context) (model.ProfileSnapshot, error)
}

// Rand is the random source used to pick among variants.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// enrichedCategories get the live statistics block appended.
var enrichedCategories = map[intent.Category]bool{
	intent.CategoryAbout:    true,
	intent.CategorySkills:   true,
	intent.CategoryProjects: true,
}

// Selector turns a category into user-facing text.
type Selector struct {
	bank       *Bank
	classifier *intent.Classifier
	profiles   ProfileSource
	rnd        Rand
	l          log.Logger
}

// NewSelector wires a selector. A nil profiles disables live enrichment and
// a nil rnd uses the process-wide generator.
func NewSelector(bank *Bank, profiles ProfileSource, rnd Rand, l log.Logger) *Selector {
	if rnd == nil {
		rnd = globalRand{}
	}
	return &Selector{
		bank:       bank,
		classifier: intent.New(),
		profiles:   profiles,
		rnd:        rnd,
		l:          l,
	}
}

// Classify exposes the selector's intent classifier.
func (s *Selector) Classify(message string) intent.Category {
	return s.classifier.Classify(message)
}

// Select picks one variant of cat uniformly at random. Categories without
// variants get the first default variant. It only fails when the bank has
// no default at all.
func (s *Selector) Select(cat intent.Category) (string, error) {
	if variants := s.bank.Variants(cat); len(variants) > 0 {
		return variants[s.rnd.IntN(len(variants))], nil
	}
	if text, ok := s.bank.defaultResponse(); ok {
		return text, nil
	}
	return "", ErrNoDefaultResponse
}

// SelectEnriched is Select plus, for about/skills/projects, a block of live
// profile statistics. Enrichment failures are logged and the plain text is returned.
func (s *Selector) SelectEnriched(ctx context.Context, cat intent.Category, message string) (string, error) {
	text, err := s.Select(cat)
	if err != nil {
		return "", err
	}
	if !enrichedCategories[cat] || s.profiles == nil {
		return text, nil
	}

	snap, err := s.profiles.Snapshot(ctx)
	if err != nil {
		s.l.Warnf(ctx, "internal.knowledge.SelectEnriched: profile unavailable for %s: %v", cat, err)
		return text, nil
	}

	return text + formatStats(snap.Profile), nil
}

// SelectProfileNetwork prefers a live profile and repository narrative and
// falls back to the canned github variants when the fetch fails.
func (s *Selector) SelectProfileNetwork(ctx context.Context, message string) (string, error) {
	if s.profiles == nil {
		return s.Select(intent.CategoryGitHub)
	}

	snap, err := s.profiles.Snapshot(ctx)
	if err != nil {
		s.l.Warnf(ctx, "internal.knowledge.SelectProfileNetwork: profile unavailable: %v", err)
		return s.Select(intent.CategoryGitHub)
	}

	return formatNarrative(snap), nil
}

// Respond classifies message and renders the matching response.
func (s *Selector) Respond(ctx context.Context, message string) (intent.Category, string, error) {
	cat := s.classifier.Classify(message)

	var (
		text string
		err  error
	)
	if cat == intent.CategoryGitHub {
		text, err = s.SelectProfileNetwork(ctx, message)
	} else {
		text, err = s.SelectEnriched(ctx, cat, message)
	}
	if err != nil {
		return cat, "", err
	}
	return cat, text, nil
}
