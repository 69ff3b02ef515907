package usecase

import (
	"time"

	"portfolio-assistant/internal/profile"
	"portfolio-assistant/pkg/github"
	"portfolio-assistant/pkg/log"
)

const defaultRequestTimeout = 5 * time.Second

// implUseCase is the private implementation of profile.UseCase.
type implUseCase struct {
	gh        github.IGitHub
	username  string
	repoLimit int
	timeout   time.Duration
	l         log.Logger
}

// New creates a new profile UseCase implementation.
func New(l log.Logger, gh github.IGitHub, cfg profile.Config) *implUseCase {
	if cfg.RepoLimit <= 0 {
		cfg.RepoLimit = github.DefaultRepoLimit
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}
	return &implUseCase{
		gh:        gh,
		username:  cfg.Username,
		repoLimit: cfg.RepoLimit,
		timeout:   cfg.RequestTimeout,
		l:         l,
	}
}
