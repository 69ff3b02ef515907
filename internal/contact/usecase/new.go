package usecase

import (
	"portfolio-assistant/internal/contact"
	"portfolio-assistant/pkg/log"
	"portfolio-assistant/pkg/mailer"
)

// implUseCase is the private implementation of contact.UseCase.
type implUseCase struct {
	mailer mailer.IMailer
	cfg    contact.Config
	l      log.Logger
}

// New creates a new contact UseCase implementation.
func New(l log.Logger, m mailer.IMailer, cfg contact.Config) *implUseCase {
	return &implUseCase{
		mailer: m,
		cfg:    cfg,
		l:      l,
	}
}
