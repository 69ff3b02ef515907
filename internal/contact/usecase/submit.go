package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"portfolio-assistant/internal/contact"
	"portfolio-assistant/pkg/mailer"
)

const subjectTemplate = "New portfolio message from %s"

func (uc *implUseCase) Submit(ctx context.Context, input contact.SubmitInput) (contact.SubmitOutput, error) {
	if uc.mailer == nil || uc.cfg.From == "" || uc.cfg.To == "" {
		return contact.SubmitOutput{}, contact.ErrNotConfigured
	}

	name := strings.TrimSpace(input.Name)
	id, err := uc.mailer.Send(ctx, mailer.Message{
		From:    uc.cfg.From,
		To:      []string{uc.cfg.To},
		ReplyTo: input.Email,
		Subject: fmt.Sprintf(subjectTemplate, name),
		Text:    buildBody(name, input.Email, input.Message),
	})
	if err != nil {
		if errors.Is(err, mailer.ErrNotConfigured) {
			return contact.SubmitOutput{}, contact.ErrNotConfigured
		}
		uc.l.Errorf(ctx, "internal.contact.usecase.Submit: %v", err)
		return contact.SubmitOutput{}, fmt.Errorf("%w: %w", contact.ErrSendFailed, err)
	}

	uc.l.Infof(ctx, "Contact message delivered: id=%s", id)
	return contact.SubmitOutput{ID: id}, nil
}

func buildBody(name, email, message string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Name: %s\n", name)
	fmt.Fprintf(&sb, "Email: %s\n\n", email)
	sb.WriteString(strings.TrimSpace(message))
	sb.WriteString("\n")
	return sb.String()
}
