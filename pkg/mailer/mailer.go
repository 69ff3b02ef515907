package mailer

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/resend/resend-go/v2"
)

// ErrNotConfigured is returned by Send when no API key was provided.
var ErrNotConfigured = errors.New("mailer not configured")

// Message is a plain-text e-mail.
type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	Text    string
}

// IMailer sends e-mails.
type IMailer interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// Config configures the Resend-backed mailer.
type Config struct {
	APIKey  string
	BaseURL string // optional, for tests
}

type resendMailer struct {
	client *resend.Client
}

type disabledMailer struct{}

// New returns a Resend mailer, or one that always fails with ErrNotConfigured
// when cfg has no API key.
func New(cfg Config) (IMailer, error) {
	if cfg.APIKey == "" {
		return disabledMailer{}, nil
	}

	client := resend.NewClient(cfg.APIKey)
	if cfg.BaseURL != "" {
		u, err := url.Parse(cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("mailer: invalid base URL: %w", err)
		}
		client.BaseURL = u
	}
	return &resendMailer{client: client}, nil
}

func (m *resendMailer) Send(ctx context.Context, msg Message) (string, error) {
	resp, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Text:    msg.Text,
	})
	if err != nil {
		return "", fmt.Errorf("mailer: send: %w", err)
	}
	return resp.Id, nil
}

func (disabledMailer) Send(ctx context.Context, msg Message) (string, error) {
	return "", ErrNotConfigured
}
