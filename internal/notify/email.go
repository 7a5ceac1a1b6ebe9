package notify

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

type Sender interface {
	Send(ctx context.Context, m Message) error
}

type SendGridConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

type SendGridSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

// NewSendGridSender returns nil when no API key is configured; callers fall
// back to the stub.
func NewSendGridSender(cfg SendGridConfig) *SendGridSender {
	if cfg.APIKey == "" {
		return nil
	}

	name := cfg.FromName
	if name == "" {
		name = "SiteKit"
	}

	return &SendGridSender{
		client:    sendgrid.NewSendClient(cfg.APIKey),
		fromEmail: cfg.FromEmail,
		fromName:  name,
	}
}

func (s *SendGridSender) Send(ctx context.Context, m Message) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail("", m.To)
	email := mail.NewSingleEmail(from, m.Subject, to, m.Body, m.Body)

	_, err := s.client.SendWithContext(ctx, email)
	return err
}

// StubSender logs instead of sending. Used when email is not configured.
type StubSender struct {
	logger zerolog.Logger
}

func NewStubSender(logger zerolog.Logger) *StubSender {
	return &StubSender{logger: logger}
}

func (s *StubSender) Send(_ context.Context, m Message) error {
	s.logger.Info().
		Str("to", m.To).
		Str("subject", m.Subject).
		Msg("email sending disabled, dropping message")
	return nil
}
