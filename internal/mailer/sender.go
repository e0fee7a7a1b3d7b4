package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/meeting-notes/backend/internal/config"
	"github.com/meeting-notes/backend/internal/models"
)

// Relay delivers fully built messages. *mail.Client satisfies it.
type Relay interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// Option customises a Sender.
type Option func(*Sender)

// WithRelay replaces the SMTP client, mainly for tests.
func WithRelay(r Relay) Option {
	return func(s *Sender) {
		s.newRelay = func() (Relay, error) { return r, nil }
	}
}

// Sender sends summaries from the configured sender identity.
type Sender struct {
	cfg      config.MailConfig
	timeout  time.Duration
	newRelay func() (Relay, error)
}

// NewSender builds a Sender. Credentials are not checked until Send.
func NewSender(cfg config.MailConfig, timeout time.Duration, opts ...Option) *Sender {
	s := &Sender{
		cfg:     cfg,
		timeout: timeout,
	}
	s.newRelay = s.smtpRelay

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send delivers summary to every recipient in a single relay call.
//
// Delivery is all-or-nothing from the caller's point of view: a nil error means
// the relay accepted the message for all recipients, and an error means none of
// them should be assumed to have received it. Per-recipient results are not
// available. recipients must already be validated.
func (s *Sender) Send(ctx context.Context, recipients []string, summary, subject string) (models.DeliveryReceipt, error) {
	if len(recipients) == 0 {
		return models.DeliveryReceipt{}, ErrNoRecipients
	}
	if s.cfg.Username == "" || s.cfg.Password == "" {
		return models.DeliveryReceipt{}, relayError(ErrMissingCredentials.Error(), ErrMissingCredentials)
	}
	if subject == "" {
		subject = models.DefaultEmailSubject
	}

	msg, err := s.buildMessage(recipients, summary, subject)
	if err != nil {
		return models.DeliveryReceipt{}, err
	}

	relay, err := s.newRelay()
	if err != nil {
		return models.DeliveryReceipt{}, relayError("create relay client", err)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if err := relay.DialAndSendWithContext(ctx, msg); err != nil {
		return models.DeliveryReceipt{}, relayError("send message", err)
	}

	return models.DeliveryReceipt{RecipientCount: len(recipients)}, nil
}

func (s *Sender) buildMessage(recipients []string, summary, subject string) (*mail.Msg, error) {
	content := Compose(summary)

	msg := mail.NewMsg()
	if err := msg.FromFormat(s.cfg.FromName, s.cfg.Username); err != nil {
		return nil, relayError("set sender", err)
	}
	if err := msg.To(recipients...); err != nil {
		return nil, relayError("set recipients", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, content.Text)
	msg.AddAlternativeString(mail.TypeTextHTML, content.HTML)

	return msg, nil
}

func (s *Sender) smtpRelay() (Relay, error) {
	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.cfg.Username),
		mail.WithPassword(s.cfg.Password),
	}
	if s.timeout > 0 {
		opts = append(opts, mail.WithTimeout(s.timeout))
	}

	switch s.cfg.TLSPolicy {
	case config.TLSNone:
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	case config.TLSOpportunistic:
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	default:
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}
	// Implicit TLS relays (port 465) expect the handshake before SMTP starts.
	if s.cfg.Port == 465 && s.cfg.TLSPolicy != config.TLSNone {
		opts = append(opts, mail.WithSSL())
	}

	client, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("new smtp client for %s:%d: %w", s.cfg.Host, s.cfg.Port, err)
	}
	return client, nil
}
