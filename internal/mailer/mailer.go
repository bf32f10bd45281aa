// AngelaMos | 2026
// mailer.go

package mailer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/wneessen/go-mail"

	"github.com/carterperez-dev/tierhub/internal/config"
	"github.com/carterperez-dev/tierhub/internal/observability"
)

var ErrDisabled = errors.New("mail delivery is not configured")

type SMTPMailer struct {
	client  *mail.Client
	from    string
	metrics *observability.Metrics
}

func NewSMTPMailer(cfg config.MailConfig, metrics *observability.Metrics) (*SMTPMailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return &SMTPMailer{
		client:  client,
		from:    cfg.From,
		metrics: metrics,
	}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	err := m.send(ctx, to, subject, body)
	m.record(err)
	return err
}

func (m *SMTPMailer) send(ctx context.Context, to, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

func (m *SMTPMailer) record(err error) {
	if m.metrics == nil {
		return
	}
	result := "sent"
	if err != nil {
		result = "failed"
	}
	m.metrics.EmailsSent.WithLabelValues(result).Inc()
}

// Disabled logs and rejects every message. It is used when no SMTP host is
// configured.
type Disabled struct {
	Logger *slog.Logger
}

func (d Disabled) Send(ctx context.Context, to, subject, _ string) error {
	if d.Logger != nil {
		d.Logger.WarnContext(ctx, "mail not sent, smtp is not configured",
			"subject", subject,
		)
	}
	return ErrDisabled
}
