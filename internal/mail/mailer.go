// Package mail delivers the assembled digest over SMTP.
package mail

import (
	"bytes"
	"context"

	"github.com/rotisserie/eris"
	gomail "github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"github.com/sells-group/cfo-monitor/internal/model"
)

// Mailer submits one digest message per run.
type Mailer interface {
	Send(ctx context.Context, report model.Report) error
}

// SMTPConfig holds the relay settings.
type SMTPConfig struct {
	Host     string
	Port     int
	From     string
	To       string
	Password string
}

// SMTP sends over an authenticated SSL connection to a fixed relay.
type SMTP struct {
	cfg SMTPConfig
}

// NewSMTP creates the SMTP mailer.
func NewSMTP(cfg SMTPConfig) *SMTP {
	return &SMTP{cfg: cfg}
}

// Send builds a multipart message (HTML body, binary attachments) and
// submits it in a single attempt.
func (m *SMTP) Send(ctx context.Context, report model.Report) error {
	msg, err := buildMessage(m.cfg.From, m.cfg.To, report)
	if err != nil {
		return err
	}

	client, err := gomail.NewClient(m.cfg.Host,
		gomail.WithPort(m.cfg.Port),
		gomail.WithSSL(),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.cfg.From),
		gomail.WithPassword(m.cfg.Password),
	)
	if err != nil {
		return eris.Wrap(err, "mail: create client")
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return eris.Wrap(err, "mail: send")
	}

	zap.L().Info("email sent",
		zap.String("to", m.cfg.To),
		zap.Int("attachments", len(report.Attachments)),
	)
	return nil
}

func buildMessage(from, to string, report model.Report) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, eris.Wrap(err, "mail: set from")
	}
	if err := msg.To(to); err != nil {
		return nil, eris.Wrap(err, "mail: set to")
	}
	msg.Subject(report.Subject)
	msg.SetBodyString(gomail.TypeTextHTML, report.HTMLBody)

	for _, att := range report.Attachments {
		err := msg.AttachReader(att.Filename, bytes.NewReader(att.Data),
			gomail.WithFileContentType(gomail.ContentType(att.ContentType)))
		if err != nil {
			return nil, eris.Wrapf(err, "mail: attach %s", att.Filename)
		}
	}
	return msg, nil
}
