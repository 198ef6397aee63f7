package mailer

import (
	"context"
	"fmt"
	"io"

	"github.com/vfg2006/analytico-api/internal/config"
	"github.com/vfg2006/analytico-api/pkg/log"
	"gopkg.in/gomail.v2"
)

type Attachment struct {
	Name    string
	Content []byte
}

type Mailer interface {
	Send(ctx context.Context, to, subject, body string, attachments ...Attachment) error
}

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type smtpMailer struct {
	dialer  dialer
	from    string
	enabled bool
}

func NewMailer(cfg config.Mail) Mailer {
	return &smtpMailer{
		dialer:  gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:    cfg.From,
		enabled: cfg.Enabled,
	}
}

func (m *smtpMailer) Send(ctx context.Context, to, subject, body string, attachments ...Attachment) error {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"to":      to,
		"subject": subject,
	})

	if !m.enabled {
		logger.Info("mailer: envio desabilitado, e-mail não enviado")
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	for _, a := range attachments {
		content := a.Content
		msg.Attach(a.Name, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}))
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		logger.WithError(err).Error("mailer: falha no envio")
		return fmt.Errorf("erro ao enviar e-mail: %w", err)
	}

	logger.Info("mailer: e-mail enviado")
	return nil
}
