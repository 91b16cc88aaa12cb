package mailer

import (
	"context"
	"crypto/tls"
	"fmt"

	mail "github.com/go-mail/mail/v2"
	"github.com/google/uuid"

	"github.com/founderflow/founderflow/internal/config"
)

type smtpMailer struct {
	cfg config.MailCfg
}

func NewSMTP(cfg config.MailCfg) Mailer {
	return &smtpMailer{cfg: cfg}
}

func (m *smtpMailer) Send(ctx context.Context, msg Message) (*SendResult, error) {
	if m.cfg.SMTPHost == "" {
		return nil, fmt.Errorf("smtp not configured (mail.smtpHost)")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id := fmt.Sprintf("<%s@%s>", uuid.NewString(), m.cfg.SMTPHost)

	mm := mail.NewMessage()
	mm.SetHeader("From", msg.From)
	mm.SetHeader("To", msg.To...)
	mm.SetHeader("Subject", msg.Subject)
	mm.SetHeader("Message-ID", id)
	mm.SetBody("text/html", msg.HTML)

	d := mail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.SMTPUsername, m.cfg.SMTPPassword)
	d.StartTLSPolicy = mail.MandatoryStartTLS
	d.TLSConfig = &tls.Config{ServerName: m.cfg.SMTPHost}

	if err := d.DialAndSend(mm); err != nil {
		return nil, fmt.Errorf("smtp send: %w", err)
	}
	return &SendResult{ID: id}, nil
}
