package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/founderflow/founderflow/internal/infra/mailer"
)

// ResetEmailService sends the fixed password reset email.
type ResetEmailService interface {
	Send(ctx context.Context, email, resetLink string) (*mailer.SendResult, error)
}

type resetEmailService struct {
	mail    mailer.Mailer
	from    string
	logoURL string
}

func NewResetEmailService(m mailer.Mailer, from, logoURL string) ResetEmailService {
	return &resetEmailService{mail: m, from: from, logoURL: logoURL}
}

func (s *resetEmailService) Send(ctx context.Context, email, resetLink string) (*mailer.SendResult, error) {
	email, err := normalizeEmail("email", email)
	if err != nil {
		return nil, err
	}
	resetLink = strings.TrimSpace(resetLink)
	if resetLink == "" {
		return nil, invalid("resetLink", "is required")
	}

	html, err := mailer.ResetPasswordHTML(resetLink, s.logoURL)
	if err != nil {
		return nil, fmt.Errorf("render reset email: %w", err)
	}
	return s.mail.Send(mailer.WithKind(ctx, "reset"), mailer.Message{
		From:    s.from,
		To:      []string{email},
		Subject: mailer.ResetSubject,
		HTML:    html,
	})
}
