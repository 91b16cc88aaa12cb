// Package mailer sends transactional email through Resend or SMTP.
package mailer

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/founderflow/founderflow/internal/config"
	"github.com/founderflow/founderflow/internal/infra/httpclient"
)

type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// SendResult is the provider's answer; ID is the provider message id.
type SendResult struct {
	ID string `json:"id"`
}

type Mailer interface {
	Send(ctx context.Context, msg Message) (*SendResult, error)
}

// New picks the provider named by mail.provider.
func New(cfg *config.Config, log *zap.Logger) (Mailer, error) {
	switch cfg.Mail.Provider {
	case "", "resend":
		return NewResend(httpclient.NewResendClient(cfg, log)), nil
	case "smtp":
		return NewSMTP(cfg.Mail), nil
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.Mail.Provider)
	}
}

type resendMailer struct {
	client *httpclient.ResendClient
}

func NewResend(client *httpclient.ResendClient) Mailer {
	return &resendMailer{client: client}
}

func (m *resendMailer) Send(ctx context.Context, msg Message) (*SendResult, error) {
	out, err := m.client.SendEmail(ctx, httpclient.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		HTML:    msg.HTML,
	})
	if err != nil {
		return nil, err
	}
	return &SendResult{ID: out.ID}, nil
}

type instrumented struct {
	next Mailer
	sent *prometheus.CounterVec
}

// WithMetrics counts sends by kind and outcome. kind is taken from ctx via WithKind.
func WithMetrics(next Mailer, sent *prometheus.CounterVec) Mailer {
	return &instrumented{next: next, sent: sent}
}

func (m *instrumented) Send(ctx context.Context, msg Message) (*SendResult, error) {
	res, err := m.next.Send(ctx, msg)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.sent.WithLabelValues(KindFrom(ctx), outcome).Inc()
	return res, err
}

type kindKey struct{}

// WithKind tags ctx with the email kind ("reset", "invitation") for metrics.
func WithKind(ctx context.Context, kind string) context.Context {
	return context.WithValue(ctx, kindKey{}, kind)
}

func KindFrom(ctx context.Context) string {
	if k, ok := ctx.Value(kindKey{}).(string); ok {
		return k
	}
	return "other"
}
