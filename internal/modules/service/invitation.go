package service

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/founderflow/founderflow/internal/infra/mailer"
	"github.com/founderflow/founderflow/internal/infra/queue"
)

// Invitation is the message carried on the invitation queue.
type Invitation struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type InvitationDispatcher interface {
	Dispatch(ctx context.Context, inv Invitation) error
}

// InvitationSender renders and sends invitation emails. It is the inline dispatcher
// and the queue consumer's handler.
type InvitationSender struct {
	mail     mailer.Mailer
	from     string
	loginURL string
	log      *zap.Logger
}

func NewInvitationSender(m mailer.Mailer, from, loginURL string, log *zap.Logger) *InvitationSender {
	return &InvitationSender{mail: m, from: from, loginURL: loginURL, log: log}
}

func (s *InvitationSender) Dispatch(ctx context.Context, inv Invitation) error {
	html, err := mailer.InvitationHTML(inv.FullName, inv.Role, s.loginURL)
	if err != nil {
		return fmt.Errorf("render invitation: %w", err)
	}
	res, err := s.mail.Send(mailer.WithKind(ctx, "invitation"), mailer.Message{
		From:    s.from,
		To:      []string{inv.Email},
		Subject: mailer.InvitationSubject,
		HTML:    html,
	})
	if err != nil {
		return err
	}
	s.log.Info("invitation sent", zap.String("message_id", res.ID))
	return nil
}

// HandleMessage decodes a queued invitation and sends it.
func (s *InvitationSender) HandleMessage(ctx context.Context, body []byte) error {
	var inv Invitation
	if err := sonic.Unmarshal(body, &inv); err != nil {
		return fmt.Errorf("decode invitation: %w", err)
	}
	if inv.Email == "" {
		return fmt.Errorf("invitation without recipient")
	}
	return s.Dispatch(ctx, inv)
}

type queuedInvitations struct {
	conn  *amqp.Connection
	queue string
	log   *zap.Logger
}

// NewQueuedInvitations publishes invitations to the broker for the consumer to send.
func NewQueuedInvitations(conn *amqp.Connection, queueName string, log *zap.Logger) InvitationDispatcher {
	return &queuedInvitations{conn: conn, queue: queueName, log: log}
}

func (q *queuedInvitations) Dispatch(ctx context.Context, inv Invitation) error {
	pub, err := queue.NewPublisher(q.conn, q.queue, q.log)
	if err != nil {
		return err
	}
	defer pub.Close()
	return pub.PublishJSON(ctx, inv)
}
