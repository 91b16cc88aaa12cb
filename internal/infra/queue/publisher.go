package queue

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type Publisher struct {
	ch    *amqp.Channel
	queue string
	log   *zap.Logger
}

// NewPublisher opens a channel and declares the durable queue.
func NewPublisher(conn *amqp.Connection, queue string, log *zap.Logger) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}
	return &Publisher{ch: ch, queue: queue, log: log}, nil
}

func (p *Publisher) PublishJSON(ctx context.Context, v interface{}) error {
	body, err := sonic.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}
	if err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	}); err != nil {
		return fmt.Errorf("publish to %s: %w", p.queue, err)
	}
	p.log.Debug("message published", zap.String("queue", p.queue), zap.Int("bytes", len(body)))
	return nil
}

func (p *Publisher) Close() error {
	return p.ch.Close()
}
