package queue

import (
	"context"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type HandlerFunc func(ctx context.Context, body []byte) error

type Consumer struct {
	conn     *amqp.Connection
	queue    string
	prefetch int
	log      *zap.Logger
}

func NewConsumer(conn *amqp.Connection, queue string, prefetch int, log *zap.Logger) *Consumer {
	return &Consumer{conn: conn, queue: queue, prefetch: prefetch, log: log}
}

// Run delivers messages to handle until ctx is done. A failed message is dropped, not requeued.
func (c *Consumer) Run(ctx context.Context, handle HandlerFunc) error {
	ch, err := c.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(c.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", c.queue, err)
	}
	if c.prefetch > 0 {
		if err := ch.Qos(c.prefetch, 0, false); err != nil {
			return fmt.Errorf("set qos: %w", err)
		}
	}

	deliveries, err := ch.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", c.queue, err)
	}

	c.log.Info("queue consumer started", zap.String("queue", c.queue))
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("delivery channel closed")
			}
			if err := handle(ctx, d.Body); err != nil {
				c.log.Error("message handling failed", zap.String("queue", c.queue), zap.Error(err))
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}
