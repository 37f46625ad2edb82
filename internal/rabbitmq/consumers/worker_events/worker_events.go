package workerevents

import (
	"context"
	e "ltapp/internal/core/domain/errors"
	"ltapp/internal/core/domain/logging"
	"ltapp/internal/core/domain/message"
	"ltapp/internal/rabbitmq"
	"ltapp/internal/rabbitmq/schema"

	"github.com/rabbitmq/amqp091-go"
)

type handler interface {
	HandleEvent(ctx context.Context, m message.Message) error
}

// Consumer feeds decoded worker events to the foreground side.
type Consumer struct {
	log     logging.Logger
	channel *rabbitmq.Channel
	queue   string
	handler handler
}

func New(log logging.Logger, channel *rabbitmq.Channel, queue string, h handler) *Consumer {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if queue == "" {
		panic("queue name must not be empty")
	}
	if h == nil {
		panic(e.NewNilArgumentError("handler"))
	}
	return &Consumer{log: log, channel: channel, queue: queue, handler: h}
}

func (c *Consumer) Consume() error {
	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		c.log.Error(context.Background(), "Could not start consuming.", logging.Entry("err", err))
		return err
	}

	go func() {
		for delivery := range deliveries {
			m, err := schema.Decode(delivery.Body)
			if err != nil {
				c.log.Error(
					context.Background(),
					"Could not decode worker event.",
					logging.Entry("err", err),
					logging.Entry("body", string(delivery.Body)),
				)
				c.ack(delivery)
				continue
			}

			if err := c.handler.HandleEvent(context.Background(), m); err != nil {
				c.log.Error(
					context.Background(),
					"Could not handle worker event.",
					logging.Entry("kind", m.Kind),
					logging.Entry("err", err),
				)
			}
			c.ack(delivery)
		}
	}()
	return nil
}

func (c *Consumer) ack(delivery amqp091.Delivery) {
	if err := delivery.Ack(true); err != nil {
		c.log.Error(context.Background(), "Could not ACK AMQP message.", logging.Entry("err", err))
	}
}
