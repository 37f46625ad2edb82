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

// RabbitMQ publishes worker events to the foreground over the event
// queue. The worker is the only producer, so no handshake applies on
// this side.
type RabbitMQ struct {
	log     logging.Logger
	channel *rabbitmq.Channel
	queue   string
}

func NewRabbitMQ(log logging.Logger, channel *rabbitmq.Channel, queue string) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if queue == "" {
		panic("queue name must not be empty")
	}
	return &RabbitMQ{log: log, channel: channel, queue: queue}
}

func (p *RabbitMQ) Publish(ctx context.Context, m message.Message) error {
	body, err := schema.Encode(m)
	if err != nil {
		return err
	}
	err = p.channel.PublishWithContext(ctx, "", p.queue, false, false, amqp091.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		logging.Error(ctx, p.log, err, logging.Entry("kind", m.Kind))
		return err
	}
	p.log.Info(
		ctx,
		"Worker event has been published.",
		logging.Entry("queue", p.queue),
		logging.Entry("kind", m.Kind),
	)
	return nil
}
