package workercommands

import (
	"context"
	e "ltapp/internal/core/domain/errors"
	"ltapp/internal/core/domain/logging"
	"ltapp/internal/core/domain/message"
	"ltapp/internal/rabbitmq/schema"
	"sync"

	"github.com/rabbitmq/amqp091-go"
)

type publisher interface {
	PublishWithContext(
		ctx context.Context,
		exchange, key string,
		mandatory, immediate bool,
		msg amqp091.Publishing,
	) error
}

// RabbitMQ sends commands to the background worker over its command
// queue. Commands sent before the worker's READY event are buffered and
// flushed in order once readiness is observed; readiness latches and is
// never reset.
type RabbitMQ struct {
	log     logging.Logger
	channel publisher
	queue   string

	lock    sync.Mutex
	ready   bool
	pending []message.Message
}

func NewRabbitMQ(log logging.Logger, channel publisher, queue string) *RabbitMQ {
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

func (s *RabbitMQ) Send(ctx context.Context, m message.Message) error {
	if err := m.Validate(); err != nil {
		return err
	}

	s.lock.Lock()
	if !s.ready {
		s.pending = append(s.pending, m)
		s.lock.Unlock()
		s.log.Info(
			ctx,
			"Worker is not ready yet, command buffered.",
			logging.Entry("kind", m.Kind),
			logging.Entry("buffered", len(s.pending)),
		)
		return nil
	}
	s.lock.Unlock()

	return s.publish(ctx, m)
}

// SetReady latches readiness and flushes the buffered commands in the
// order they were sent.
func (s *RabbitMQ) SetReady(ctx context.Context) {
	s.lock.Lock()
	if s.ready {
		s.lock.Unlock()
		return
	}
	s.ready = true
	pending := s.pending
	s.pending = nil
	s.lock.Unlock()

	for _, m := range pending {
		if err := s.publish(ctx, m); err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("kind", m.Kind))
		}
	}
}

func (s *RabbitMQ) publish(ctx context.Context, m message.Message) error {
	body, err := schema.Encode(m)
	if err != nil {
		return err
	}
	err = s.channel.PublishWithContext(ctx, "", s.queue, false, false, amqp091.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("kind", m.Kind))
		return err
	}
	s.log.Info(
		ctx,
		"Worker command has been published.",
		logging.Entry("queue", s.queue),
		logging.Entry("kind", m.Kind),
	)
	return nil
}
