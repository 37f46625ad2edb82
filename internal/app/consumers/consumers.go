package consumers

import (
	"context"
	"ltapp/internal/app/deps"
	dl "ltapp/internal/core/domain/logging"
	"ltapp/internal/events"
	workerevents "ltapp/internal/rabbitmq/consumers/worker_events"
)

// InitConsumers starts the worker event consumer on the foreground
// side.
func InitConsumers(deps *deps.Deps) func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	handler := events.New(
		deps.Logger,
		deps.NotificationCenter,
		deps.CommandSender,
		deps.SseServer,
		deps.Config.EventStream,
	)

	queue := deps.Config.RabbitmqEventQueue
	consumer := workerevents.New(deps.Logger, rabbitmqChannel, queue, handler)
	if err := consumer.Consume(); err != nil {
		deps.Logger.Error(
			context.Background(),
			"Could not start RabbitMQ consuming.",
			dl.Entry("err", err),
			dl.Entry("queue", queue),
		)
		panic(err)
	}

	deps.Logger.Info(context.Background(), "Consumer has started.", dl.Entry("queue", queue))
	return func() { rabbitmqChannel.Close() }
}
