package workercommands

import (
	"context"
	"ltapp/internal/core/domain/logging"
	"ltapp/internal/core/domain/message"
	"ltapp/internal/rabbitmq/schema"
	"testing"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	published []amqp091.Publishing
	keys      []string
}

func (c *fakeChannel) PublishWithContext(
	ctx context.Context,
	exchange, key string,
	mandatory, immediate bool,
	msg amqp091.Publishing,
) error {
	c.published = append(c.published, msg)
	c.keys = append(c.keys, key)
	return nil
}

func (c *fakeChannel) kinds(t *testing.T) []message.Kind {
	t.Helper()
	kinds := make([]message.Kind, 0, len(c.published))
	for _, p := range c.published {
		m, err := schema.Decode(p.Body)
		require.Nil(t, err)
		kinds = append(kinds, m.Kind)
	}
	return kinds
}

func TestCommandsAreBufferedUntilReady(t *testing.T) {
	assert := require.New(t)
	channel := &fakeChannel{}
	sender := NewRabbitMQ(logging.NewFakeLogger(), channel, "ltapp.worker.commands")

	err := sender.Send(context.Background(), message.NewScheduleNotification("complaint-1", "Leaking tap", "09:30"))
	assert.Nil(err)
	err = sender.Send(context.Background(), message.NewCancelNotification("rent-2"))
	assert.Nil(err)
	assert.Empty(channel.published)

	sender.SetReady(context.Background())

	assert.Equal(
		[]message.Kind{message.KindScheduleNotification, message.KindCancelNotification},
		channel.kinds(t),
	)
	assert.Equal([]string{"ltapp.worker.commands", "ltapp.worker.commands"}, channel.keys)
}

func TestCommandsAfterReadyAreSentDirectly(t *testing.T) {
	assert := require.New(t)
	channel := &fakeChannel{}
	sender := NewRabbitMQ(logging.NewFakeLogger(), channel, "ltapp.worker.commands")

	sender.SetReady(context.Background())
	err := sender.Send(context.Background(), message.NewSkipWaiting())

	assert.Nil(err)
	assert.Equal([]message.Kind{message.KindSkipWaiting}, channel.kinds(t))
}

func TestReadyLatches(t *testing.T) {
	assert := require.New(t)
	channel := &fakeChannel{}
	sender := NewRabbitMQ(logging.NewFakeLogger(), channel, "ltapp.worker.commands")

	sender.SetReady(context.Background())
	sender.SetReady(context.Background())
	err := sender.Send(context.Background(), message.NewCancelAllNotifications())

	assert.Nil(err)
	assert.Len(channel.published, 1)
}

func TestInvalidCommandIsRejected(t *testing.T) {
	channel := &fakeChannel{}
	sender := NewRabbitMQ(logging.NewFakeLogger(), channel, "ltapp.worker.commands")

	err := sender.Send(context.Background(), message.Message{Kind: message.KindScheduleNotification})

	require.ErrorIs(t, err, message.ErrPayloadMissing)
	require.Empty(t, channel.published)
}
