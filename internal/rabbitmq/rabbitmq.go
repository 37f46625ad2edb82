package rabbitmq

import (
	"context"
	"fmt"
	"ltapp/internal/core/domain/logging"
	"sync/atomic"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const reconnectDelay = 3 * time.Second

// Connection wraps amqp.Connection and redials in the background when
// the broker drops the link.
type Connection struct {
	*amqp.Connection
	log logging.Logger
}

func Dial(url string, log logging.Logger) (*Connection, error) {
	if log == nil {
		return nil, fmt.Errorf("log argument must not be nil")
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	connection := &Connection{Connection: conn, log: log}

	go func() {
		for {
			reason, ok := <-connection.Connection.NotifyClose(make(chan *amqp.Error))
			if !ok {
				log.Info(context.Background(), "RabbitMQ connection closed.")
				break
			}

			log.Warning(context.Background(), "RabbitMQ connection lost.", logging.Entry("reason", *reason))
			for {
				time.Sleep(reconnectDelay)

				conn, err := amqp.Dial(url)
				if err == nil {
					connection.Connection = conn
					log.Info(context.Background(), "RabbitMQ reconnected.")
					break
				}
				log.Error(context.Background(), "RabbitMQ reconnect failed.", logging.Entry("err", err))
			}
		}
	}()

	return connection, nil
}

// Channel returns a channel that recreates itself after broker-side
// closes. Only an explicit Close by the caller stops it for good.
func (c *Connection) Channel() (*Channel, error) {
	ch, err := c.Connection.Channel()
	if err != nil {
		return nil, err
	}

	channel := &Channel{Channel: ch, log: c.log}

	go func() {
		for {
			reason, ok := <-channel.Channel.NotifyClose(make(chan *amqp.Error))
			if !ok || channel.IsClosed() {
				channel.Close() // set the closed flag even when the broker closed first
				break
			}

			c.log.Warning(context.Background(), "RabbitMQ channel closed.", logging.Entry("reason", *reason))
			for {
				time.Sleep(reconnectDelay)

				ch, err := c.Connection.Channel()
				if err == nil {
					c.log.Info(context.Background(), "RabbitMQ channel recreated.")
					channel.Channel = ch
					break
				}
				c.log.Error(context.Background(), "Channel recreate failed.", logging.Entry("err", err))
			}
		}
	}()

	return channel, nil
}

// Channel wraps amqp.Channel with a closed flag distinguishing a
// deliberate Close from a broker-side one.
type Channel struct {
	*amqp.Channel
	closed int32
	log    logging.Logger
}

func (ch *Channel) IsClosed() bool {
	return atomic.LoadInt32(&ch.closed) == 1
}

func (ch *Channel) Close() error {
	if ch.IsClosed() {
		return amqp.ErrClosed
	}
	atomic.StoreInt32(&ch.closed, 1)
	return ch.Channel.Close()
}

// Consume keeps the returned delivery stream open across reconnects.
// It ends only after the caller closes the channel.
func (ch *Channel) Consume(
	queue, consumer string,
	autoAck, exclusive, noLocal, noWait bool,
	args amqp.Table,
) (<-chan amqp.Delivery, error) {
	deliveries := make(chan amqp.Delivery)

	go func() {
		for {
			d, err := ch.Channel.Consume(queue, consumer, autoAck, exclusive, noLocal, noWait, args)
			if err != nil {
				ch.log.Error(context.Background(), "Consume failed.", logging.Entry("err", err))
				time.Sleep(reconnectDelay)
				continue
			}

			for msg := range d {
				deliveries <- msg
			}

			// Give the reconnect goroutine a chance to set the closed flag.
			time.Sleep(reconnectDelay)

			if ch.IsClosed() {
				ch.log.Info(context.Background(), "Channel is closed, stop consuming.", logging.Entry("queue", queue))
				break
			}
		}
	}()

	return deliveries, nil
}
