package message

import "context"

// CommandSender delivers commands to the background worker. Delivery is
// a connect-then-send protocol: implementations must buffer commands
// until the worker's READY event has been observed, then flush them in
// order. There is no acknowledgement or retry beyond that.
type CommandSender interface {
	Send(ctx context.Context, m Message) error
}

// EventPublisher emits worker events to the foreground.
type EventPublisher interface {
	Publish(ctx context.Context, m Message) error
}
