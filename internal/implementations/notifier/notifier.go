package notifier

import (
	"context"
	e "ltapp/internal/core/domain/errors"
	"ltapp/internal/core/domain/message"
	"ltapp/internal/core/domain/notification"
)

// MessageNotifier shows and dismisses notifications by emitting worker
// events. The foreground consumes them and drives its notification
// center and alarm sound.
type MessageNotifier struct {
	events message.EventPublisher
}

func NewMessageNotifier(events message.EventPublisher) *MessageNotifier {
	if events == nil {
		panic(e.NewNilArgumentError("events"))
	}
	return &MessageNotifier{events: events}
}

func (n *MessageNotifier) Show(ctx context.Context, notif notification.Notification) error {
	return n.events.Publish(
		ctx,
		message.NewShowNotification(notif.Title, notif.Body, notif.Tag, notif.Vibration),
	)
}

func (n *MessageNotifier) Dismiss(ctx context.Context, tag string) error {
	return n.events.Publish(ctx, message.NewStopAlarm(tag))
}
