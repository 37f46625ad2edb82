package firereminder

import (
	"context"
	e "ltapp/internal/core/domain/errors"
	"ltapp/internal/core/domain/logging"
	"ltapp/internal/core/domain/message"
	"ltapp/internal/core/domain/notification"
	"ltapp/internal/core/domain/reminder"
	"ltapp/internal/core/services"
)

type Input struct {
	Reminder reminder.Reminder
}

type Result struct{}

type service struct {
	log      logging.Logger
	store    reminder.Store
	notifier notification.Notifier
	events   message.EventPublisher
}

// New creates the timer-expiry service: it shows the notification
// (tagged by entity id so repeats replace rather than stack), tells the
// foreground to sound the alarm, and drops the fired entry from the
// persisted map.
func New(
	log logging.Logger,
	store reminder.Store,
	notifier notification.Notifier,
	events message.EventPublisher,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if store == nil {
		panic(e.NewNilArgumentError("store"))
	}
	if notifier == nil {
		panic(e.NewNilArgumentError("notifier"))
	}
	if events == nil {
		panic(e.NewNilArgumentError("events"))
	}
	return &service{log: log, store: store, notifier: notifier, events: events}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	rem := input.Reminder
	if err := rem.Validate(); err != nil {
		return result, err
	}

	shown := notification.Notification{
		Title:     rem.Label,
		Body:      "You have a pending reminder!",
		Tag:       string(rem.EntityID),
		Vibration: notification.DefaultVibration,
	}
	if err := s.notifier.Show(ctx, shown); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("entityID", rem.EntityID))
		return result, err
	}

	alarm := message.NewPlayAlarm(string(rem.EntityID), rem.Label)
	if err := s.events.Publish(ctx, alarm); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("entityID", rem.EntityID))
		return result, err
	}

	if err := s.store.Remove(ctx, rem.EntityID); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("entityID", rem.EntityID))
		return result, err
	}

	s.log.Info(ctx, "Reminder fired.", logging.Entry("entityID", rem.EntityID))
	return result, nil
}
