package disarmreminder

import (
	"context"
	e "ltapp/internal/core/domain/errors"
	"ltapp/internal/core/domain/logging"
	"ltapp/internal/core/domain/notification"
	"ltapp/internal/core/domain/reminder"
	"ltapp/internal/core/services"
)

type Input struct {
	EntityID reminder.EntityID
}

type Result struct{}

type service struct {
	log       logging.Logger
	store     reminder.Store
	scheduler reminder.Scheduler
	notifier  notification.Notifier
}

// New creates the worker-side cancellation service. Disarming an
// entity with no outstanding reminder is a no-op, not an error.
func New(
	log logging.Logger,
	store reminder.Store,
	scheduler reminder.Scheduler,
	notifier notification.Notifier,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if store == nil {
		panic(e.NewNilArgumentError("store"))
	}
	if scheduler == nil {
		panic(e.NewNilArgumentError("scheduler"))
	}
	if notifier == nil {
		panic(e.NewNilArgumentError("notifier"))
	}
	return &service{log: log, store: store, scheduler: scheduler, notifier: notifier}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.EntityID == "" {
		return result, reminder.ErrEntityIDNotSet
	}

	if err := s.store.Remove(ctx, input.EntityID); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("entityID", input.EntityID))
		return result, err
	}
	s.scheduler.Cancel(ctx, input.EntityID)
	if err := s.notifier.Dismiss(ctx, string(input.EntityID)); err != nil {
		// The timer is already cleared; a sounding alarm that could not
		// be stopped is logged and left to the foreground control.
		logging.Error(ctx, s.log, err, logging.Entry("entityID", input.EntityID))
	}

	s.log.Info(ctx, "Reminder disarmed.", logging.Entry("entityID", input.EntityID))
	return result, nil
}
