package armreminder

import (
	"context"
	e "ltapp/internal/core/domain/errors"
	"ltapp/internal/core/domain/logging"
	"ltapp/internal/core/domain/reminder"
	"ltapp/internal/core/services"
	"time"
)

type Input struct {
	EntityID reminder.EntityID
	Label    string
	At       reminder.TimeOfDay
}

type Result struct {
	Reminder reminder.Reminder
	FireAt   time.Time
}

type service struct {
	log       logging.Logger
	store     reminder.Store
	scheduler reminder.Scheduler
	now       func() time.Time
}

// New creates the worker-side scheduling service. It upserts the
// persisted reminder map and (re)arms the timer in the same logical
// step, replacing any prior timer for the entity.
func New(
	log logging.Logger,
	store reminder.Store,
	scheduler reminder.Scheduler,
	now func() time.Time,
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
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, store: store, scheduler: scheduler, now: now}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	rem := reminder.Reminder{
		EntityID: input.EntityID,
		Label:    input.Label,
		At:       input.At,
		ArmedAt:  s.now(),
	}
	if err := rem.Validate(); err != nil {
		return result, err
	}

	if err := s.store.Set(ctx, rem.EntityID, rem.At); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("entityID", rem.EntityID))
		return result, err
	}
	if err := s.scheduler.Schedule(ctx, rem); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("entityID", rem.EntityID))
		return result, err
	}

	result.Reminder = rem
	result.FireAt = rem.At.NextAfter(rem.ArmedAt)
	s.log.Info(
		ctx,
		"Reminder armed.",
		logging.Entry("entityID", rem.EntityID),
		logging.Entry("at", rem.At.String()),
		logging.Entry("fireAt", result.FireAt),
	)
	return result, nil
}
