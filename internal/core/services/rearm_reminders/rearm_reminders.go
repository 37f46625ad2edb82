package rearmreminders

import (
	"context"
	e "ltapp/internal/core/domain/errors"
	"ltapp/internal/core/domain/logging"
	"ltapp/internal/core/domain/reminder"
	"ltapp/internal/core/services"
	"sort"
	"time"
)

type Input struct{}

type Result struct {
	Rearmed []reminder.Reminder
}

// Plan derives the reminders to arm from a persisted map snapshot.
// Labels are not durable, so the entity id doubles as the label. Fire
// times are recomputed on arming; the rollover rule handles entries
// whose target time has already passed.
func Plan(entries map[reminder.EntityID]reminder.TimeOfDay, now time.Time) []reminder.Reminder {
	reminders := make([]reminder.Reminder, 0, len(entries))
	for entityID, at := range entries {
		reminders = append(reminders, reminder.Reminder{
			EntityID: entityID,
			Label:    string(entityID),
			At:       at,
			ArmedAt:  now,
		})
	}
	sort.Slice(reminders, func(i, j int) bool { return reminders[i].EntityID < reminders[j].EntityID })
	return reminders
}

type service struct {
	log       logging.Logger
	store     reminder.Store
	scheduler reminder.Scheduler
	now       func() time.Time
}

// New creates the startup re-arm service: it reads the persisted
// reminder map and rebuilds the in-memory timers from it.
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
	entries, err := s.store.ReadAll(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}

	for _, rem := range Plan(entries, s.now()) {
		if err := s.scheduler.Schedule(ctx, rem); err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("entityID", rem.EntityID))
			return result, err
		}
		result.Rearmed = append(result.Rearmed, rem)
	}

	s.log.Info(ctx, "Reminders rearmed.", logging.Entry("count", len(result.Rearmed)))
	return result, nil
}
