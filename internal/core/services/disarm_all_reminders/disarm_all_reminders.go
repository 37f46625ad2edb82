package disarmallreminders

import (
	"context"
	e "ltapp/internal/core/domain/errors"
	"ltapp/internal/core/domain/logging"
	"ltapp/internal/core/domain/reminder"
	"ltapp/internal/core/services"
)

type Input struct{}

type Result struct{}

type service struct {
	log       logging.Logger
	store     reminder.Store
	scheduler reminder.Scheduler
}

func New(
	log logging.Logger,
	store reminder.Store,
	scheduler reminder.Scheduler,
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
	return &service{log: log, store: store, scheduler: scheduler}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := s.store.Clear(ctx); err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	s.scheduler.CancelAll(ctx)
	s.log.Info(ctx, "All reminders disarmed.")
	return result, nil
}
