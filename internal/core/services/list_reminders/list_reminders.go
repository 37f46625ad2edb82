package listreminders

import (
	"context"
	e "ltapp/internal/core/domain/errors"
	"ltapp/internal/core/domain/logging"
	"ltapp/internal/core/domain/reminder"
	"ltapp/internal/core/services"
)

type Input struct{}

type Result struct {
	Reminders map[reminder.EntityID]reminder.TimeOfDay
}

type service struct {
	log   logging.Logger
	store reminder.Store
}

// New creates the listing service. It reads the persisted map directly
// from the shared store, so the foreground can repopulate its controls
// without a round trip through the worker.
func New(log logging.Logger, store reminder.Store) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if store == nil {
		panic(e.NewNilArgumentError("store"))
	}
	return &service{log: log, store: store}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	reminders, err := s.store.ReadAll(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	result.Reminders = reminders
	return result, nil
}
