package schedulereminder

import (
	"context"
	e "ltapp/internal/core/domain/errors"
	"ltapp/internal/core/domain/logging"
	"ltapp/internal/core/domain/message"
	"ltapp/internal/core/domain/reminder"
	"ltapp/internal/core/services"
)

type Input struct {
	EntityID reminder.EntityID
	Label    string
	At       reminder.TimeOfDay
}

type Result struct{}

type service struct {
	log      logging.Logger
	commands message.CommandSender
}

// New creates the foreground scheduling service: it hands the request
// to the background worker, which owns the persisted map and the live
// timers.
func New(log logging.Logger, commands message.CommandSender) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if commands == nil {
		panic(e.NewNilArgumentError("commands"))
	}
	return &service{log: log, commands: commands}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.EntityID == "" {
		return result, reminder.ErrEntityIDNotSet
	}

	command := message.NewScheduleNotification(string(input.EntityID), input.Label, input.At.String())
	if err := s.commands.Send(ctx, command); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("entityID", input.EntityID))
		return result, err
	}

	s.log.Info(
		ctx,
		"Reminder scheduling requested.",
		logging.Entry("entityID", input.EntityID),
		logging.Entry("at", input.At.String()),
	)
	return result, nil
}
