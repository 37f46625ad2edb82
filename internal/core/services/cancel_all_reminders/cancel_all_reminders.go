package cancelallreminders

import (
	"context"
	e "ltapp/internal/core/domain/errors"
	"ltapp/internal/core/domain/logging"
	"ltapp/internal/core/domain/message"
	"ltapp/internal/core/services"
)

type Input struct{}

type Result struct{}

type service struct {
	log      logging.Logger
	commands message.CommandSender
}

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
	if err := s.commands.Send(ctx, message.NewCancelAllNotifications()); err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	s.log.Info(ctx, "Bulk reminder cancellation requested.")
	return result, nil
}
