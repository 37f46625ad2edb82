package markrentpaid

import (
	"context"
	e "ltapp/internal/core/domain/errors"
	"ltapp/internal/core/domain/logging"
	"ltapp/internal/core/domain/message"
	"ltapp/internal/core/domain/rent"
	"ltapp/internal/core/services"
	"time"
)

type Input struct {
	ChargeID rent.ID
}

type Result struct {
	Charge rent.Charge
}

type service struct {
	log      logging.Logger
	charges  rent.Repository
	commands message.CommandSender
	now      func() time.Time
}

// New creates the payment service. A paid charge no longer needs its
// reminder, so the worker is told to cancel it.
func New(
	log logging.Logger,
	charges rent.Repository,
	commands message.CommandSender,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if charges == nil {
		panic(e.NewNilArgumentError("charges"))
	}
	if commands == nil {
		panic(e.NewNilArgumentError("commands"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, charges: charges, commands: commands, now: now}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	paid, err := s.charges.SetPaid(ctx, input.ChargeID, s.now())
	if err != nil {
		return result, err
	}

	if err := s.commands.Send(ctx, message.NewCancelNotification(paid.EntityID())); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("chargeID", paid.ID))
		return result, err
	}

	s.log.Info(ctx, "Rent charge paid.", logging.Entry("chargeID", paid.ID))
	result.Charge = paid
	return result, nil
}
