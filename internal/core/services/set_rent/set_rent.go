package setrent

import (
	"context"
	e "ltapp/internal/core/domain/errors"
	"ltapp/internal/core/domain/logging"
	"ltapp/internal/core/domain/rent"
	"ltapp/internal/core/services"
	"time"
)

type Input struct {
	TenantName string
	Amount     int64
	DueDate    time.Time
}

type Result struct {
	Charge rent.Charge
}

type service struct {
	log     logging.Logger
	charges rent.Repository
	now     func() time.Time
}

func New(
	log logging.Logger,
	charges rent.Repository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if charges == nil {
		panic(e.NewNilArgumentError("charges"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, charges: charges, now: now}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.Amount <= 0 {
		return result, rent.ErrInvalidAmount
	}

	created, err := s.charges.Create(ctx, rent.CreateInput{
		TenantName: input.TenantName,
		Amount:     input.Amount,
		DueDate:    input.DueDate,
		CreatedAt:  s.now(),
	})
	if err != nil {
		return result, err
	}

	s.log.Info(
		ctx,
		"Rent charge set.",
		logging.Entry("chargeID", created.ID),
		logging.Entry("tenantName", created.TenantName),
	)
	result.Charge = created
	return result, nil
}
