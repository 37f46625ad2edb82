package getrent

import (
	"context"
	e "ltapp/internal/core/domain/errors"
	"ltapp/internal/core/domain/logging"
	"ltapp/internal/core/domain/rent"
	"ltapp/internal/core/services"
)

type Input struct {
	TenantName string
}

type Result struct {
	Charge rent.Charge
}

type service struct {
	log     logging.Logger
	charges rent.Repository
}

func New(log logging.Logger, charges rent.Repository) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if charges == nil {
		panic(e.NewNilArgumentError("charges"))
	}
	return &service{log: log, charges: charges}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	charge, err := s.charges.GetByTenant(ctx, input.TenantName)
	if err != nil {
		return result, err
	}
	result.Charge = charge
	return result, nil
}
