package listcomplaints

import (
	"context"
	"ltapp/internal/core/domain/complaint"
	e "ltapp/internal/core/domain/errors"
	"ltapp/internal/core/domain/logging"
	"ltapp/internal/core/services"
)

type Input struct{}

type Result struct {
	Complaints []complaint.Complaint
}

type service struct {
	log        logging.Logger
	complaints complaint.Repository
}

func New(log logging.Logger, complaints complaint.Repository) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if complaints == nil {
		panic(e.NewNilArgumentError("complaints"))
	}
	return &service{log: log, complaints: complaints}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	complaints, err := s.complaints.List(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	result.Complaints = complaints
	return result, nil
}
