package logcomplaint

import (
	"context"
	"ltapp/internal/core/domain/complaint"
	e "ltapp/internal/core/domain/errors"
	"ltapp/internal/core/domain/logging"
	"ltapp/internal/core/services"
	"time"
)

type Input struct {
	TenantName string
	Message    string
}

type Result struct {
	Complaint complaint.Complaint
}

type service struct {
	log        logging.Logger
	complaints complaint.Repository
	now        func() time.Time
}

func New(
	log logging.Logger,
	complaints complaint.Repository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if complaints == nil {
		panic(e.NewNilArgumentError("complaints"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, complaints: complaints, now: now}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	created, err := s.complaints.Create(ctx, complaint.CreateInput{
		TenantName: input.TenantName,
		Message:    input.Message,
		CreatedAt:  s.now(),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("tenantName", input.TenantName))
		return result, err
	}

	s.log.Info(ctx, "Complaint logged.", logging.Entry("complaintID", created.ID))
	result.Complaint = created
	return result, nil
}
