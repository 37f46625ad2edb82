package resolvecomplaint

import (
	"context"
	"ltapp/internal/core/domain/complaint"
	e "ltapp/internal/core/domain/errors"
	"ltapp/internal/core/domain/logging"
	"ltapp/internal/core/domain/message"
	"ltapp/internal/core/services"
	"time"
)

type Input struct {
	ComplaintID complaint.ID
}

type Result struct {
	Complaint complaint.Complaint
}

type service struct {
	log        logging.Logger
	complaints complaint.Repository
	commands   message.CommandSender
	now        func() time.Time
}

// New creates the resolution service. Resolving a complaint also
// cancels the reminder scoped to it, since the owning entity is gone.
func New(
	log logging.Logger,
	complaints complaint.Repository,
	commands message.CommandSender,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if complaints == nil {
		panic(e.NewNilArgumentError("complaints"))
	}
	if commands == nil {
		panic(e.NewNilArgumentError("commands"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, complaints: complaints, commands: commands, now: now}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	resolved, err := s.complaints.SetResolved(ctx, input.ComplaintID, s.now())
	if err != nil {
		return result, err
	}

	if err := s.commands.Send(ctx, message.NewCancelNotification(resolved.EntityID())); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("complaintID", resolved.ID))
		return result, err
	}

	s.log.Info(ctx, "Complaint resolved.", logging.Entry("complaintID", resolved.ID))
	result.Complaint = resolved
	return result, nil
}
