package services

import (
	"ltapp/internal/app/deps"
	"ltapp/internal/core/services"
	cancelallreminders "ltapp/internal/core/services/cancel_all_reminders"
	cancelreminder "ltapp/internal/core/services/cancel_reminder"
	getrent "ltapp/internal/core/services/get_rent"
	listcomplaints "ltapp/internal/core/services/list_complaints"
	listreminders "ltapp/internal/core/services/list_reminders"
	logcomplaint "ltapp/internal/core/services/log_complaint"
	markrentpaid "ltapp/internal/core/services/mark_rent_paid"
	resolvecomplaint "ltapp/internal/core/services/resolve_complaint"
	schedulereminder "ltapp/internal/core/services/schedule_reminder"
	setrent "ltapp/internal/core/services/set_rent"
)

type Services struct {
	ScheduleReminder   services.Service[schedulereminder.Input, schedulereminder.Result]
	CancelReminder     services.Service[cancelreminder.Input, cancelreminder.Result]
	CancelAllReminders services.Service[cancelallreminders.Input, cancelallreminders.Result]
	ListReminders      services.Service[listreminders.Input, listreminders.Result]

	LogComplaint     services.Service[logcomplaint.Input, logcomplaint.Result]
	ListComplaints   services.Service[listcomplaints.Input, listcomplaints.Result]
	ResolveComplaint services.Service[resolvecomplaint.Input, resolvecomplaint.Result]

	SetRent      services.Service[setrent.Input, setrent.Result]
	GetRent      services.Service[getrent.Input, getrent.Result]
	MarkRentPaid services.Service[markrentpaid.Input, markrentpaid.Result]
}

func InitServices(deps *deps.Deps) *Services {
	return &Services{
		ScheduleReminder:   schedulereminder.New(deps.Logger, deps.CommandSender),
		CancelReminder:     cancelreminder.New(deps.Logger, deps.CommandSender),
		CancelAllReminders: cancelallreminders.New(deps.Logger, deps.CommandSender),
		ListReminders:      listreminders.New(deps.Logger, deps.ReminderStore),

		LogComplaint:     logcomplaint.New(deps.Logger, deps.ComplaintRepository, deps.Now),
		ListComplaints:   listcomplaints.New(deps.Logger, deps.ComplaintRepository),
		ResolveComplaint: resolvecomplaint.New(deps.Logger, deps.ComplaintRepository, deps.CommandSender, deps.Now),

		SetRent:      setrent.New(deps.Logger, deps.RentRepository, deps.Now),
		GetRent:      getrent.New(deps.Logger, deps.RentRepository),
		MarkRentPaid: markrentpaid.New(deps.Logger, deps.RentRepository, deps.CommandSender, deps.Now),
	}
}
