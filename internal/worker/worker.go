package worker

import (
	"context"
	"ltapp/internal/core/domain/assetcache"
	e "ltapp/internal/core/domain/errors"
	"ltapp/internal/core/domain/logging"
	"ltapp/internal/core/domain/message"
	"ltapp/internal/core/domain/reminder"
	"ltapp/internal/core/services"
	activatecachegeneration "ltapp/internal/core/services/activate_cache_generation"
	armreminder "ltapp/internal/core/services/arm_reminder"
	disarmallreminders "ltapp/internal/core/services/disarm_all_reminders"
	disarmreminder "ltapp/internal/core/services/disarm_reminder"
	installcachegeneration "ltapp/internal/core/services/install_cache_generation"
	rearmreminders "ltapp/internal/core/services/rearm_reminders"
	"sync"
)

// Worker owns the background side: the live timers and the cache
// lifecycle. It consumes foreground commands and emits events, READY
// being the last step of startup so that commands buffered by the
// foreground are never flushed into a half-initialised worker.
type Worker struct {
	log          logging.Logger
	arm          services.Service[armreminder.Input, armreminder.Result]
	disarm       services.Service[disarmreminder.Input, disarmreminder.Result]
	disarmAll    services.Service[disarmallreminders.Input, disarmallreminders.Result]
	rearm        services.Service[rearmreminders.Input, rearmreminders.Result]
	install      services.Service[installcachegeneration.Input, installcachegeneration.Result]
	activate     services.Service[activatecachegeneration.Input, activatecachegeneration.Result]
	events       message.EventPublisher
	autoActivate bool

	lock    sync.Mutex
	pending assetcache.Name
}

func New(
	log logging.Logger,
	arm services.Service[armreminder.Input, armreminder.Result],
	disarm services.Service[disarmreminder.Input, disarmreminder.Result],
	disarmAll services.Service[disarmallreminders.Input, disarmallreminders.Result],
	rearm services.Service[rearmreminders.Input, rearmreminders.Result],
	install services.Service[installcachegeneration.Input, installcachegeneration.Result],
	activate services.Service[activatecachegeneration.Input, activatecachegeneration.Result],
	events message.EventPublisher,
	autoActivate bool,
) *Worker {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if arm == nil {
		panic(e.NewNilArgumentError("arm"))
	}
	if disarm == nil {
		panic(e.NewNilArgumentError("disarm"))
	}
	if disarmAll == nil {
		panic(e.NewNilArgumentError("disarmAll"))
	}
	if rearm == nil {
		panic(e.NewNilArgumentError("rearm"))
	}
	if install == nil {
		panic(e.NewNilArgumentError("install"))
	}
	if activate == nil {
		panic(e.NewNilArgumentError("activate"))
	}
	if events == nil {
		panic(e.NewNilArgumentError("events"))
	}
	return &Worker{
		log:          log,
		arm:          arm,
		disarm:       disarm,
		disarmAll:    disarmAll,
		rearm:        rearm,
		install:      install,
		activate:     activate,
		events:       events,
		autoActivate: autoActivate,
	}
}

// Startup rebuilds the timers from the persisted reminder map, installs
// a fresh cache generation and finally announces readiness. A failed
// install is logged but does not block readiness, reminders matter
// more than a cold cache.
func (w *Worker) Startup(ctx context.Context) error {
	if _, err := w.rearm.Run(ctx, rearmreminders.Input{}); err != nil {
		logging.Error(ctx, w.log, err)
		return err
	}

	installed, err := w.install.Run(ctx, installcachegeneration.Input{})
	if err != nil {
		logging.Error(ctx, w.log, err)
	} else if w.autoActivate {
		if _, err := w.activate.Run(
			ctx,
			activatecachegeneration.Input{Name: installed.Generation.Name},
		); err != nil {
			logging.Error(ctx, w.log, err, logging.Entry("generation", installed.Generation.Name))
		}
	} else {
		w.lock.Lock()
		w.pending = installed.Generation.Name
		w.lock.Unlock()
		w.log.Info(
			ctx,
			"Cache generation installed, waiting for activation command.",
			logging.Entry("generation", installed.Generation.Name),
		)
	}

	if err := w.events.Publish(ctx, message.NewReady()); err != nil {
		logging.Error(ctx, w.log, err)
		return err
	}
	w.log.Info(ctx, "Worker is ready.")
	return nil
}

func (w *Worker) HandleCommand(ctx context.Context, m message.Message) error {
	switch m.Kind {
	case message.KindScheduleNotification:
		at, err := reminder.ParseTimeOfDay(m.ScheduleNotification.At)
		if err != nil {
			return err
		}
		_, err = w.arm.Run(ctx, armreminder.Input{
			EntityID: reminder.EntityID(m.ScheduleNotification.EntityID),
			Label:    m.ScheduleNotification.Label,
			At:       at,
		})
		return err
	case message.KindCancelNotification:
		_, err := w.disarm.Run(ctx, disarmreminder.Input{
			EntityID: reminder.EntityID(m.CancelNotification.EntityID),
		})
		return err
	case message.KindCancelAllNotifications:
		_, err := w.disarmAll.Run(ctx, disarmallreminders.Input{})
		return err
	case message.KindSkipWaiting:
		return w.activatePending(ctx)
	default:
		w.log.Warning(ctx, "Ignoring unexpected command.", logging.Entry("kind", m.Kind))
		return nil
	}
}

func (w *Worker) activatePending(ctx context.Context) error {
	w.lock.Lock()
	pending := w.pending
	w.pending = ""
	w.lock.Unlock()

	if pending == "" {
		w.log.Info(ctx, "No cache generation is waiting for activation.")
		return nil
	}
	_, err := w.activate.Run(ctx, activatecachegeneration.Input{Name: pending})
	return err
}
