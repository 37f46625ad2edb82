package app

import (
	"context"
	"ltapp/internal/app/deps"
	dl "ltapp/internal/core/domain/logging"
	"ltapp/internal/core/domain/reminder"
	activatecachegeneration "ltapp/internal/core/services/activate_cache_generation"
	armreminder "ltapp/internal/core/services/arm_reminder"
	disarmallreminders "ltapp/internal/core/services/disarm_all_reminders"
	disarmreminder "ltapp/internal/core/services/disarm_reminder"
	firereminder "ltapp/internal/core/services/fire_reminder"
	installcachegeneration "ltapp/internal/core/services/install_cache_generation"
	rearmreminders "ltapp/internal/core/services/rearm_reminders"
	assetcacheimpl "ltapp/internal/implementations/asset_cache"
	assetfetcher "ltapp/internal/implementations/asset_fetcher"
	"ltapp/internal/implementations/notifier"
	timerscheduler "ltapp/internal/implementations/timer_scheduler"
	workercommands "ltapp/internal/rabbitmq/consumers/worker_commands"
	workerevents "ltapp/internal/rabbitmq/publishers/worker_events"
	"ltapp/internal/worker"
	"net/http"
)

// InitWorker wires the background worker and starts consuming
// foreground commands. The returned close func stops the consumer.
func InitWorker(deps *deps.Deps) (*worker.Worker, func()) {
	log := deps.Logger
	cfg := deps.Config

	eventsChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		log.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}
	events := workerevents.NewRabbitMQ(log, eventsChannel, cfg.RabbitmqEventQueue)
	messageNotifier := notifier.NewMessageNotifier(events)

	fire := firereminder.New(log, deps.ReminderStore, messageNotifier, events)
	timers := timerscheduler.New(log, deps.Now, func(r reminder.Reminder) {
		if _, err := fire.Run(context.Background(), firereminder.Input{Reminder: r}); err != nil {
			log.Error(
				context.Background(),
				"Could not fire reminder.",
				dl.Entry("entityID", r.EntityID),
				dl.Entry("err", err),
			)
		}
	})

	fetcher := assetfetcher.NewHTTP(
		&http.Client{Timeout: cfg.StaticFetchTimeout},
		cfg.StaticOriginURL,
		cfg.StaticManifestPath,
	)
	cacheRepository := assetcacheimpl.NewRedis(deps.Redis, log)

	w := worker.New(
		log,
		armreminder.New(log, deps.ReminderStore, timers, deps.Now),
		disarmreminder.New(log, deps.ReminderStore, timers, messageNotifier),
		disarmallreminders.New(log, deps.ReminderStore, timers),
		rearmreminders.New(log, deps.ReminderStore, timers, deps.Now),
		installcachegeneration.New(log, cacheRepository, fetcher, cfg.StaticBaseAssets, deps.Now),
		activatecachegeneration.New(log, cacheRepository, events),
		events,
		cfg.CacheAutoActivate,
	)

	commandsChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		log.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}
	consumer := workercommands.New(log, commandsChannel, cfg.RabbitmqCommandQueue, w)
	if err := consumer.Consume(); err != nil {
		log.Error(
			context.Background(),
			"Could not start RabbitMQ consuming.",
			dl.Entry("err", err),
			dl.Entry("queue", cfg.RabbitmqCommandQueue),
		)
		panic(err)
	}
	log.Info(context.Background(), "Consumer has started.", dl.Entry("queue", cfg.RabbitmqCommandQueue))

	return w, func() {
		timers.CancelAll(context.Background())
		commandsChannel.Close()
		eventsChannel.Close()
	}
}
