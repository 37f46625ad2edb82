package deps

import (
	"context"
	"ltapp/internal/config"
	"ltapp/internal/core/domain/complaint"
	dl "ltapp/internal/core/domain/logging"
	"ltapp/internal/core/domain/notification"
	"ltapp/internal/core/domain/reminder"
	"ltapp/internal/core/domain/rent"
	"ltapp/internal/db"
	dbcomplaint "ltapp/internal/db/complaint"
	dbrent "ltapp/internal/db/rent"
	"ltapp/internal/implementations/logging"
	notificationcenter "ltapp/internal/implementations/notification_center"
	reminderstore "ltapp/internal/implementations/reminder_store"
	"ltapp/internal/rabbitmq"
	workercommands "ltapp/internal/rabbitmq/publishers/worker_commands"
	"sync"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/r3labs/sse/v2"
)

type Deps struct {
	Config *config.Config
	Logger dl.Logger

	DB        *pgxpool.Pool
	Redis     *redis.Client
	Rabbitmq  *rabbitmq.Connection
	SseServer *sse.Server

	Now func() time.Time

	ComplaintRepository complaint.Repository
	RentRepository      rent.Repository
	ReminderStore       reminder.Store
	NotificationCenter  notification.Center

	// CommandSender is the concrete publisher so the event consumer can
	// latch readiness on it.
	CommandSender *workercommands.RabbitMQ
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()
	closeRabbitmqConn := deps.initRabbitmqConnection()
	closeSseServer := deps.initSseServer()
	closeCommandSender := deps.initCommandSender()

	deps.Now = func() time.Time { return time.Now().UTC() }
	deps.ComplaintRepository = dbcomplaint.NewPgxRepository(deps.DB)
	deps.RentRepository = dbrent.NewPgxRepository(deps.DB)
	deps.ReminderStore = reminderstore.NewRedis(deps.Redis, deps.Logger)
	deps.NotificationCenter = notificationcenter.NewInMemory()

	return deps, func() {
		closeFuncs := []func(){
			closeSseServer,
			closeCommandSender,
			closeRabbitmqConn,
			closeRedisClient,
			closePgxPool,
			closeLogger,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	if err := db.Migrate(deps.Config.MigrationsPath, deps.Config.PostgresqlURL); err != nil {
		deps.Logger.Error(context.Background(), "Could not apply DB migrations.", dl.Entry("err", err))
		panic(err)
	}

	pool, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = pool
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		pool.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initRabbitmqConnection() func() {
	rabbitmqConnection, err := rabbitmq.Dial(deps.Config.RabbitmqURL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic("could not connect to RabbitMQ")
	}
	deps.Rabbitmq = rabbitmqConnection
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ connection.")
		rabbitmqConnection.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ connection shut down.")
	}
}

func (deps *Deps) initCommandSender() func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}
	declareQueues(rabbitmqChannel, deps)

	deps.CommandSender = workercommands.NewRabbitMQ(
		deps.Logger,
		rabbitmqChannel,
		deps.Config.RabbitmqCommandQueue,
	)
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down command sender.")
		rabbitmqChannel.Close()
		deps.Logger.Info(context.Background(), "Command sender shut down.")
	}
}

func (deps *Deps) initSseServer() func() {
	deps.SseServer = sse.New()
	deps.SseServer.AutoStream = true
	deps.SseServer.AutoReplay = false
	deps.SseServer.CreateStream(deps.Config.EventStream)
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down SSE server.")
		deps.SseServer.Close()
		deps.Logger.Info(context.Background(), "SSE server shut down.")
	}
}

func declareQueues(channel *rabbitmq.Channel, deps *Deps) {
	for _, queue := range []string{deps.Config.RabbitmqCommandQueue, deps.Config.RabbitmqEventQueue} {
		if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
			deps.Logger.Error(
				context.Background(),
				"Could not create RabbitMQ queue.",
				dl.Entry("err", err),
				dl.Entry("queue", queue),
			)
			panic(err)
		}
	}
}
