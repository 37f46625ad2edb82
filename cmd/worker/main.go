package main

import (
	"context"
	"ltapp/internal/app"
	"ltapp/internal/app/deps"
	"ltapp/internal/core/domain/logging"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	log := deps.Logger
	defer shutdownDeps()

	worker, shutdownWorker := app.InitWorker(deps)
	defer shutdownWorker()

	if err := worker.Startup(context.Background()); err != nil {
		log.Error(context.Background(), "Worker startup failed.", logging.Entry("err", err))
		panic(err)
	}

	stopCh, closeCh := createChannel()
	defer closeCh()

	<-stopCh
	log.Info(context.Background(), "Stopping worker.")
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}
