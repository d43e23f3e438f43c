package main

import (
	"context"
	"frontdesk/config"
	"frontdesk/di"
	"frontdesk/shared/logger"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger("worker")

	logger.SetLogLevel(cfg, "worker")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	worker := di.InitializeWorker()

	if err := worker.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Notification worker stopped")
	}

	log.Info().Msg("Notification worker shut down.")
}
