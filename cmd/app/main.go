package main

import (
	"frontdesk/config"
	"frontdesk/di"
	"frontdesk/helper"
	"frontdesk/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title frontdesk API
// @version 1.0
// @description Reservation lifecycle, queues, reports and duty swaps for the front desk.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger("api")

	logger.SetLogLevel(cfg, "api")

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	http, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	http.Serve()
}
