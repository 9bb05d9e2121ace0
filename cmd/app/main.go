package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"frontdesk/config"
	"frontdesk/di"
	"frontdesk/shared/logger"
)

// @title Frontdesk API
// @version 1.0
// @description Hotel front desk service covering rooms, customers, bookings, payments and reporting.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.App.Seed {
		if err := di.InitializeSeeder().Run(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed starter data")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
