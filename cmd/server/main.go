package main

import (
	"context"
	"fmt"

	"github.com/carlosbrath/lives-stolen-sub000/internal/adapter"
	"github.com/carlosbrath/lives-stolen-sub000/internal/config"
	"github.com/carlosbrath/lives-stolen-sub000/internal/handler"
	"github.com/carlosbrath/lives-stolen-sub000/internal/logger"
	"github.com/carlosbrath/lives-stolen-sub000/internal/ratelimit"
	"github.com/carlosbrath/lives-stolen-sub000/internal/server"
	"github.com/carlosbrath/lives-stolen-sub000/internal/service"
	"github.com/carlosbrath/lives-stolen-sub000/internal/store"
	"github.com/carlosbrath/lives-stolen-sub000/internal/workers"
	"github.com/carlosbrath/lives-stolen-sub000/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("lives-stolen-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	if err := migrations.Migrate(storages.DB.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	assetAPI := adapter.NewShopifyAssetAPI(cfg.Shopify, log)
	services := service.NewServices(storages, assetAPI, *cfg, log)

	limiter := ratelimit.NewLimiter(log)
	handlers := handler.NewHandlers(services, storages, limiter, *cfg, log)

	workers.NewWorkers(
		workers.NewSweepWorker(ctx, limiter, cfg.Workers.SweepInterval, log),
	).Run()

	server.NewServer(handlers, cfg.Server, log).RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
