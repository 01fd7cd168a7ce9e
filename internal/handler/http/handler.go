package http

import (
	"github.com/carlosbrath/lives-stolen-sub000/internal/config"
	"github.com/carlosbrath/lives-stolen-sub000/internal/logger"
	"github.com/carlosbrath/lives-stolen-sub000/internal/ratelimit"
	"github.com/carlosbrath/lives-stolen-sub000/internal/service"
	"github.com/carlosbrath/lives-stolen-sub000/internal/store"
)

type Handler struct {
	services *service.Services
	storages *store.Storages
	limiter  *ratelimit.Limiter

	app    config.App
	limits config.RateLimits

	// maxRequestBody bounds multipart parsing memory per request.
	maxRequestBody int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, storages *store.Storages, limiter *ratelimit.Limiter, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		storages:       storages,
		limiter:        limiter,
		app:            cfg.App,
		limits:         cfg.RateLimits,
		maxRequestBody: cfg.Uploads.MaxFileSize*int64(cfg.Uploads.MaxFiles) + 1<<20,
		logger:         logger,
	}
}
