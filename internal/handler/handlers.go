package handler

import (
	"github.com/carlosbrath/lives-stolen-sub000/internal/config"
	"github.com/carlosbrath/lives-stolen-sub000/internal/handler/http"
	"github.com/carlosbrath/lives-stolen-sub000/internal/logger"
	"github.com/carlosbrath/lives-stolen-sub000/internal/ratelimit"
	"github.com/carlosbrath/lives-stolen-sub000/internal/service"
	"github.com/carlosbrath/lives-stolen-sub000/internal/store"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, storages *store.Storages, limiter *ratelimit.Limiter, cfg config.StructuredConfig, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, storages, limiter, cfg, logger),
	}
}
