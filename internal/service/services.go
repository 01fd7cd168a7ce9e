package service

import (
	"github.com/carlosbrath/lives-stolen-sub000/internal/adapter"
	"github.com/carlosbrath/lives-stolen-sub000/internal/config"
	"github.com/carlosbrath/lives-stolen-sub000/internal/logger"
	"github.com/carlosbrath/lives-stolen-sub000/internal/store"
)

type Services struct {
	CredentialService CredentialService
	UploadService     UploadService
	SubmissionService SubmissionService
}

func NewServices(storages *store.Storages, assetAPI adapter.AssetAPI, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	credentialService := NewCredentialService(storages.SessionRepository, logger)

	return &Services{
		CredentialService: credentialService,
		UploadService:     NewUploadService(credentialService, assetAPI, cfg.Uploads, logger),
		SubmissionService: NewSubmissionService(storages.SubmissionRepository, logger),
	}
}
