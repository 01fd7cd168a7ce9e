package store

import (
	"context"

	"github.com/carlosbrath/lives-stolen-sub000/internal/config"
	"github.com/carlosbrath/lives-stolen-sub000/internal/logger"
)

// Storages aggregates every repository the service layer depends on.
type Storages struct {
	DB *DB

	SessionRepository    SessionRepository
	SubmissionRepository SubmissionRepository
}

// NewStorages connects to PostgreSQL and wires all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	return &Storages{
		DB:                   db,
		SessionRepository:    NewSessionRepository(db, logger),
		SubmissionRepository: NewSubmissionRepository(db, logger),
	}, nil
}
