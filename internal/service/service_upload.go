// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Carlos Brath

package service

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/carlosbrath/lives-stolen-sub000/internal/adapter"
	"github.com/carlosbrath/lives-stolen-sub000/internal/config"
	"github.com/carlosbrath/lives-stolen-sub000/internal/logger"
	"github.com/carlosbrath/lives-stolen-sub000/models"
)

// uploadService is the concrete implementation of UploadService. Each file
// goes through three phases against the Admin API: stage a destination,
// transfer the bytes, register the resource as a permanent file. A failure in
// any phase marks that file only; the rest of the batch still runs.
type uploadService struct {
	credentialService CredentialService
	assetAPI          adapter.AssetAPI
	validator         fileValidator

	pollMaxAttempts int
	pollBaseDelay   time.Duration
	pollMaxDelay    time.Duration
	pollGrowth      float64

	// sleep is swapped out in tests to avoid real waiting.
	sleep func(ctx context.Context, d time.Duration) error

	logger *logger.Logger
}

// NewUploadService constructs an UploadService with limits and the polling
// schedule taken from cfg.
func NewUploadService(credentialService CredentialService, assetAPI adapter.AssetAPI, cfg config.Uploads, logger *logger.Logger) UploadService {
	return &uploadService{
		credentialService: credentialService,
		assetAPI:          assetAPI,
		validator: fileValidator{
			maxFiles:    cfg.MaxFiles,
			maxFileSize: cfg.MaxFileSize,
		},
		pollMaxAttempts: cfg.PollMaxAttempts,
		pollBaseDelay:   cfg.PollBaseDelay,
		pollMaxDelay:    cfg.PollMaxDelay,
		pollGrowth:      cfg.PollGrowth,
		sleep:           sleepContext,
		logger:          logger,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// UploadBatch validates the batch, resolves the shop credential, then runs
// every file through the upload phases. Validation and credential failures
// happen before any Admin API traffic.
func (u *uploadService) UploadBatch(ctx context.Context, shop string, files []models.InputFile) (models.UploadResult, error) {
	log := logger.FromContext(ctx)

	if err := u.validator.validateBatch(files); err != nil {
		log.Warn().Str("shop", shop).Int("files", len(files)).Err(err).Msg("upload batch rejected by validation")
		return models.UploadResult{}, err
	}

	credential, err := u.credentialService.Resolve(ctx, shop)
	if err != nil {
		return models.UploadResult{}, err
	}

	outcomes := make([]models.UploadOutcome, 0, len(files))
	for _, file := range files {
		outcome := u.uploadOne(ctx, credential, file)
		if outcome.Err != nil {
			log.Err(outcome.Err).Str("shop", credential.Shop).Str("filename", file.Filename).Msg("file upload failed")
		} else {
			log.Info().Str("shop", credential.Shop).Str("filename", file.Filename).Str("url", outcome.URL).Msg("file uploaded")
		}
		outcomes = append(outcomes, outcome)
	}

	return aggregateOutcomes(outcomes)
}

// uploadOne runs the three phases for a single file and resolves the final
// URL, polling when registration reports the asset as still processing.
func (u *uploadService) uploadOne(ctx context.Context, credential models.Credential, file models.InputFile) models.UploadOutcome {
	outcome := models.UploadOutcome{Filename: file.Filename}

	target, err := u.assetAPI.StagedUploadCreate(ctx, credential, file)
	if err != nil {
		outcome.Err = fmt.Errorf("stage: %w", err)
		return outcome
	}

	if err := u.assetAPI.TransferToTarget(ctx, target, file); err != nil {
		outcome.Err = fmt.Errorf("transfer: %w", err)
		return outcome
	}

	record, err := u.assetAPI.FileCreate(ctx, credential, target, altTextFor(file.Filename))
	if err != nil {
		outcome.Err = fmt.Errorf("register: %w", err)
		return outcome
	}

	if record.URL != "" {
		outcome.URL = record.URL
		return outcome
	}

	url, err := u.pollForURL(ctx, credential, record.FileID)
	if err != nil {
		outcome.Err = fmt.Errorf("poll: %w", err)
		return outcome
	}

	outcome.URL = url
	return outcome
}

// pollForURL asks for the asset's status until a URL appears, waiting
// between attempts on an exponential schedule capped at pollMaxDelay.
func (u *uploadService) pollForURL(ctx context.Context, credential models.Credential, fileID string) (string, error) {
	for attempt := 1; attempt <= u.pollMaxAttempts; attempt++ {
		url, err := u.assetAPI.FileStatus(ctx, credential, fileID)
		if err != nil {
			return "", err
		}
		if url != "" {
			return url, nil
		}
		if attempt == u.pollMaxAttempts {
			break
		}
		if err := u.sleep(ctx, u.pollDelay(attempt)); err != nil {
			return "", err
		}
	}
	return "", ErrAssetNotReady
}

// pollDelay returns the wait after the given attempt number (1-based).
func (u *uploadService) pollDelay(attempt int) time.Duration {
	delay := time.Duration(float64(u.pollBaseDelay) * math.Pow(u.pollGrowth, float64(attempt-1)))
	if delay > u.pollMaxDelay {
		delay = u.pollMaxDelay
	}
	return delay
}

// altTextFor derives a readable alt text from the filename.
func altTextFor(filename string) string {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return strings.TrimSpace(name)
}

// aggregateOutcomes folds per-file outcomes after the whole batch finished.
// One success is enough for an overall success; the URLs keep the input
// order of the files that made it.
func aggregateOutcomes(outcomes []models.UploadOutcome) (models.UploadResult, error) {
	result := models.UploadResult{Outcomes: outcomes}

	var failures []string
	for _, outcome := range outcomes {
		if outcome.Succeeded() {
			result.URLs = append(result.URLs, outcome.URL)
			continue
		}
		failures = append(failures, fmt.Sprintf("%s: %v", outcome.Filename, outcome.Err))
	}

	if len(result.URLs) == 0 {
		return result, fmt.Errorf("%w: %s", ErrAllUploadsFailed, strings.Join(failures, "; "))
	}
	return result, nil
}
