// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Carlos Brath

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/carlosbrath/lives-stolen-sub000/internal/logger"
	"github.com/carlosbrath/lives-stolen-sub000/internal/store"
	"github.com/carlosbrath/lives-stolen-sub000/models"
)

// credentialService is the concrete implementation of CredentialService.
// It reads the session store left behind by the embedded app's OAuth flow
// and never writes to it.
type credentialService struct {
	sessionRepository store.SessionRepository
	logger            *logger.Logger
}

// NewCredentialService constructs a CredentialService over the given
// session repository.
func NewCredentialService(sessionRepository store.SessionRepository, logger *logger.Logger) CredentialService {
	return &credentialService{
		sessionRepository: sessionRepository,
		logger:            logger,
	}
}

// normalizeShop turns a bare store handle into a full myshopify domain.
func normalizeShop(shop string) string {
	shop = strings.TrimSpace(strings.ToLower(shop))
	if shop != "" && !strings.Contains(shop, ".") {
		shop += ".myshopify.com"
	}
	return shop
}

// Resolve looks the shop up by the direct offline session key first, then
// falls back to a prefix match over every session record, newest first.
// Records whose payload does not parse or holds an empty token are skipped.
func (c *credentialService) Resolve(ctx context.Context, shop string) (models.Credential, error) {
	log := logger.FromContext(ctx)

	shop = normalizeShop(shop)
	if shop == "" {
		return models.Credential{}, ErrShopNotInstalled
	}

	recordsSeen := false

	record, err := c.sessionRepository.GetByID(ctx, "offline_"+shop)
	switch {
	case err == nil:
		recordsSeen = true
		if credential, ok := credentialFromRecord(record, shop); ok {
			return credential, nil
		}
		log.Warn().Str("shop", shop).Str("session_id", record.SessionID).Msg("offline session record has no usable token")
	case !errors.Is(err, store.ErrSessionNotFound):
		log.Err(err).Str("shop", shop).Msg("offline session lookup failed")
		return models.Credential{}, fmt.Errorf("offline session lookup failed: %w", err)
	}

	records, err := c.sessionRepository.FindMatching(ctx, shop)
	if err != nil {
		log.Err(err).Str("shop", shop).Msg("session record search failed")
		return models.Credential{}, fmt.Errorf("session record search failed: %w", err)
	}
	if len(records) > 0 {
		recordsSeen = true
	}

	for _, record := range records {
		if credential, ok := credentialFromRecord(record, shop); ok {
			return credential, nil
		}
	}

	if recordsSeen {
		log.Warn().Str("shop", shop).Int("records", len(records)).Msg("session records exist but none is usable")
		return models.Credential{}, ErrNoValidToken
	}

	log.Warn().Str("shop", shop).Msg("shop has no session records")
	return models.Credential{}, ErrShopNotInstalled
}

// credentialFromRecord parses the stored session payload. A payload that is
// not JSON or holds an empty access token yields ok=false so the caller can
// try the next record.
func credentialFromRecord(record models.SessionRecord, shop string) (models.Credential, bool) {
	var payload models.SessionPayload
	if err := json.Unmarshal(record.Payload, &payload); err != nil {
		return models.Credential{}, false
	}
	if payload.AccessToken == "" {
		return models.Credential{}, false
	}

	if payload.Shop == "" {
		payload.Shop = shop
	}

	return models.Credential{
		Shop:        payload.Shop,
		AccessToken: payload.AccessToken,
		Scope:       payload.Scope,
		IsOnline:    payload.IsOnline,
	}, true
}
