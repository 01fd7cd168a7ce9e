// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Carlos Brath

package config

import "time"

// Built-in fallbacks for every tunable knob. Addresses, DSNs, and secrets
// have no defaults and must come from the environment.
const (
	defaultRequestTimeout = 2 * time.Minute

	defaultAPIVersion            = "2025-01"
	defaultShopifyRequestTimeout = 30 * time.Second

	defaultMaxFiles        = 10
	defaultMaxFileSize     = int64(20 << 20) // 20 MiB
	defaultPollMaxAttempts = 10
	defaultPollBaseDelay   = time.Second
	defaultPollMaxDelay    = 5 * time.Second
	defaultPollGrowth      = 1.5

	defaultOriginMax      = 300
	defaultOriginWindow   = time.Hour
	defaultIdentityMax    = 3
	defaultIdentityWindow = 24 * time.Hour

	defaultSweepInterval = 5 * time.Minute
)

// applyDefaults fills every knob that no configuration source set.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}

	if cfg.Shopify.APIVersion == "" {
		cfg.Shopify.APIVersion = defaultAPIVersion
	}
	if cfg.Shopify.RequestTimeout == 0 {
		cfg.Shopify.RequestTimeout = defaultShopifyRequestTimeout
	}

	if cfg.Uploads.MaxFiles == 0 {
		cfg.Uploads.MaxFiles = defaultMaxFiles
	}
	if cfg.Uploads.MaxFileSize == 0 {
		cfg.Uploads.MaxFileSize = defaultMaxFileSize
	}
	if cfg.Uploads.PollMaxAttempts == 0 {
		cfg.Uploads.PollMaxAttempts = defaultPollMaxAttempts
	}
	if cfg.Uploads.PollBaseDelay == 0 {
		cfg.Uploads.PollBaseDelay = defaultPollBaseDelay
	}
	if cfg.Uploads.PollMaxDelay == 0 {
		cfg.Uploads.PollMaxDelay = defaultPollMaxDelay
	}
	if cfg.Uploads.PollGrowth == 0 {
		cfg.Uploads.PollGrowth = defaultPollGrowth
	}

	if cfg.RateLimits.OriginMax == 0 {
		cfg.RateLimits.OriginMax = defaultOriginMax
	}
	if cfg.RateLimits.OriginWindow == 0 {
		cfg.RateLimits.OriginWindow = defaultOriginWindow
	}
	if cfg.RateLimits.IdentityMax == 0 {
		cfg.RateLimits.IdentityMax = defaultIdentityMax
	}
	if cfg.RateLimits.IdentityWindow == 0 {
		cfg.RateLimits.IdentityWindow = defaultIdentityWindow
	}

	if cfg.Workers.SweepInterval == 0 {
		cfg.Workers.SweepInterval = defaultSweepInterval
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Uploads.PollGrowth < 1 {
		return ErrInvalidUploadConfigs
	}

	return nil
}
