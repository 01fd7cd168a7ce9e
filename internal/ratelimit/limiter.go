// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Carlos Brath

// Package ratelimit implements process-wide sliding-window request counters.
//
// A single [Limiter] owns a map of counting buckets, one per
// (dimension, identifier) pair. Buckets are created lazily on first use and
// expire when their window passes; expiry is enforced both lazily on access
// and by a periodic [Limiter.Sweep], which the workers package schedules.
//
// The limiter is explicitly constructed and injected rather than held in
// package-level state, so its lifecycle matches the process and tests can
// create isolated instances.
package ratelimit

import (
	"math"
	"sync"
	"time"

	"github.com/carlosbrath/lives-stolen-sub000/internal/logger"
)

// Dimension names one axis of rate limiting. The upload path checks the
// origin dimension first, then the identity dimension.
type Dimension string

const (
	// DimensionOrigin counts requests per network origin address.
	DimensionOrigin Dimension = "origin"

	// DimensionIdentity counts requests per normalized submitter email.
	DimensionIdentity Dimension = "identity"
)

// Decision is the outcome of one quota check.
type Decision struct {
	// Allowed reports whether the request fits the quota.
	Allowed bool

	// Limit echoes the configured maximum for the checked window.
	Limit int

	// Remaining is how many more requests the identifier may make in the
	// current window. Zero when denied.
	Remaining int

	// RetryAfter is the remaining time until the window resets, rounded up
	// to whole seconds. Zero when allowed.
	RetryAfter time.Duration

	// ResetAt is the bucket's window reset timestamp.
	ResetAt time.Time
}

// bucket is one counter + reset-timestamp pair. Buckets are independent per
// key; no cross-bucket invariants exist.
type bucket struct {
	count   int
	resetAt time.Time
}

// Limiter gates requests before any upload work begins. It is safe for
// concurrent use; a single mutex guards the bucket map, which is adequate
// for the expected request volume of a storefront form.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket

	// now is stubbed in tests.
	now func() time.Time

	logger *logger.Logger
}

// NewLimiter constructs an empty Limiter. The caller owns its lifecycle:
// create once at process start, schedule Sweep via a background worker, and
// drop it at shutdown.
func NewLimiter(logger *logger.Logger) *Limiter {
	logger.Debug().Msg("creating rate limiter")
	return &Limiter{
		buckets: make(map[string]*bucket),
		now:     time.Now,
		logger:  logger,
	}
}

// Check counts one request against the (dimension, identifier) bucket and
// reports whether it fits within maxRequests per window.
//
// The counter is incremented unconditionally, including for requests that a
// later check or validation step will deny; the quota tracks abuse, not
// strict accounting. A fresh bucket is created when none exists or the
// previous window has expired.
func (l *Limiter) Check(dimension Dimension, identifier string, maxRequests int, window time.Duration) Decision {
	key := string(dimension) + ":" + identifier
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok || !now.Before(b.resetAt) {
		b = &bucket{resetAt: now.Add(window)}
		l.buckets[key] = b
	}
	b.count++

	if b.count > maxRequests {
		retryAfter := time.Duration(math.Ceil(b.resetAt.Sub(now).Seconds())) * time.Second
		l.logger.Warn().
			Str("dimension", string(dimension)).
			Str("identifier", identifier).
			Int("count", b.count).
			Int("max", maxRequests).
			Dur("retry_after", retryAfter).
			Msg("rate limit exceeded")

		return Decision{
			Allowed:    false,
			Limit:      maxRequests,
			Remaining:  0,
			RetryAfter: retryAfter,
			ResetAt:    b.resetAt,
		}
	}

	return Decision{
		Allowed:   true,
		Limit:     maxRequests,
		Remaining: maxRequests - b.count,
		ResetAt:   b.resetAt,
	}
}

// Sweep deletes every bucket whose reset timestamp has passed and returns
// the number of buckets removed. It bounds memory growth independent of
// request volume and is safe to run concurrently with Check.
func (l *Limiter) Sweep() int {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, b := range l.buckets {
		if !now.Before(b.resetAt) {
			delete(l.buckets, key)
			removed++
		}
	}

	if removed > 0 {
		l.logger.Debug().Int("removed", removed).Int("remaining", len(l.buckets)).Msg("swept expired rate limit buckets")
	}

	return removed
}

// Size returns the current number of live buckets.
func (l *Limiter) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}
