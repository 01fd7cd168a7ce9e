package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/carlosbrath/lives-stolen-sub000/internal/logger"
	"github.com/carlosbrath/lives-stolen-sub000/internal/ratelimit"
)

// originHeaders are consulted in order to find the caller's network origin.
// Storefront traffic usually arrives through a proxy or CDN, so the remote
// address alone is not trustworthy.
var originHeaders = []string{"X-Forwarded-For", "X-Real-IP", "CF-Connecting-IP", "X-Client-IP"}

func clientOrigin(r *http.Request) string {
	for _, header := range originHeaders {
		value := r.Header.Get(header)
		if value == "" {
			continue
		}
		// X-Forwarded-For may hold a comma-separated chain; the first hop
		// is the client.
		return strings.TrimSpace(strings.SplitN(value, ",", 2)[0])
	}
	return "unknown"
}

// enforceRateLimits checks the origin quota and then the identity quota.
// Both counters are incremented on every request so an attacker cannot dodge
// one dimension by tripping the other. Returns false after writing the 429
// response when either quota is exceeded.
func (h *Handler) enforceRateLimits(w http.ResponseWriter, r *http.Request, email string) bool {
	log := logger.FromRequest(r)

	origin := clientOrigin(r)
	originDecision := h.limiter.Check(ratelimit.DimensionOrigin, origin, h.limits.OriginMax, h.limits.OriginWindow)

	identity := strings.ToLower(strings.TrimSpace(email))
	identityDecision := ratelimit.Decision{Allowed: true}
	if identity != "" {
		identityDecision = h.limiter.Check(ratelimit.DimensionIdentity, identity, h.limits.IdentityMax, h.limits.IdentityWindow)
	}

	if !originDecision.Allowed {
		log.Warn().Str("origin", origin).Msg("origin quota exceeded")
		writeRateLimited(w, originDecision)
		return false
	}
	if !identityDecision.Allowed {
		log.Warn().Str("identity", identity).Msg("identity quota exceeded")
		writeRateLimited(w, identityDecision)
		return false
	}
	return true
}

func writeRateLimited(w http.ResponseWriter, decision ratelimit.Decision) {
	retryAfter := int(decision.RetryAfter.Seconds())

	w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(decision.ResetAt.Unix(), 10))

	writeError(w, http.StatusTooManyRequests, codeRateLimited, "too many requests, slow down")
}
