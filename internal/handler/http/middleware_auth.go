package http

import (
	"context"
	"net/http"

	"github.com/carlosbrath/lives-stolen-sub000/internal/logger"
	"github.com/carlosbrath/lives-stolen-sub000/internal/utils"
)

// auth is an HTTP middleware that guards the admin surface with JWT-based
// authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// token, validates it against the configured sign key and issuer, and — on
// success — stores the authenticated admin's identity in the request context
// under [utils.ActorCtxKey] before delegating to the next handler.
//
// Requests are rejected with HTTP 401 Unauthorized when the header is
// absent, the token value is missing, or the token fails verification.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		actor, err := utils.ParseAdminToken(tokenString, h.app.TokenSignKey, h.app.TokenIssuer)
		if err != nil {
			log.Err(err).Msg("admin token rejected")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// Store the admin identity so downstream handlers can attribute
		// moderation actions without re-parsing the token.
		ctx := context.WithValue(r.Context(), utils.ActorCtxKey, actor)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
