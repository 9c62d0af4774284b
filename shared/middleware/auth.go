// Package middleware provides the bearer-token guard applied to protected
// routes.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kroawen/nest-auth-example/internal/model"
	"github.com/kroawen/nest-auth-example/internal/repository"
	"github.com/kroawen/nest-auth-example/shared/auth"
	"github.com/kroawen/nest-auth-example/shared/httputil"
)

type contextKey struct{}

var userContextKey = contextKey{}

// UserResolver resolves a token subject back to a live user. Tokens are
// stateless, so the guard re-checks existence on every request.
type UserResolver interface {
	GetUser(ctx context.Context, id string) (*model.User, error)
}

// RequireAuth guards a route subtree. It extracts the bearer token from the
// Authorization header, verifies it, re-resolves the subject against the
// user store and attaches the user to the request context. Every
// authentication failure short-circuits with the same 401 response and the
// cause is only logged; an unexpected store failure is a 500, not a 401.
func RequireAuth(
	jwtAuth auth.JWTAuthenticator,
	secret string,
	users UserResolver,
	logger *zerolog.Logger,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := bearerToken(r)
			if !ok {
				httputil.Unauthorized(w)
				return
			}

			claims, err := jwtAuth.ValidateSessionToken(tokenString, secret)
			if err != nil {
				logger.Debug().Err(err).Msg("session token rejected")
				httputil.Unauthorized(w)
				return
			}

			user, err := users.GetUser(r.Context(), claims.Subject)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					logger.Debug().Err(err).Str("subject", claims.Subject).Msg("token subject no longer exists")
					httputil.Unauthorized(w)
					return
				}

				logger.Error().Err(err).Str("subject", claims.Subject).Msg("failed to resolve token subject")
				httputil.Error(w, http.StatusInternalServerError, "something went wrong")
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the user attached by RequireAuth, or nil when the
// request did not pass through the guard.
func UserFromContext(ctx context.Context) *model.User {
	user, _ := ctx.Value(userContextKey).(*model.User)
	return user
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}
