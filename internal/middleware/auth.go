package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/coursehub/assignment-service/internal/models"
	"github.com/coursehub/assignment-service/internal/service"
	"github.com/coursehub/assignment-service/pkg/utils"
)

type contextKey string

const userContextKey contextKey = "auth_user"

// Authenticator resolves basic-auth credentials to a user.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}

// BasicAuth verifies the Authorization header on every request and binds
// the resolved user to the request context. There is no session state.
func BasicAuth(auth Authenticator, log zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			email, password, ok := r.BasicAuth()
			if !ok {
				utils.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			user, err := auth.Authenticate(r.Context(), email, password)
			if err != nil {
				if errors.Is(err, service.ErrInvalidCredentials) {
					log.Debug().
						Str("email", email).
						Str("path", r.URL.Path).
						Msg("Basic auth rejected")
					utils.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
					return
				}
				// A lookup failure is a backend problem, not a
				// credential problem.
				log.Error().
					Err(err).
					Str("path", r.URL.Path).
					Msg("Failed to authenticate user")
				utils.ErrorResponse(w, http.StatusServiceUnavailable, "Service Unavailable")
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(fn)
	}
}

// UserFromContext returns the authenticated user bound by BasicAuth.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userContextKey).(*models.User)
	return user, ok
}
