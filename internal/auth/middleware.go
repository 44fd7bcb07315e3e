package auth

import (
	"context"
	"net/http"
	"strings"

	"diatrack.example/go-diatrack/internal/models"
	"diatrack.example/go-diatrack/pkg/httpx"
	"diatrack.example/go-diatrack/pkg/logger"
)

// userKey stores the resolved user in the request context.
type userKeyType struct{}

var userKey = userKeyType{}

// Middleware gates protected endpoints. It extracts the bearer token, resolves
// the user, and injects it into the request context. All failures yield the
// same 401 so nothing about the token leaks.
func Middleware(authService *AuthService, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				unauthorized(w)
				return
			}

			user, err := authService.ResolveToken(r.Context(), parts[1])
			if err != nil {
				log.Debug(r.Context(), "token rejected", "error", err)
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			ctx = logger.WithUserID(ctx, user.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	httpx.WriteError(w, http.StatusUnauthorized, "Could not validate credentials")
}

// UserFromContext returns the user resolved by Middleware, if any.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok
}
