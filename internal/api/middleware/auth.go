package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/alex/soul-link-tracker/internal/service"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

const (
	UserIDKey contextKey = "userID"
)

// Auth validates the Bearer token and stores the caller's profile ID on the
// request context.
func Auth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header required", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "Invalid authorization header", http.StatusUnauthorized)
				return
			}

			userID, err := ResolveToken(authService, parts[1])
			if err != nil {
				zerolog.Ctx(r.Context()).Warn().Err(err).Msg("token validation failed")
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ResolveToken maps an access token to the profile ID in its subject claim.
// Shared with the websocket handler, which carries its token in a query
// parameter instead of a header.
func ResolveToken(authService *service.AuthService, token string) (uuid.UUID, error) {
	claims, err := authService.ValidateToken(token)
	if err != nil {
		return uuid.Nil, err
	}

	sub, err := (*claims).GetSubject()
	if err != nil {
		return uuid.Nil, err
	}

	return uuid.Parse(sub)
}

func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}
