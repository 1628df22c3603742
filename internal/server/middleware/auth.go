package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/lumina/internal/server/handlers"
	"github.com/iudanet/lumina/internal/server/jwt"
)

// TokenValidator проверяет access token
type TokenValidator interface {
	ValidateAccessToken(token string) (*jwt.Claims, error)
}

// AuthMiddleware создает middleware для проверки JWT токена.
// При успехе user_id и username доступны через handlers.GetUserID / GetUsername.
func AuthMiddleware(logger *slog.Logger, tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.WarnContext(r.Context(), "missing Authorization header", "path", r.URL.Path)
				unauthorized(w, "missing token")
				return
			}

			// Ожидаем формат: "Bearer <token>"
			scheme, token, found := strings.Cut(authHeader, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
				logger.WarnContext(r.Context(), "invalid Authorization header format")
				unauthorized(w, "invalid token format")
				return
			}

			claims, err := tokens.ValidateAccessToken(token)
			if err != nil {
				logger.WarnContext(r.Context(), "invalid access token", "error", err)
				unauthorized(w, "invalid token")
				return
			}

			logger.DebugContext(r.Context(), "user authenticated", "user_id", claims.UserID)

			ctx := handlers.WithUser(r.Context(), claims.UserID, claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="lumina"`)
	writeJSONError(w, http.StatusUnauthorized, message)
}
