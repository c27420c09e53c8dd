package middleware

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/office-hours-service/internal/api/handlers"
	"github.com/m04kA/office-hours-service/pkg/jwtauth"
)

const (
	msgMissingToken = "требуется авторизация"
	msgInvalidToken = "недействительный токен"
	msgForbidden    = "доступ запрещен"
)

type contextKey string

const (
	userIDKey contextKey = "userID"
	roleKey   contextKey = "role"
)

// TokenParser проверяет bearer-токен
type TokenParser interface {
	Parse(token string) (*jwtauth.Claims, error)
}

// Auth проверяет заголовок Authorization: Bearer <token>
// и кладёт ID и роль пользователя в контекст запроса
func Auth(parser TokenParser) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			claims, err := parser.Parse(strings.TrimSpace(token))
			if err != nil {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), userID, claims.Role)))
		})
	}
}

// RequireRole пропускает только пользователей с одной из ролей
func RequireRole(roles ...jwtauth.Role) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRole(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}
			if !slices.Contains(roles, role) {
				handlers.RespondForbidden(w, msgForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WithIdentity кладёт пользователя в контекст
func WithIdentity(ctx context.Context, userID uuid.UUID, role jwtauth.Role) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, roleKey, role)
}

// GetUserID возвращает ID пользователя из контекста
func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}

// GetRole возвращает роль пользователя из контекста
func GetRole(ctx context.Context) (jwtauth.Role, bool) {
	role, ok := ctx.Value(roleKey).(jwtauth.Role)
	return role, ok
}
