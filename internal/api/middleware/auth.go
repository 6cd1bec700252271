package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
)

type contextKey string

const userIDKey contextKey = "user_id"

// Auth определяет пользователя через provider и кладет его id в контекст.
// Без корректного идентификатора запрос отклоняется с 401
func Auth(provider IdentityProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := provider.Identify(r)
			if err != nil {
				if errors.Is(err, ErrMissingIdentity) {
					handlers.RespondUnauthorized(w, "authentication required")
					return
				}
				handlers.RespondUnauthorized(w, "invalid credentials")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// WithUserID добавляет id пользователя в контекст
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserID извлекает id пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
