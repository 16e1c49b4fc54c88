package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
)

type userIDContextKey struct{}

// Auth middleware, требующий заголовок X-User-ID
// Аутентификация выполняется на API gateway; сервис доверяет заголовку
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get("X-User-ID")
		if userIDStr == "" {
			handlers.RespondUnauthorized(w, "X-User-ID header is required")
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "X-User-ID header is invalid")
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext достает ID пользователя, положенный middleware Auth
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDContextKey{}).(int64)
	return userID, ok
}
