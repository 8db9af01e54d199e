package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/glamspot/GS-CabinService/internal/api/handlers"
)

const userIDHeader = "X-User-ID"

const msgMissingUserID = "заголовок X-User-ID обязателен"

type userIDKey struct{}

// Auth извлекает ID пользователя из заголовка X-User-ID и кладет его
// в контекст запроса. Аутентификацию выполняет API gateway, сервис
// доверяет заголовку.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(userIDHeader)
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, msgMissingUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	return userID, ok
}
