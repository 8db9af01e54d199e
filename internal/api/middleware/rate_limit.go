package middleware

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/glamspot/GS-CabinService/internal/api/handlers"
)

const msgTooManyRequests = "слишком много запросов, повторите позже"

// RateLimit ограничивает общий поток запросов к сервису token bucket-ом
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				handlers.RespondError(w, http.StatusTooManyRequests, msgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
