package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/revision-generator/internal/http/response"
)

// Генерация — дорогой вызов провайдера, поэтому лимит общий на процесс.
var limiter = rate.NewLimiter(1, 3)

// RateLimitMiddleware ограничивает частоту запросов на генерацию.
func RateLimitMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				log.Error("too many requests")
				w.WriteHeader(http.StatusTooManyRequests)
				render.JSON(w, r, response.Error("Trop de requêtes, réessayez plus tard"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
