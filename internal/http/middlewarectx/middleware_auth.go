// Package middlewarectx содержит HTTP middleware для разрешения личности
// пользователя по JWT токену из заголовка Authorization.
//
// Разрешение выполняется один раз на запрос; обработчики получают личность
// из контекста явно, глобального "текущего пользователя" нет.
//
// Middleware работает в двух режимах. Обязательный режим отвечает
// HTTP 401 Unauthorized, если личность не разрешилась. Необязательный режим
// пропускает запрос дальше как анонимный: отсутствующий заголовок, неверная
// форма, битый или истёкший токен и исчезнувший пользователь дают один и тот
// же результат, без различения причин.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/revision-generator/internal/http/response"
	"github.com/magabrotheeeer/revision-generator/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// User — ключ для разрешённого пользователя в контексте.
const User Key = "user"

// Authenticator описывает интерфейс сервиса для разрешения личности по токену.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// resolve возвращает пользователя по заголовку Authorization или nil.
//
// Заголовок без формы "Bearer <token>" отбрасывается сразу, без обращения
// к сервису аутентификации и хранилищу.
func resolve(r *http.Request, auth Authenticator) *models.User {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil
	}
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

	user, err := auth.Authenticate(r.Context(), tokenStr)
	if err != nil {
		return nil
	}
	return user
}

// JWTMiddleware возвращает HTTP middleware, требующий валидный JWT.
//
// Если личность разрешилась, кладёт пользователя в контекст запроса,
// иначе возвращает ошибку с HTTP статусом 401 Unauthorized.
func JWTMiddleware(auth Authenticator, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			user := resolve(r, auth)
			if user == nil {
				log.Error("missing or invalid bearer token")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("Non authentifié"))
				return
			}

			ctx := context.WithValue(r.Context(), User, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalJWTMiddleware возвращает HTTP middleware, разрешающий личность,
// если токен есть и валиден, и пропускающий запрос как анонимный иначе.
// Никогда не отвечает 401.
func OptionalJWTMiddleware(auth Authenticator, _ *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user := resolve(r, auth); user != nil {
				ctx := context.WithValue(r.Context(), User, user)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserFromContext возвращает разрешённого пользователя из контекста запроса.
// Второе значение false означает анонимную личность.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(User).(*models.User)
	return user, ok && user != nil
}
