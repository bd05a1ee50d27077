// Package revisiongenerator предоставляет маршруты для основного приложения.
package revisiongenerator

import (
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/revision-generator/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/revision-generator/internal/http/handlers/auth/me"
	"github.com/magabrotheeeer/revision-generator/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/revision-generator/internal/http/handlers/catalog/revisiontypes"
	"github.com/magabrotheeeer/revision-generator/internal/http/handlers/catalog/subjects"
	"github.com/magabrotheeeer/revision-generator/internal/http/handlers/health"
	"github.com/magabrotheeeer/revision-generator/internal/http/handlers/revision/generate"
	"github.com/magabrotheeeer/revision-generator/internal/http/handlers/revision/list"
	"github.com/magabrotheeeer/revision-generator/internal/http/handlers/revision/remove"
	"github.com/magabrotheeeer/revision-generator/internal/http/handlers/revision/save"
	"github.com/magabrotheeeer/revision-generator/internal/http/handlers/root"
	"github.com/magabrotheeeer/revision-generator/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/revision-generator/internal/services/auth"
	revisionservice "github.com/magabrotheeeer/revision-generator/internal/services/revision"

	"log/slog"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, authService *authservice.AuthService, revisionService *revisionservice.RevisionService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api", func(r chi.Router) {
		// Открытые конечные точки
		r.Get("/", root.New().ServeHTTP)
		r.Get("/health", health.New(logger).ServeHTTP)
		r.Get("/subjects", subjects.New().ServeHTTP)
		r.Get("/revision-types", revisiontypes.New().ServeHTTP)
		r.Post("/auth/register", register.New(logger, authService).ServeHTTP)
		r.Post("/auth/login", login.New(logger, authService).ServeHTTP)

		// Генерация доступна и анонимно, личность разрешается при наличии токена
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.OptionalJWTMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/generate", generate.New(logger, revisionService).ServeHTTP)
		})

		// Сохранение отвечает анониму собственным сообщением, поэтому
		// личность здесь разрешается необязательным middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.OptionalJWTMiddleware(authService, logger))
			r.Post("/revisions", save.New(logger, revisionService).ServeHTTP)
		})

		// Группа с обязательной JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Get("/auth/me", me.New(logger).ServeHTTP)
			r.Get("/revisions", list.New(logger, revisionService).ServeHTTP)
			r.Delete("/revisions/{id}", remove.New(logger, revisionService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
