// Package revisiongenerator собирает приложение: хранилище, миграции, кеш,
// клиент LLM-провайдера, сервисы и HTTP-сервер с graceful shutdown.
package revisiongenerator

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/revision-generator/internal/cache"
	"github.com/magabrotheeeer/revision-generator/internal/config"
	"github.com/magabrotheeeer/revision-generator/internal/lib/jwt"
	"github.com/magabrotheeeer/revision-generator/internal/llmprovider"
	"github.com/magabrotheeeer/revision-generator/internal/migrations"
	authservice "github.com/magabrotheeeer/revision-generator/internal/services/auth"
	revisionservice "github.com/magabrotheeeer/revision-generator/internal/services/revision"
	"github.com/magabrotheeeer/revision-generator/internal/storage/repository"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	providerClient := llmprovider.NewClient(cfg.LLMProvider)

	authService := authservice.NewAuthService(db, jwtMaker)
	revisionService := revisionservice.NewRevisionService(db, cacheRedis, providerClient, cfg.APIKey != "", logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, authService, revisionService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.db.DB.Close()
		return err
	}
}
