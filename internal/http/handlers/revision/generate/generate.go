// Package generate реализует HTTP-обработчик генерации учебного материала.
//
// Обработчик доступен и анонимно: при наличии валидного токена созданная
// ревизия привязывается к пользователю, иначе владелец остаётся пустым.
// Результат не сохраняется, сохранение выполняется отдельным запросом.
package generate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/revision-generator/internal/http/middlewarectx"
	"github.com/magabrotheeeer/revision-generator/internal/http/response"
	"github.com/magabrotheeeer/revision-generator/internal/lib/sl"
	"github.com/magabrotheeeer/revision-generator/internal/models"
	revisionservice "github.com/magabrotheeeer/revision-generator/internal/services/revision"
)

// Handler обрабатывает HTTP-запросы на генерацию материала.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики генерации.
type Service interface {
	Generate(ctx context.Context, userUID *string, req models.DummyGenerateRequest) (*models.Revision, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Генерация учебного материала
// @Description Выполняет один запрос к LLM-провайдеру и возвращает несохранённую ревизию.
// @Tags Revisions
// @Accept  json
// @Produce  json
// @Param request body models.DummyGenerateRequest true "Параметры генерации"
// @Success 200 {object} map[string]any "Сгенерированная ревизия"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Провайдер не настроен или сбой генерации"
// @Router /generate [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.revision.generate"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyGenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("Requête invalide"))
		return
	}
	log.Info("request body decoded",
		slog.String("subject", req.Subject),
		slog.String("revision_type", req.RevisionType))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	var userUID *string
	if user, ok := middlewarectx.UserFromContext(r.Context()); ok {
		userUID = &user.UID
	}

	revision, err := h.service.Generate(r.Context(), userUID, req)
	if err != nil {
		if errors.Is(err, revisionservice.ErrProviderUnconfigured) {
			log.Error("llm provider is not configured")
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Clé API non configurée"))
			return
		}
		if errors.Is(err, revisionservice.ErrGenerationFailed) {
			log.Error("generation failed", sl.Err(err))
			detail := strings.TrimPrefix(err.Error(), revisionservice.ErrGenerationFailed.Error()+": ")
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Erreur de génération: "+detail))
			return
		}
		log.Error("failed to generate revision", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Erreur interne du serveur"))
		return
	}

	log.Info("revision generated", slog.String("id", revision.ID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"revision": revision,
	}))
}
