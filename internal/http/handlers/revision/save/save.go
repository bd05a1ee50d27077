// Package save реализует HTTP-обработчик сохранения ревизии за владельцем.
package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/revision-generator/internal/http/middlewarectx"
	"github.com/magabrotheeeer/revision-generator/internal/http/response"
	"github.com/magabrotheeeer/revision-generator/internal/lib/sl"
	"github.com/magabrotheeeer/revision-generator/internal/models"
)

// Handler обрабатывает HTTP-запросы на сохранение ревизии.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики сохранения.
type Service interface {
	Save(ctx context.Context, userUID string, req models.DummySaveRequest) (*models.Revision, error)
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
// @Summary Сохранение ревизии
// @Description Сохраняет ревизию за текущим пользователем.
// @Tags Revisions
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param request body models.DummySaveRequest true "Данные ревизии"
// @Success 200 {object} map[string]any "Сохранённая ревизия"
// @Failure 401 {object} response.ErrorResponse "Требуется аутентификация"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /revisions [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.revision.save"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	user, ok := middlewarectx.UserFromContext(r.Context())
	if !ok {
		log.Error("user not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("Connectez-vous pour sauvegarder"))
		return
	}

	var req models.DummySaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("Requête invalide"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	revision, err := h.service.Save(r.Context(), user.UID, req)
	if err != nil {
		log.Error("failed to save revision", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Impossible de sauvegarder la révision"))
		return
	}

	log.Info("revision saved", slog.String("id", revision.ID), slog.String("uid", user.UID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"revision": revision,
	}))
}
