// Package remove реализует HTTP-обработчик удаления ревизии владельцем.
//
// Несуществующая и чужая ревизия дают одинаковый ответ 404.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/revision-generator/internal/http/middlewarectx"
	"github.com/magabrotheeeer/revision-generator/internal/http/response"
	"github.com/magabrotheeeer/revision-generator/internal/lib/sl"
	revisionservice "github.com/magabrotheeeer/revision-generator/internal/services/revision"
)

// Handler обрабатывает HTTP-запросы на удаление ревизии.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики удаления.
type Service interface {
	Remove(ctx context.Context, userUID, id string) error
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удаление ревизии
// @Description Удаляет ревизию текущего пользователя по идентификатору.
// @Tags Revisions
// @Security BearerAuth
// @Produce  json
// @Param id path string true "Идентификатор ревизии"
// @Success 200 {object} response.Response "Ревизия удалена"
// @Failure 401 {object} response.ErrorResponse "Требуется аутентификация"
// @Failure 404 {object} response.ErrorResponse "Ревизия не найдена"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /revisions/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.revision.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	user, ok := middlewarectx.UserFromContext(r.Context())
	if !ok {
		log.Error("user not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("Non authentifié"))
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		log.Error("missing revision id in path")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("Requête invalide"))
		return
	}

	if err := h.service.Remove(r.Context(), user.UID, id); err != nil {
		if errors.Is(err, revisionservice.ErrRevisionNotFound) {
			log.Info("revision not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("Révision non trouvée"))
			return
		}
		log.Error("failed to remove revision", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Impossible de supprimer la révision"))
		return
	}

	log.Info("revision removed", slog.String("id", id), slog.String("uid", user.UID))
	render.JSON(w, r, response.Response{
		Status:  response.StatusOK,
		Message: "Révision supprimée",
	})
}
