// Package list реализует HTTP-обработчик выдачи сохранённых ревизий
// текущего пользователя, новые первыми.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/revision-generator/internal/http/middlewarectx"
	"github.com/magabrotheeeer/revision-generator/internal/http/response"
	"github.com/magabrotheeeer/revision-generator/internal/lib/sl"
	"github.com/magabrotheeeer/revision-generator/internal/models"
)

// Handler обрабатывает HTTP-запросы на выдачу списка ревизий.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики выдачи списка.
type Service interface {
	List(ctx context.Context, userUID string) ([]*models.Revision, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список ревизий
// @Description Возвращает до 100 последних ревизий пользователя.
// @Tags Revisions
// @Security BearerAuth
// @Produce  json
// @Success 200 {object} map[string]any "Список ревизий"
// @Failure 401 {object} response.ErrorResponse "Требуется аутентификация"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /revisions [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.revision.list"

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

	revisions, err := h.service.List(r.Context(), user.UID)
	if err != nil {
		log.Error("failed to list revisions", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Impossible de charger les révisions"))
		return
	}
	if revisions == nil {
		revisions = []*models.Revision{}
	}

	log.Info("revisions listed", slog.String("uid", user.UID), slog.Int("count", len(revisions)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"revisions": revisions,
	}))
}
