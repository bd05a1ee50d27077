// Package subjects реализует HTTP-обработчик справочника школьных предметов.
package subjects

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/revision-generator/internal/http/response"
	"github.com/magabrotheeeer/revision-generator/internal/models"
)

type Handler struct{}

func New() *Handler {
	return &Handler{}
}

// ServeHTTP godoc
// @Summary Справочник предметов
// @Description Возвращает фиксированный список из десяти школьных предметов.
// @Tags Catalog
// @Produce  json
// @Success 200 {object} map[string]any "Список предметов"
// @Router /subjects [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"subjects": models.Subjects(),
	}))
}
