// Package revisiontypes реализует HTTP-обработчик справочника форматов
// учебного материала.
package revisiontypes

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
// @Summary Справочник форматов материала
// @Description Возвращает фиксированный список из пяти форматов.
// @Tags Catalog
// @Produce  json
// @Success 200 {object} map[string]any "Список форматов"
// @Router /revision-types [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"types": models.RevisionTypes(),
	}))
}
