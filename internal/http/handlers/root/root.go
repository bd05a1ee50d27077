// Package root отдаёт баннер сервиса на корне API.
package root

import (
	"net/http"

	"github.com/go-chi/render"
)

type Handler struct{}

func New() *Handler {
	return &Handler{}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{
		"message": "3ème Goya Révisions API",
	})
}
