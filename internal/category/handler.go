package category

import (
	"net/http"

	"github.com/jpdeguzman/alkansave/internal/config"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	categories, err := h.repo.FindAll()
	if err != nil {
		log.WithError(err).Error("Failed to list categories")
		config.Fail(w, err)
		return
	}

	config.JSON(w, http.StatusOK, categories)
}
