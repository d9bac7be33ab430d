package user

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.GetProfile)
	r.Post("/", h.UpdateProfile)
	return r
}
