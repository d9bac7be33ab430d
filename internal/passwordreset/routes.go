package passwordreset

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/request", h.RequestReset)
	r.Post("/verify", h.VerifyCode)
	r.Post("/confirm", h.ConfirmReset)

	return r
}
