package reshuffle

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/academy-functions/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Options("/", h.Preflight)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Use(auth.RequireRole(auth.RoleAdmin))

		r.Post("/", h.ShuffleQuizzes)
	})
	return r
}
