package aiquiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

const ActionGenerateQuiz = "generate_quiz"

func Routes(h *Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.Post("/", h.GenerateQuestions)
	return r
}
