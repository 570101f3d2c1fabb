package scoring

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Limit returns the middleware guarding one AI action.
type Limit func(action string) func(http.Handler) http.Handler

func Routes(h *Handler, limit Limit) http.Handler {
	r := chi.NewRouter()
	if limit == nil {
		limit = func(string) func(http.Handler) http.Handler {
			return func(next http.Handler) http.Handler { return next }
		}
	}

	r.With(limit(ActionScoreApplication)).Post("/score-application", h.ScoreApplication)
	r.With(limit(ActionEvaluatePitch)).Post("/evaluate-pitch", h.EvaluatePitch)
	return r
}
