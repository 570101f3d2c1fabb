package router

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/academy-functions/internal/aiquiz"
	"github.com/saulo-duarte/academy-functions/internal/auth"
	"github.com/saulo-duarte/academy-functions/internal/config"
	"github.com/saulo-duarte/academy-functions/internal/middlewares"
	"github.com/saulo-duarte/academy-functions/internal/reshuffle"
	"github.com/saulo-duarte/academy-functions/internal/scoring"
)

type RouterConfig struct {
	ReshuffleHandler *reshuffle.Handler
	AIQuizHandler    *aiquiz.Handler
	ScoringHandler   *scoring.Handler
	AuthHandler      *auth.Handler

	// RateLimit returns the middleware guarding one AI action.
	RateLimit func(action string) func(http.Handler) http.Handler
	// Ping reports whether storage is reachable.
	Ping        func(ctx context.Context) error
	CORSOrigins []string
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.CORSOrigins))

	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/healthz", healthz(cfg.Ping))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/logout", cfg.AuthHandler.Logout)
	})

	r.Mount("/admin/shuffle-quizzes", reshuffle.Routes(cfg.ReshuffleHandler))

	limit := cfg.RateLimit
	if limit == nil {
		limit = func(string) func(http.Handler) http.Handler {
			return func(next http.Handler) http.Handler { return next }
		}
	}

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/ai-quiz", aiquiz.Routes(cfg.AIQuizHandler, limit(aiquiz.ActionGenerateQuiz)))
		r.Mount("/ai", scoring.Routes(cfg.ScoringHandler, limit))
	})
	return r
}

func healthz(ping func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ping != nil {
			if err := ping(r.Context()); err != nil {
				config.WithContext(r.Context()).WithError(err).Error("Health check failed")
				config.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
