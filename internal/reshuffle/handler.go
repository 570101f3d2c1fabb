package reshuffle

import (
	"fmt"
	"net/http"

	"github.com/saulo-duarte/academy-functions/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) ShuffleQuizzes(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	log.Info("Starting quiz answer shuffle")

	summary, err := h.service.Run(r.Context())
	if err != nil {
		log.WithError(err).Error("Quiz answer shuffle failed")
		config.JSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	config.JSON(w, http.StatusOK, Response{
		Success: true,
		Message: fmt.Sprintf("Shuffled %d questions across %d records", summary.TotalQuestions, summary.TotalUpdated),
		Stats:   summary,
	})
}

// Preflight answers bare OPTIONS requests; CORS headers come from the router middleware.
func (h *Handler) Preflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
