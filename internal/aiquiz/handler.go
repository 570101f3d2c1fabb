package aiquiz

import (
	"errors"
	"net/http"

	"github.com/saulo-duarte/academy-functions/internal/aigateway"
	"github.com/saulo-duarte/academy-functions/internal/config"
	"github.com/saulo-duarte/academy-functions/internal/validation"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req QuestionRequest
	if err := validation.DecodeJSON(r, &req); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			config.JSON(w, http.StatusBadRequest, verr)
			return
		}
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	questions, err := h.service.GenerateQuestions(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Failed to generate questions")
		switch {
		case errors.Is(err, aigateway.ErrNotConfigured):
			http.Error(w, "AI generation is not configured", http.StatusServiceUnavailable)
		case errors.Is(err, ErrInvalidTopic):
			http.Error(w, "topic is not educational content", http.StatusUnprocessableEntity)
		case errors.Is(err, ErrGateway), errors.Is(err, ErrNoQuestions):
			http.Error(w, "failed to generate questions", http.StatusBadGateway)
		default:
			http.Error(w, "failed to generate questions", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, QuestionResponse{Questions: questions})
}
