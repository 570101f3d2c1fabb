package scoring

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

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ScoreApplication(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req ApplicationRequest
	if !decode(w, r, &req) {
		return
	}

	result, err := h.service.ScoreApplication(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Failed to score application")
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) EvaluatePitch(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req PitchRequest
	if !decode(w, r, &req) {
		return
	}

	result, err := h.service.EvaluatePitch(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Failed to evaluate pitch")
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, result)
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	err := validation.DecodeJSON(r, v)
	if err == nil {
		return true
	}

	var verr *validation.Error
	if errors.As(err, &verr) {
		config.JSON(w, http.StatusBadRequest, verr)
		return false
	}
	http.Error(w, "invalid request body", http.StatusBadRequest)
	return false
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, aigateway.ErrNotConfigured):
		http.Error(w, "AI scoring is not configured", http.StatusServiceUnavailable)
	case errors.Is(err, ErrGateway):
		http.Error(w, "AI gateway error", http.StatusBadGateway)
	case errors.Is(err, ErrApplicationNotFound):
		http.Error(w, "application not found", http.StatusNotFound)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
