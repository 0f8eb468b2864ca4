package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/quantbroker/leads-api/internal/entity"
	"github.com/quantbroker/leads-api/internal/infra/http/middleware"
	"github.com/quantbroker/leads-api/internal/usecase"
)

type ConsultationCapturer interface {
	Execute(ctx context.Context, input usecase.CaptureConsultationInput) (*usecase.CaptureConsultationOutput, error)
}

type ConsultationHandler struct {
	uc          ConsultationCapturer
	rateLimiter *RateLimiter
}

func NewConsultationHandler(uc ConsultationCapturer) *ConsultationHandler {
	return &ConsultationHandler{
		uc:          uc,
		rateLimiter: NewRateLimiter(5, time.Minute), // agendamento é mais raro que waitlist
	}
}

func (h *ConsultationHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		respondJSON(w, http.StatusTooManyRequests, map[string]interface{}{
			"success": false,
			"message": "Too many requests. Please try again later.",
		})
		return
	}

	var input usecase.CaptureConsultationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"message": "Invalid JSON",
		})
		return
	}

	output, err := h.uc.Execute(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.RecordLeadCaptured(string(entity.OriginConsultation))

	respondJSON(w, http.StatusCreated, output)
}
