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

type WaitlistCapturer interface {
	Execute(ctx context.Context, input usecase.CaptureWaitlistInput) (*usecase.CaptureWaitlistOutput, error)
}

type WaitlistHandler struct {
	uc          WaitlistCapturer
	rateLimiter *RateLimiter
}

func NewWaitlistHandler(uc WaitlistCapturer) *WaitlistHandler {
	return &WaitlistHandler{
		uc:          uc,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min por IP
	}
}

func (h *WaitlistHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		respondJSON(w, http.StatusTooManyRequests, map[string]interface{}{
			"success": false,
			"message": "Too many requests. Please try again later.",
		})
		return
	}

	var input usecase.CaptureWaitlistInput
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

	middleware.RecordLeadCaptured(string(entity.OriginWaitlist))

	respondJSON(w, http.StatusCreated, output)
}
