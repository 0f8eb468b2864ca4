package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/quantbroker/leads-api/internal/infra/http/middleware"
	"github.com/quantbroker/leads-api/internal/usecase"
)

type RecommendationHandler struct{}

func NewRecommendationHandler() *RecommendationHandler {
	return &RecommendationHandler{}
}

// POST /portfolio/recommendation
func (h *RecommendationHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.QuestionnaireInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	output := usecase.RecommendPortfolio(input)

	middleware.RecordRecommendation(output.PlanSlug)

	respondJSON(w, http.StatusOK, output)
}
