package handlers

import (
	"net/http"

	"github.com/quantbroker/leads-api/internal/usecase"
)

type PlanHandler struct {
	Repo usecase.PlanRepositoryInterface
}

func NewPlanHandler(repo usecase.PlanRepositoryInterface) *PlanHandler {
	return &PlanHandler{Repo: repo}
}

// GET /plans
func (h *PlanHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	plans, err := h.Repo.FindAll(r.Context())
	if err != nil {
		http.Error(w, "Falha ao carregar planos", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, plans)
}
