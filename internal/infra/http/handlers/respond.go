package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/quantbroker/leads-api/internal/usecase"
)

func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// Erro de domínio vira 4xx; o resto é 5xx com mensagem genérica
func respondError(w http.ResponseWriter, err error) {
	if usecase.IsDomainError(err) {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusInternalServerError, map[string]interface{}{
		"success": false,
		"message": "Erro interno. Tente novamente.",
	})
}
