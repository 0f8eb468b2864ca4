package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/quantbroker/leads-api/internal/entity"
	"github.com/quantbroker/leads-api/internal/infra/http/middleware"
	"github.com/quantbroker/leads-api/internal/infra/integration/whatsapp"
	"github.com/quantbroker/leads-api/internal/usecase"
)

type LeadAggregator interface {
	Execute(ctx context.Context) ([]entity.Lead, error)
}

type LeadStatusManager interface {
	SetStatus(ctx context.Context, contactKey string, status entity.LeadStatus, notes string) (entity.LeadStatusRecord, error)
	MarkContacted(ctx context.Context, contactKey, reason string) (entity.LeadStatusRecord, error)
}

// LeadAdminHandler serve o back office: lista agregada com filtros, edição de
// status e ação de contato (que transiciona para contacted automaticamente)
type LeadAdminHandler struct {
	Aggregator LeadAggregator
	Status     LeadStatusManager
}

func NewLeadAdminHandler(aggregator LeadAggregator, status LeadStatusManager) *LeadAdminHandler {
	return &LeadAdminHandler{
		Aggregator: aggregator,
		Status:     status,
	}
}

type leadListResponse struct {
	Leads []entity.Lead `json:"leads"`
	Total int           `json:"total"`
}

// GET /admin/leads?source=&status=&search=
func (h *LeadAdminHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Aggregator.Execute(r.Context())
	if err != nil {
		// Tudo-ou-nada: qualquer fonte falhando, a lista inteira falha
		http.Error(w, "Falha ao carregar leads", http.StatusInternalServerError)
		return
	}

	q := r.URL.Query()
	filtered := usecase.FilterLeads(leads, usecase.LeadFilter{
		Source: q.Get("source"),
		Status: q.Get("status"),
		Search: q.Get("search"),
	})

	// A agregação não garante ordem; o admin quer os mais recentes primeiro
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].FirstSeenAt.After(filtered[j].FirstSeenAt)
	})

	respondJSON(w, http.StatusOK, leadListResponse{
		Leads: filtered,
		Total: len(filtered),
	})
}

type updateStatusRequest struct {
	Status entity.LeadStatus `json:"status"`
	Notes  string            `json:"notes"`
}

// PUT /admin/leads/{contactKey}/status
func (h *LeadAdminHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	contactKey := chi.URLParam(r, "contactKey")

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	record, err := h.Status.SetStatus(r.Context(), contactKey, req.Status, req.Notes)
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.RecordStatusTransition(string(req.Status))

	respondJSON(w, http.StatusOK, record)
}

type contactRequest struct {
	Reason string `json:"reason"`
	Phone  string `json:"phone"`
}

type contactResponse struct {
	Record       entity.LeadStatusRecord `json:"record"`
	WhatsAppLink string                  `json:"whatsapp_link,omitempty"`
}

// POST /admin/leads/{contactKey}/contact
// Abre o canal de saída: marca contacted (sobrescrevendo o status anterior,
// seja ele qual for) e devolve o link wa.me do lead
func (h *LeadAdminHandler) HandleContact(w http.ResponseWriter, r *http.Request) {
	contactKey := chi.URLParam(r, "contactKey")

	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	record, err := h.Status.MarkContacted(r.Context(), contactKey, req.Reason)
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.RecordStatusTransition(string(entity.StatusContacted))

	respondJSON(w, http.StatusOK, contactResponse{
		Record:       record,
		WhatsAppLink: whatsapp.ClickToChatLink(req.Phone),
	})
}
