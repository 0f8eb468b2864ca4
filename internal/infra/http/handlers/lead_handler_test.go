package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/quantbroker/leads-api/internal/entity"
	"github.com/quantbroker/leads-api/internal/infra/http/handlers"
)

type MockAggregator struct {
	mock.Mock
}

func (m *MockAggregator) Execute(ctx context.Context) ([]entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

type MockStatusManager struct {
	mock.Mock
}

func (m *MockStatusManager) SetStatus(ctx context.Context, contactKey string, status entity.LeadStatus, notes string) (entity.LeadStatusRecord, error) {
	args := m.Called(ctx, contactKey, status, notes)
	return args.Get(0).(entity.LeadStatusRecord), args.Error(1)
}

func (m *MockStatusManager) MarkContacted(ctx context.Context, contactKey, reason string) (entity.LeadStatusRecord, error) {
	args := m.Called(ctx, contactKey, reason)
	return args.Get(0).(entity.LeadStatusRecord), args.Error(1)
}

func adminRouter(h *handlers.LeadAdminHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/admin/leads", h.HandleList)
	r.Put("/admin/leads/{contactKey}/status", h.HandleUpdateStatus)
	r.Post("/admin/leads/{contactKey}/contact", h.HandleContact)
	return r
}

func TestHandleListAppliesFilters(t *testing.T) {
	aggregator := new(MockAggregator)
	aggregator.On("Execute", mock.Anything).Return([]entity.Lead{
		{ContactKey: "ana@example.com", Origin: entity.OriginWaitlist, Status: entity.StatusNew, FirstSeenAt: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		{ContactKey: "bruno@example.com", Origin: entity.OriginConsultation, Status: entity.StatusNew, FirstSeenAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
	}, nil)

	h := handlers.NewLeadAdminHandler(aggregator, new(MockStatusManager))

	req := httptest.NewRequest("GET", "/admin/leads?source=waitlist", nil)
	rec := httptest.NewRecorder()
	adminRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Leads []entity.Lead `json:"leads"`
		Total int           `json:"total"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Total)
	assert.Equal(t, "ana@example.com", body.Leads[0].ContactKey)
}

func TestHandleListFailsClosed(t *testing.T) {
	aggregator := new(MockAggregator)
	aggregator.On("Execute", mock.Anything).Return(nil, errors.New("waitlist read failed"))

	h := handlers.NewLeadAdminHandler(aggregator, new(MockStatusManager))

	req := httptest.NewRequest("GET", "/admin/leads", nil)
	rec := httptest.NewRecorder()
	adminRouter(h).ServeHTTP(rec, req)

	// Mensagem genérica, sem vazar qual fonte falhou
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Falha ao carregar leads")
}

func TestHandleUpdateStatus(t *testing.T) {
	statusMgr := new(MockStatusManager)
	now := time.Now()
	statusMgr.On("SetStatus", mock.Anything, "ana@example.com", entity.StatusQualified, "proposta enviada").
		Return(entity.LeadStatusRecord{Status: entity.StatusQualified, Notes: "proposta enviada", LastContactAt: &now}, nil)

	h := handlers.NewLeadAdminHandler(new(MockAggregator), statusMgr)

	payload := `{"status":"qualified","notes":"proposta enviada"}`
	req := httptest.NewRequest("PUT", "/admin/leads/ana@example.com/status", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	adminRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	statusMgr.AssertExpectations(t)
}

func TestHandleContactReturnsWhatsAppLink(t *testing.T) {
	statusMgr := new(MockStatusManager)
	now := time.Now()
	statusMgr.On("MarkContacted", mock.Anything, "ana@example.com", "follow-up").
		Return(entity.LeadStatusRecord{Status: entity.StatusContacted, Notes: "follow-up", LastContactAt: &now}, nil)

	h := handlers.NewLeadAdminHandler(new(MockAggregator), statusMgr)

	payload := `{"reason":"follow-up","phone":"(11) 99999-1111"}`
	req := httptest.NewRequest("POST", "/admin/leads/ana@example.com/contact", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	adminRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Record       entity.LeadStatusRecord `json:"record"`
		WhatsAppLink string                  `json:"whatsapp_link"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, entity.StatusContacted, body.Record.Status)
	assert.Equal(t, "https://wa.me/5511999991111", body.WhatsAppLink)
}
