package handlers_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/quantbroker/leads-api/internal/infra/http/handlers"
	"github.com/quantbroker/leads-api/internal/usecase"
)

type MockWaitlistCapturer struct {
	mock.Mock
}

func (m *MockWaitlistCapturer) Execute(ctx context.Context, input usecase.CaptureWaitlistInput) (*usecase.CaptureWaitlistOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.CaptureWaitlistOutput), args.Error(1)
}

func TestWaitlistHandlerSuccess(t *testing.T) {
	uc := new(MockWaitlistCapturer)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(in usecase.CaptureWaitlistInput) bool {
		return in.Email == "ana@example.com" && in.PortfolioType == "trader"
	})).Return(&usecase.CaptureWaitlistOutput{ID: "abc-123", Msg: "Inscrição realizada com sucesso!"}, nil)

	h := handlers.NewWaitlistHandler(uc)

	payload := `{"email":"ana@example.com","full_name":"Ana Maria","portfolio_type":"trader"}`
	req := httptest.NewRequest("POST", "/waitlist", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "abc-123")
}

func TestWaitlistHandlerInvalidJSON(t *testing.T) {
	h := handlers.NewWaitlistHandler(new(MockWaitlistCapturer))

	req := httptest.NewRequest("POST", "/waitlist", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWaitlistHandlerDomainErrorIs400(t *testing.T) {
	uc := new(MockWaitlistCapturer)
	uc.On("Execute", mock.Anything, mock.Anything).
		Return(nil, &usecase.DomainError{Code: "VALIDATION_ERROR", Message: "validation failed: email (is required)"})

	h := handlers.NewWaitlistHandler(uc)

	req := httptest.NewRequest("POST", "/waitlist", strings.NewReader(`{"full_name":"Ana"}`))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation failed")
}

func TestWaitlistHandlerRateLimit(t *testing.T) {
	uc := new(MockWaitlistCapturer)
	uc.On("Execute", mock.Anything, mock.Anything).
		Return(&usecase.CaptureWaitlistOutput{ID: "abc"}, nil)

	h := handlers.NewWaitlistHandler(uc)

	var last int
	for i := 0; i < 11; i++ {
		payload := fmt.Sprintf(`{"email":"ana+%d@example.com","full_name":"Ana"}`, i)
		req := httptest.NewRequest("POST", "/waitlist", strings.NewReader(payload))
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		h.Handle(rec, req)
		last = rec.Code
	}

	// Limite é 10 req/min por IP; a 11ª leva 429
	assert.Equal(t, http.StatusTooManyRequests, last)
}
