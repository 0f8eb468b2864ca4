package usecase_test

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/quantbroker/leads-api/internal/entity"
	"github.com/quantbroker/leads-api/internal/infra/queue"
)

// MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]entity.RegisteredUser, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.RegisteredUser), args.Error(1)
}

// MockWaitlistRepository
type MockWaitlistRepository struct {
	mock.Mock
}

func (m *MockWaitlistRepository) FindAll(ctx context.Context) ([]entity.WaitlistSignup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.WaitlistSignup), args.Error(1)
}

func (m *MockWaitlistRepository) Upsert(ctx context.Context, signup *entity.WaitlistSignup) error {
	args := m.Called(ctx, signup)
	return args.Error(0)
}

// MockConsultationRepository
type MockConsultationRepository struct {
	mock.Mock
}

func (m *MockConsultationRepository) FindAll(ctx context.Context) ([]entity.ConsultationRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ConsultationRequest), args.Error(1)
}

func (m *MockConsultationRepository) Create(ctx context.Context, request *entity.ConsultationRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

// MockQueueProducer
type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishLeadCaptured(ctx context.Context, payload queue.LeadCapturedPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// fakeStatusStore é um lifecycle store em memória com a mesma semântica do
// repositório real: Get nunca falha e devolve o default quando a chave não existe
type fakeStatusStore struct {
	mu      sync.Mutex
	records map[string]entity.LeadStatusRecord
	setErr  error
}

func newFakeStatusStore() *fakeStatusStore {
	return &fakeStatusStore{records: make(map[string]entity.LeadStatusRecord)}
}

func (s *fakeStatusStore) Get(ctx context.Context, contactKey string) entity.LeadStatusRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	if record, ok := s.records[contactKey]; ok {
		return record
	}
	return entity.DefaultLeadStatusRecord()
}

func (s *fakeStatusStore) Set(ctx context.Context, contactKey string, record entity.LeadStatusRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return s.setErr
	}
	s.records[contactKey] = record
	return nil
}
