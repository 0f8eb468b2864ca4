package usecase

import (
	"context"

	"github.com/quantbroker/leads-api/internal/entity"
	"github.com/quantbroker/leads-api/internal/infra/queue"
)

type UserRepositoryInterface interface {
	FindAll(ctx context.Context) ([]entity.RegisteredUser, error)
}

type WaitlistRepositoryInterface interface {
	FindAll(ctx context.Context) ([]entity.WaitlistSignup, error)
	Upsert(ctx context.Context, signup *entity.WaitlistSignup) error
}

type ConsultationRepositoryInterface interface {
	FindAll(ctx context.Context) ([]entity.ConsultationRequest, error)
	Create(ctx context.Context, request *entity.ConsultationRequest) error
}

// LeadStatusStore é o lifecycle store: um mapeamento contactKey -> registro,
// independente das agregações. Get nunca falha: registro ausente ou payload
// corrompido viram o registro default (degradação silenciosa, de propósito).
// Falha de escrita é devolvida ao chamador.
type LeadStatusStore interface {
	Get(ctx context.Context, contactKey string) entity.LeadStatusRecord
	Set(ctx context.Context, contactKey string, record entity.LeadStatusRecord) error
}

type PlanRepositoryInterface interface {
	FindAll(ctx context.Context) ([]entity.Plan, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Plan, error)
}

type QueueProducerInterface interface {
	PublishLeadCaptured(ctx context.Context, payload queue.LeadCapturedPayload) error
}
