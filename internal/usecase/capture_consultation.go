package usecase

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/quantbroker/leads-api/internal/entity"
	"github.com/quantbroker/leads-api/internal/infra/queue"
)

type CaptureConsultationInput struct {
	Email            string `json:"email"`
	FullName         string `json:"full_name"`
	Phone            string `json:"phone"`
	ConsultationType string `json:"consultation_type"`
	PreferredSlot    string `json:"preferred_slot"`
}

type CaptureConsultationOutput struct {
	ID  string `json:"id"`
	Msg string `json:"msg"`
}

type CaptureConsultationUseCase struct {
	Repo  ConsultationRepositoryInterface
	Queue QueueProducerInterface
}

func NewCaptureConsultationUseCase(repo ConsultationRepositoryInterface, producer QueueProducerInterface) *CaptureConsultationUseCase {
	return &CaptureConsultationUseCase{Repo: repo, Queue: producer}
}

func (uc *CaptureConsultationUseCase) Execute(ctx context.Context, input CaptureConsultationInput) (*CaptureConsultationOutput, error) {
	if errs := ValidateConsultationInput(input); len(errs) > 0 {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: validationMessage(errs)}
	}

	// Cada agendamento é uma linha nova; a deduplicação acontece só na
	// agregação de leads, nunca na captura
	request := &entity.ConsultationRequest{
		ID:               uuid.New().String(),
		Email:            entity.ContactKeyFromEmail(input.Email),
		FullName:         input.FullName,
		Phone:            input.Phone,
		ConsultationType: input.ConsultationType,
		PreferredSlot:    input.PreferredSlot,
		Status:           "pending",
		CreatedAt:        time.Now(),
	}

	if err := uc.Repo.Create(ctx, request); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "falha ao salvar pedido de consultoria: " + err.Error(),
		}
	}

	payload := queue.LeadCapturedPayload{
		Origin:           string(entity.OriginConsultation),
		Email:            request.Email,
		Name:             request.FullName,
		Phone:            request.Phone,
		ConsultationType: request.ConsultationType,
	}

	if err := uc.Queue.PublishLeadCaptured(ctx, payload); err != nil {
		log.Printf("⚠️ CRITICAL: Consultoria salva, mas falha ao publicar evento: %v", err)
	}

	return &CaptureConsultationOutput{
		ID:  request.ID,
		Msg: "Agendamento recebido com sucesso!",
	}, nil
}
