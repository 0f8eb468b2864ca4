package usecase

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/quantbroker/leads-api/internal/entity"
	"github.com/quantbroker/leads-api/internal/infra/queue"
)

type CaptureWaitlistInput struct {
	Email         string `json:"email"`
	FullName      string `json:"full_name"`
	Phone         string `json:"phone"`
	PortfolioType string `json:"portfolio_type"`
}

type CaptureWaitlistOutput struct {
	ID  string `json:"id"`
	Msg string `json:"msg"`
}

type CaptureWaitlistUseCase struct {
	Repo  WaitlistRepositoryInterface
	Queue QueueProducerInterface
}

func NewCaptureWaitlistUseCase(repo WaitlistRepositoryInterface, producer QueueProducerInterface) *CaptureWaitlistUseCase {
	return &CaptureWaitlistUseCase{Repo: repo, Queue: producer}
}

func (uc *CaptureWaitlistUseCase) Execute(ctx context.Context, input CaptureWaitlistInput) (*CaptureWaitlistOutput, error) {
	if errs := ValidateWaitlistInput(input); len(errs) > 0 {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: validationMessage(errs)}
	}

	signup := &entity.WaitlistSignup{
		ID:            uuid.New().String(),
		Email:         entity.ContactKeyFromEmail(input.Email),
		FullName:      input.FullName,
		Phone:         input.Phone,
		PortfolioType: input.PortfolioType,
		Status:        "pending",
		CreatedAt:     time.Now(),
	}

	if err := uc.Repo.Upsert(ctx, signup); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "falha ao salvar inscrição na waitlist: " + err.Error(),
		}
	}

	payload := queue.LeadCapturedPayload{
		Origin:        string(entity.OriginWaitlist),
		Email:         signup.Email,
		Name:          signup.FullName,
		Phone:         signup.Phone,
		PortfolioType: signup.PortfolioType,
	}

	// Inscrição já está no banco; falha na fila não derruba a captura
	if err := uc.Queue.PublishLeadCaptured(ctx, payload); err != nil {
		log.Printf("⚠️ CRITICAL: Waitlist salva, mas falha ao publicar evento: %v", err)
	}

	return &CaptureWaitlistOutput{
		ID:  signup.ID,
		Msg: "Inscrição realizada com sucesso!",
	}, nil
}
