package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/quantbroker/leads-api/internal/entity"
)

// LeadStatusUseCase concentra as mutações do lifecycle store. O store não
// impõe grafo de transições: qualquer status válido é aceito a partir de
// qualquer estado atual. Last write wins; como o store agora é central
// (multi-admin), toda sobrescrita de status não-default é logada.
type LeadStatusUseCase struct {
	Store LeadStatusStore
}

func NewLeadStatusUseCase(store LeadStatusStore) *LeadStatusUseCase {
	return &LeadStatusUseCase{Store: store}
}

func (uc *LeadStatusUseCase) GetStatus(ctx context.Context, contactKey string) entity.LeadStatusRecord {
	return uc.Store.Get(ctx, entity.ContactKeyFromEmail(contactKey))
}

func (uc *LeadStatusUseCase) SetStatus(ctx context.Context, contactKey string, status entity.LeadStatus, notes string) (entity.LeadStatusRecord, error) {
	if !entity.IsValidLeadStatus(status) {
		return entity.LeadStatusRecord{}, &DomainError{
			Code:    "INVALID_STATUS",
			Message: fmt.Sprintf("status desconhecido: %q", status),
		}
	}

	key := entity.ContactKeyFromEmail(contactKey)
	if key == "" {
		return entity.LeadStatusRecord{}, &DomainError{
			Code:    "INVALID_CONTACT_KEY",
			Message: "contact key vazio",
		}
	}

	prev := uc.Store.Get(ctx, key)
	if prev.Status != entity.StatusNew && prev.Status != status {
		log.Printf("⚠️ [LEADS] Conflito de status em %s: %s -> %s (last write wins)", key, prev.Status, status)
	}

	now := time.Now()
	record := entity.LeadStatusRecord{
		Status:        status,
		Notes:         notes,
		LastContactAt: &now,
		UpdatedAt:     &now,
	}

	if err := uc.Store.Set(ctx, key, record); err != nil {
		return entity.LeadStatusRecord{}, &TechnicalError{
			Code:    "STATUS_STORE_WRITE_FAILED",
			Message: "falha ao gravar status do lead: " + err.Error(),
		}
	}

	return record, nil
}

// MarkContacted é a transição automática disparada quando o operador abre um
// canal de contato (ex: clique no WhatsApp do lead). Sobrescreve o status
// anterior incondicionalmente, inclusive qualified/converted. Operação nomeada
// de propósito para a sobrescrita ficar visível em code review.
func (uc *LeadStatusUseCase) MarkContacted(ctx context.Context, contactKey, reason string) (entity.LeadStatusRecord, error) {
	return uc.SetStatus(ctx, contactKey, entity.StatusContacted, reason)
}
