package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/quantbroker/leads-api/internal/entity"
)

// AggregateLeadsUseCase produz a lista deduplicada de leads a partir das três
// fontes de captação (usuários registrados, waitlist, pedidos de consultoria).
//
// A agregação é tudo-ou-nada: se qualquer uma das três leituras falhar, a
// operação inteira falha e nada é retornado. O lead é uma visão, não uma
// entidade armazenada: cada chamada rematerializa a lista do zero e aplica o
// overlay do lifecycle store por cima.
type AggregateLeadsUseCase struct {
	Users         UserRepositoryInterface
	Waitlist      WaitlistRepositoryInterface
	Consultations ConsultationRepositoryInterface
	StatusStore   LeadStatusStore
}

func NewAggregateLeadsUseCase(
	users UserRepositoryInterface,
	waitlist WaitlistRepositoryInterface,
	consultations ConsultationRepositoryInterface,
	statusStore LeadStatusStore,
) *AggregateLeadsUseCase {
	return &AggregateLeadsUseCase{
		Users:         users,
		Waitlist:      waitlist,
		Consultations: consultations,
		StatusStore:   statusStore,
	}
}

// sourceRecord é o shape comum das três variantes antes da deduplicação
type sourceRecord struct {
	origin           entity.LeadOrigin
	email            string
	fullName         string
	phone            string
	portfolioType    string
	consultationType string
	intakeStatus     string
	createdAt        time.Time
}

func (uc *AggregateLeadsUseCase) Execute(ctx context.Context) ([]entity.Lead, error) {
	users, err := uc.Users.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao carregar usuários: %w", err)
	}

	signups, err := uc.Waitlist.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao carregar waitlist: %w", err)
	}

	requests, err := uc.Consultations.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao carregar consultorias: %w", err)
	}

	records := make([]sourceRecord, 0, len(users)+len(signups)+len(requests))

	for _, u := range users {
		records = append(records, sourceRecord{
			origin:    entity.OriginUser,
			email:     u.Email,
			fullName:  u.FullName,
			phone:     u.Phone,
			createdAt: u.CreatedAt,
		})
	}

	for _, s := range signups {
		records = append(records, sourceRecord{
			origin:        entity.OriginWaitlist,
			email:         s.Email,
			fullName:      s.FullName,
			phone:         s.Phone,
			portfolioType: s.PortfolioType,
			intakeStatus:  s.Status,
			createdAt:     s.CreatedAt,
		})
	}

	for _, r := range requests {
		records = append(records, sourceRecord{
			origin:           entity.OriginConsultation,
			email:            r.Email,
			fullName:         r.FullName,
			phone:            r.Phone,
			consultationType: r.ConsultationType,
			intakeStatus:     r.Status,
			createdAt:        r.CreatedAt,
		})
	}

	// A ordenação decide a precedência da deduplicação: o registro mais
	// antigo de cada email vence, independente da ordem de chegada.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].createdAt.Before(records[j].createdAt)
	})

	byKey := make(map[string]entity.Lead)
	order := make([]string, 0, len(records))

	for _, rec := range records {
		key := entity.ContactKeyFromEmail(rec.email)
		if key == "" {
			// Registro sem email não tem identidade: descartado em silêncio
			continue
		}
		if _, seen := byKey[key]; seen {
			// Registros posteriores da mesma chave são descartados inteiros;
			// tags de portfólio/consultoria deles NÃO são mescladas no lead
			// sobrevivente (limitação conhecida, preservada da origem)
			continue
		}

		byKey[key] = entity.Lead{
			ContactKey:       key,
			DisplayName:      rec.fullName,
			Phone:            rec.phone,
			Origin:           rec.origin,
			FirstSeenAt:      rec.createdAt,
			PortfolioType:    rec.portfolioType,
			ConsultationType: rec.consultationType,
			IntakeStatus:     rec.intakeStatus,
			Status:           entity.StatusNew,
		}
		order = append(order, key)
	}

	leads := make([]entity.Lead, 0, len(order))
	for _, key := range order {
		lead := byKey[key]

		overlay := uc.StatusStore.Get(ctx, key)
		lead.Status = overlay.Status
		lead.Notes = overlay.Notes
		lead.LastContactAt = overlay.LastContactAt

		leads = append(leads, lead)
	}

	return leads, nil
}
