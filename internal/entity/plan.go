package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrPlanNotFound = errors.New("plano não encontrado")

// Tiers oferecidos no funil (starter, trader, pro)
type Plan struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	PriceCents  int       `json:"price_cents"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewPlan(name, slug string, priceCents int) *Plan {
	return &Plan{
		ID:         uuid.New().String(),
		Name:       name,
		Slug:       slug,
		PriceCents: priceCents,
		CreatedAt:  time.Now(),
	}
}
