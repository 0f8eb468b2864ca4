package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/quantbroker/leads-api/internal/entity"
)

type PlanRepository struct {
	DB *sql.DB
}

func NewPlanRepository(db *sql.DB) *PlanRepository {
	return &PlanRepository{DB: db}
}

func (r *PlanRepository) FindAll(ctx context.Context) ([]entity.Plan, error) {
	query := `
		SELECT id, name, slug, price_cents, COALESCE(description, ''), created_at
		FROM plans
		ORDER BY price_cents
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []entity.Plan
	for rows.Next() {
		var p entity.Plan
		if err := rows.Scan(&p.ID, &p.Name, &p.Slug, &p.PriceCents, &p.Description, &p.CreatedAt); err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}

	return plans, rows.Err()
}

func (r *PlanRepository) FindBySlug(ctx context.Context, slug string) (*entity.Plan, error) {
	query := `
		SELECT id, name, slug, price_cents, COALESCE(description, ''), created_at
		FROM plans
		WHERE slug = $1
	`

	var p entity.Plan
	err := r.DB.QueryRowContext(ctx, query, slug).Scan(&p.ID, &p.Name, &p.Slug, &p.PriceCents, &p.Description, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrPlanNotFound
		}
		return nil, err
	}

	return &p, nil
}
