package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/quantbroker/leads-api/internal/entity"
)

type ConsultationRepository struct {
	DB *sql.DB
}

func NewConsultationRepository(db *sql.DB) *ConsultationRepository {
	return &ConsultationRepository{DB: db}
}

func (r *ConsultationRepository) FindAll(ctx context.Context) ([]entity.ConsultationRequest, error) {
	query := `
		SELECT id, email, COALESCE(full_name, ''), COALESCE(phone, ''),
		       COALESCE(consultation_type, ''), COALESCE(status, ''),
		       COALESCE(preferred_slot, ''), created_at
		FROM consultation_requests
		ORDER BY created_at
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []entity.ConsultationRequest
	for rows.Next() {
		var c entity.ConsultationRequest
		err := rows.Scan(&c.ID, &c.Email, &c.FullName, &c.Phone, &c.ConsultationType, &c.Status, &c.PreferredSlot, &c.CreatedAt)
		if err != nil {
			return nil, err
		}
		requests = append(requests, c)
	}

	return requests, rows.Err()
}

func (r *ConsultationRepository) Create(ctx context.Context, request *entity.ConsultationRequest) error {
	query := `
		INSERT INTO consultation_requests (id, email, full_name, phone, consultation_type, preferred_slot, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
	`

	_, err := r.DB.ExecContext(ctx, query,
		request.ID,
		request.Email,
		nullString(request.FullName),
		nullString(request.Phone),
		request.ConsultationType,
		nullString(request.PreferredSlot),
		request.Status,
		request.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("falha ao criar pedido de consultoria: %w", err)
	}

	return nil
}
