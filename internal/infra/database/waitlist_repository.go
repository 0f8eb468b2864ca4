package database

import (
	"context"
	"database/sql"

	"github.com/quantbroker/leads-api/internal/entity"
)

type WaitlistRepository struct {
	DB *sql.DB
}

func NewWaitlistRepository(db *sql.DB) *WaitlistRepository {
	return &WaitlistRepository{DB: db}
}

func (r *WaitlistRepository) FindAll(ctx context.Context) ([]entity.WaitlistSignup, error) {
	query := `
		SELECT id, email, COALESCE(full_name, ''), COALESCE(phone, ''),
		       COALESCE(portfolio_type, ''), COALESCE(status, ''), created_at
		FROM waitlist_signups
		ORDER BY created_at
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var signups []entity.WaitlistSignup
	for rows.Next() {
		var s entity.WaitlistSignup
		if err := rows.Scan(&s.ID, &s.Email, &s.FullName, &s.Phone, &s.PortfolioType, &s.Status, &s.CreatedAt); err != nil {
			return nil, err
		}
		signups = append(signups, s)
	}

	return signups, rows.Err()
}

// Upsert por email: o mesmo prospecto se inscrevendo de novo atualiza a linha
// existente (o created_at original é preservado — ele decide a precedência na
// deduplicação de leads)
func (r *WaitlistRepository) Upsert(ctx context.Context, signup *entity.WaitlistSignup) error {
	query := `
		INSERT INTO waitlist_signups (id, email, full_name, phone, portfolio_type, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (email)
		DO UPDATE SET
			full_name = COALESCE(EXCLUDED.full_name, waitlist_signups.full_name),
			phone = COALESCE(EXCLUDED.phone, waitlist_signups.phone),
			portfolio_type = COALESCE(EXCLUDED.portfolio_type, waitlist_signups.portfolio_type),
			updated_at = NOW()
		RETURNING id, created_at
	`

	return r.DB.QueryRowContext(
		ctx,
		query,
		signup.ID,
		signup.Email,
		nullString(signup.FullName),
		nullString(signup.Phone),
		nullString(signup.PortfolioType),
		signup.Status,
		signup.CreatedAt,
	).Scan(&signup.ID, &signup.CreatedAt)
}
