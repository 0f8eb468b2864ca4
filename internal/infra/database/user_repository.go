package database

import (
	"context"
	"database/sql"

	"github.com/quantbroker/leads-api/internal/entity"
)

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindAll(ctx context.Context) ([]entity.RegisteredUser, error) {
	query := `
		SELECT id, email, COALESCE(full_name, ''), COALESCE(phone, ''), created_at
		FROM users
		ORDER BY created_at
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []entity.RegisteredUser
	for rows.Next() {
		var u entity.RegisteredUser
		if err := rows.Scan(&u.ID, &u.Email, &u.FullName, &u.Phone, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}
