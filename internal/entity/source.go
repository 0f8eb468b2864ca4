package entity

import "time"

// Registros crus das três fontes de captação, antes da deduplicação.
// Shapes espelham as tabelas do banco (ver §6 das interfaces externas).

type RegisteredUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

type WaitlistSignup struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	FullName      string    `json:"full_name"`
	Phone         string    `json:"phone"`
	PortfolioType string    `json:"portfolio_type"`
	Status        string    `json:"status"` // texto livre setado pelo form de origem
	CreatedAt     time.Time `json:"created_at"`
}

type ConsultationRequest struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	FullName         string    `json:"full_name"`
	Phone            string    `json:"phone"`
	ConsultationType string    `json:"consultation_type"`
	Status           string    `json:"status"`
	PreferredSlot    string    `json:"preferred_slot,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}
