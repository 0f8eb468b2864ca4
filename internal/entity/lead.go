package entity

import (
	"strings"
	"time"
)

// Origem do registro que sobreviveu à deduplicação
type LeadOrigin string

const (
	OriginUser         LeadOrigin = "user"
	OriginWaitlist     LeadOrigin = "waitlist"
	OriginConsultation LeadOrigin = "consultation"
)

// Estágio do funil, controlado pelo operador (nunca inferido dos registros de origem)
type LeadStatus string

const (
	StatusNew       LeadStatus = "new"
	StatusContacted LeadStatus = "contacted"
	StatusQualified LeadStatus = "qualified"
	StatusConverted LeadStatus = "converted"
	StatusLost      LeadStatus = "lost"
	StatusNoContact LeadStatus = "no_contact"
)

func IsValidLeadStatus(s LeadStatus) bool {
	switch s {
	case StatusNew, StatusContacted, StatusQualified, StatusConverted, StatusLost, StatusNoContact:
		return true
	}
	return false
}

// Lead é a visão deduplicada de um prospecto, materializada a cada agregação.
// ContactKey (email em minúsculas) é a identidade: nunca há dois leads com a
// mesma chave no resultado de uma agregação.
type Lead struct {
	ContactKey  string     `json:"contact_key"`
	DisplayName string     `json:"display_name,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	Origin      LeadOrigin `json:"origin"`
	FirstSeenAt time.Time  `json:"first_seen_at"`

	// Preenchidos apenas pela variante de origem que os forneceu
	PortfolioType    string `json:"portfolio_type,omitempty"`
	ConsultationType string `json:"consultation_type,omitempty"`
	IntakeStatus     string `json:"intake_status,omitempty"`

	// Overlay vindo do lifecycle store
	Status        LeadStatus `json:"status"`
	Notes         string     `json:"notes,omitempty"`
	LastContactAt *time.Time `json:"last_contact_at,omitempty"`
}

// ContactKeyFromEmail normaliza o email para servir de chave de deduplicação
func ContactKeyFromEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// LeadStatusRecord é o registro persistido por contactKey no lifecycle store.
// Sobrevive entre agregações; criado na primeira edição do operador.
type LeadStatusRecord struct {
	Status        LeadStatus `json:"status"`
	Notes         string     `json:"notes"`
	LastContactAt *time.Time `json:"last_contact_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

// DefaultLeadStatusRecord é o que getStatus devolve quando não há registro
// (ou quando o payload armazenado não decodifica)
func DefaultLeadStatusRecord() LeadStatusRecord {
	return LeadStatusRecord{
		Status:        StatusNew,
		Notes:         "",
		LastContactAt: nil,
	}
}
