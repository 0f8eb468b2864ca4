package usecase

import (
	"strings"

	"github.com/quantbroker/leads-api/internal/entity"
)

// LeadFilter compõe três predicados com AND lógico. Source/Status vazios ou
// "all" passam tudo. A ordem de aplicação não altera o resultado.
type LeadFilter struct {
	Source string
	Status string
	Search string
}

func FilterLeads(leads []entity.Lead, filter LeadFilter) []entity.Lead {
	out := make([]entity.Lead, 0, len(leads))
	for _, lead := range leads {
		if !matchesSource(lead, filter.Source) {
			continue
		}
		if !matchesStatus(lead, filter.Status) {
			continue
		}
		if !matchesSearch(lead, filter.Search) {
			continue
		}
		out = append(out, lead)
	}
	return out
}

func matchesSource(lead entity.Lead, source string) bool {
	if source == "" || source == "all" {
		return true
	}
	return string(lead.Origin) == source
}

func matchesStatus(lead entity.Lead, status string) bool {
	if status == "" || status == "all" {
		return true
	}
	return string(lead.Status) == status
}

// Busca por substring, case-insensitive, em nome OU email OU telefone.
// O telefone é comparado cru (com formatação), sem normalizar dígitos.
func matchesSearch(lead entity.Lead, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)

	return strings.Contains(strings.ToLower(lead.DisplayName), term) ||
		strings.Contains(lead.ContactKey, term) ||
		strings.Contains(strings.ToLower(lead.Phone), term)
}
