package usecase

// Questionário de recomendação de portfólio. Pontuação simples por resposta;
// o total mapeia para um dos três tiers do catálogo. Função pura, sem
// persistência: a resposta só orienta o prospecto no funil.

type QuestionnaireInput struct {
	Experience    string `json:"experience"`     // none | beginner | intermediate | advanced
	RiskTolerance string `json:"risk_tolerance"` // low | medium | high
	CapitalBand   string `json:"capital_band"`   // under_10k | 10k_50k | 50k_250k | over_250k
	Horizon       string `json:"horizon"`        // short | medium | long
}

type RecommendationOutput struct {
	PlanSlug  string `json:"plan_slug"`
	Score     int    `json:"score"`
	Rationale string `json:"rationale"`
}

var experienceScore = map[string]int{
	"none":         0,
	"beginner":     1,
	"intermediate": 2,
	"advanced":     3,
}

var riskScore = map[string]int{
	"low":    0,
	"medium": 2,
	"high":   3,
}

var capitalScore = map[string]int{
	"under_10k": 0,
	"10k_50k":   1,
	"50k_250k":  2,
	"over_250k": 3,
}

var horizonScore = map[string]int{
	"short":  0,
	"medium": 1,
	"long":   2,
}

func RecommendPortfolio(input QuestionnaireInput) RecommendationOutput {
	// Resposta desconhecida pontua zero: o questionário empurra para o tier
	// mais conservador em vez de rejeitar o formulário
	score := experienceScore[input.Experience] +
		riskScore[input.RiskTolerance] +
		capitalScore[input.CapitalBand] +
		horizonScore[input.Horizon]

	switch {
	case score <= 3:
		return RecommendationOutput{
			PlanSlug:  "starter",
			Score:     score,
			Rationale: "Perfil conservador ou iniciante: sinais de baixa frequência e gestão de risco guiada.",
		}
	case score <= 7:
		return RecommendationOutput{
			PlanSlug:  "trader",
			Score:     score,
			Rationale: "Perfil intermediário: sinais diários com stops sugeridos e acompanhamento semanal.",
		}
	default:
		return RecommendationOutput{
			PlanSlug:  "pro",
			Score:     score,
			Rationale: "Perfil experiente com apetite a risco: sinais intradiários e mesa dedicada.",
		}
	}
}
