package insighting

import "github.com/perfmkt/campaign-insights-api/internal/domain"

// Aggregator reduz um conjunto de campanhas para o resumo do dashboard.
// Função total: conjunto vazio produz resumo zerado, nunca erro.
type Aggregator interface {
	Aggregate(campaigns []domain.Campaign) domain.DashboardSummary
}
