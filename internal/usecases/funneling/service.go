package funneling

import "github.com/perfmkt/campaign-insights-api/internal/domain"

// Direction indica o sentido de movimentação de uma etapa na sequência.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// Superconjunto fixo de etapas disponíveis, com os rótulos de exibição.
var allStages = []struct {
	Key   domain.FunnelStageKey
	Label string
}{
	{domain.StageImpressions, "Impressions"},
	{domain.StageClicks, "Clicks"},
	{domain.StageSignups, "Sign-ups"},
	{domain.StageConversions, "Conversions"},
	{domain.StageSQLs, "SQLs"},
	{domain.StageCustomers, "Customers"},
	{domain.StageOnboarded, "Onboarded"},
}

var stageLabels = func() map[domain.FunnelStageKey]string {
	labels := make(map[domain.FunnelStageKey]string, len(allStages))
	for _, s := range allStages {
		labels[s.Key] = s.Label
	}
	return labels
}()

// DefaultSequence é a sequência inicial de funil do dashboard.
func DefaultSequence() []domain.FunnelStageKey {
	return []domain.FunnelStageKey{
		domain.StageImpressions,
		domain.StageClicks,
		domain.StageConversions,
		domain.StageCustomers,
	}
}

// KnownStage informa se a chave pertence ao superconjunto de etapas.
func KnownStage(key domain.FunnelStageKey) bool {
	_, ok := stageLabels[key]
	return ok
}

// AddStage devolve a sequência com a etapa anexada ao final. O chamador é
// responsável por não repetir chaves já presentes.
func AddStage(seq []domain.FunnelStageKey, key domain.FunnelStageKey) []domain.FunnelStageKey {
	out := make([]domain.FunnelStageKey, 0, len(seq)+1)
	out = append(out, seq...)
	return append(out, key)
}

// RemoveStage devolve a sequência sem a primeira ocorrência da etapa.
func RemoveStage(seq []domain.FunnelStageKey, key domain.FunnelStageKey) []domain.FunnelStageKey {
	out := make([]domain.FunnelStageKey, 0, len(seq))
	removed := false
	for _, s := range seq {
		if !removed && s == key {
			removed = true
			continue
		}
		out = append(out, s)
	}
	return out
}

// MoveStage troca a etapa na posição index com a vizinha na direção dada.
// Movimentos além da borda são no-ops, não erros.
func MoveStage(seq []domain.FunnelStageKey, index int, direction Direction) []domain.FunnelStageKey {
	out := make([]domain.FunnelStageKey, len(seq))
	copy(out, seq)

	if index < 0 || index >= len(out) {
		return out
	}

	switch direction {
	case DirectionUp:
		if index > 0 {
			out[index-1], out[index] = out[index], out[index-1]
		}
	case DirectionDown:
		if index < len(out)-1 {
			out[index], out[index+1] = out[index+1], out[index]
		}
	}

	return out
}

// BuildFunnel projeta a sequência escolhida sobre os totais agregados,
// preservando a ordem do chamador. A monotonicidade do funil é semântica
// esperada, não validada.
func BuildFunnel(seq []domain.FunnelStageKey, totals domain.FunnelTotals) []domain.FunnelStage {
	stages := make([]domain.FunnelStage, 0, len(seq))
	for _, key := range seq {
		label, ok := stageLabels[key]
		if !ok {
			label = "Unknown"
		}
		stages = append(stages, domain.FunnelStage{
			Key:   key,
			Label: label,
			Value: totals[key],
		})
	}
	return stages
}
