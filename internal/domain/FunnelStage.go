package domain

// FunnelStageKey identifica um campo de métrica tratado como etapa de funil.
type FunnelStageKey string

const (
	StageImpressions FunnelStageKey = "impressions"
	StageClicks      FunnelStageKey = "clicks"
	StageSignups     FunnelStageKey = "signups"
	StageConversions FunnelStageKey = "conversions"
	StageSQLs        FunnelStageKey = "sqls"
	StageCustomers   FunnelStageKey = "customers"
	StageOnboarded   FunnelStageKey = "onboarded"
)

// FunnelStage é uma etapa projetada do funil, na ordem escolhida pelo usuário.
type FunnelStage struct {
	Key   FunnelStageKey `json:"key"`
	Label string         `json:"label"`
	Value int            `json:"value"`
}

// FunnelTotals acumula as métricas de funil somadas sobre todas as campanhas.
type FunnelTotals map[FunnelStageKey]int
