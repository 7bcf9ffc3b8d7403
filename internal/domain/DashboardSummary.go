package domain

// CampaignTotals acumula os totais brutos do conjunto de campanhas.
// Revenue é sempre Σ(spend_i * roas_i), nunca Σspend * Σroas.
type CampaignTotals struct {
	Spend       float64 `json:"spend"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Conversions int     `json:"conversions"`
	Revenue     float64 `json:"revenue"`
}

// PlatformBreakdown é o par gasto/receita acumulado por plataforma.
type PlatformBreakdown struct {
	Platform string  `json:"platform"`
	Spend    float64 `json:"spend"`
	Revenue  float64 `json:"revenue"`
}

// TrendPoint é um ponto da série mensal de ROAS, ordenada Jan→Dez.
type TrendPoint struct {
	Month string  `json:"month"`
	ROAS  float64 `json:"roas"`
}

// Kpi é um cartão de indicador pronto para exibição.
type Kpi struct {
	Title      string `json:"title"`
	Value      string `json:"value"`
	Change     string `json:"change"`
	ChangeType string `json:"changeType"`
}

// DashboardSummary é o resultado completo da agregação do conjunto de
// campanhas para a visão de dashboard.
type DashboardSummary struct {
	Totals       CampaignTotals      `json:"totals"`
	OverallROAS  float64             `json:"overallRoas"`
	OverallCTR   float64             `json:"overallCtr"`
	Platforms    []PlatformBreakdown `json:"platforms"`
	Trend        []TrendPoint        `json:"trend"`
	FunnelTotals FunnelTotals        `json:"funnelTotals"`
	Kpis         []Kpi               `json:"kpis"`
}
