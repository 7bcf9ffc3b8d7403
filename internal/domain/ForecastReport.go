package domain

// ForecastParams são os parâmetros do cenário "e se" de investimento.
type ForecastParams struct {
	SpendIncreasePercent float64 `json:"spendIncreasePercent"`
	AvgDealSize          float64 `json:"avgDealSize"`
	AvgAnnualValue       float64 `json:"avgAnnualValue"`
}

// ScaledCampaign é a projeção de uma campanha sob o multiplicador de gasto.
// As métricas de volume viram float64 porque o escalonamento é linear;
// roas, cpc e ctr são mantidos constantes no modelo.
type ScaledCampaign struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	Platform    Platform       `json:"platform"`
	Status      CampaignStatus `json:"status"`
	Spend       float64        `json:"spend"`
	Impressions float64        `json:"impressions"`
	Clicks      float64        `json:"clicks"`
	Conversions float64        `json:"conversions"`
	ROAS        float64        `json:"roas"`
	CPC         float64        `json:"cpc"`
	CTR         float64        `json:"ctr"`
	Signups     float64        `json:"signups"`
	SQLs        float64        `json:"sqls"`
	Customers   float64        `json:"customers"`

	// Não escalonados pelo modelo
	Onboarded        int    `json:"onboarded"`
	ChurnedCustomers int    `json:"churnedCustomers"`
	Date             string `json:"date"`
}

// ForecastTotals acumula o conjunto projetado com as mesmas fórmulas da
// agregação do dashboard.
type ForecastTotals struct {
	Spend            float64 `json:"spend"`
	Impressions      float64 `json:"impressions"`
	Clicks           float64 `json:"clicks"`
	Conversions      float64 `json:"conversions"`
	Revenue          float64 `json:"revenue"`
	SQLs             float64 `json:"sqls"`
	Customers        float64 `json:"customers"`
	ChurnedCustomers float64 `json:"churnedCustomers"`
}

// ForecastKpis são os indicadores derivados do cenário projetado.
// Todas as divisões são protegidas: denominador zero produz zero.
type ForecastKpis struct {
	ROAS          float64 `json:"roas"`
	CPC           float64 `json:"cpc"`
	CTR           float64 `json:"ctr"`
	CAC           float64 `json:"cac"`
	CPM           float64 `json:"cpm"`
	CostPerSQL    float64 `json:"costPerSql"`
	PipelineValue float64 `json:"pipelineValue"`
	ARR           float64 `json:"arr"`
	ChurnRate     float64 `json:"churnRate"`
}

// ComparisonPoint compara o valor atual com o projetado para uma dimensão.
type ComparisonPoint struct {
	Name     string  `json:"name"`
	Current  float64 `json:"current"`
	Forecast float64 `json:"forecast"`
}

// ForecastReport é o resultado completo do cenário de investimento,
// incluindo a linha de base (multiplicador 0%) para comparação.
type ForecastReport struct {
	Params     ForecastParams    `json:"params"`
	Campaigns  []ScaledCampaign  `json:"campaigns"`
	Totals     ForecastTotals    `json:"totals"`
	Kpis       ForecastKpis      `json:"kpis"`
	Baseline   ForecastTotals    `json:"baseline"`
	Comparison []ComparisonPoint `json:"comparison"`
}
