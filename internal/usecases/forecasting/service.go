package forecasting

import (
	"github.com/perfmkt/campaign-insights-api/internal/domain"
	"github.com/perfmkt/campaign-insights-api/pkg/utils"
)

// Forecaster aplica um cenário de multiplicador de gasto sobre o conjunto
// de campanhas. Função total: nenhuma entrada numérica válida produz erro.
type Forecaster interface {
	Forecast(campaigns []domain.Campaign, params domain.ForecastParams) domain.ForecastReport
}

type Service struct{}

// NewService cria o serviço de projeção de cenários de investimento.
func NewService() Forecaster {
	return &Service{}
}

// Forecast escala o gasto de cada campanha por 1 + percentual/100 e deriva
// os indicadores do conjunto projetado. Campanhas com roas <= 0 têm as
// métricas de volume zeradas: o modelo trata campanha não rentável como
// contribuição zero de volume projetado. roas, cpc e ctr são mantidos
// constantes (limitação documentada do modelo linear).
func (s *Service) Forecast(campaigns []domain.Campaign, params domain.ForecastParams) domain.ForecastReport {
	scaled := scale(campaigns, params.SpendIncreasePercent)
	totals := reduce(scaled)

	baseline := reduce(scale(campaigns, 0))

	report := domain.ForecastReport{
		Params:    params,
		Campaigns: scaled,
		Totals:    totals,
		Kpis:      deriveKpis(totals, params),
		Baseline:  baseline,
		Comparison: []domain.ComparisonPoint{
			{Name: "Revenue", Current: baseline.Revenue, Forecast: totals.Revenue},
			{Name: "Customers", Current: baseline.Customers, Forecast: totals.Customers},
			{Name: "Pipeline", Current: baseline.SQLs * params.AvgDealSize, Forecast: totals.SQLs * params.AvgDealSize},
		},
	}

	return report
}

func scale(campaigns []domain.Campaign, spendIncreasePercent float64) []domain.ScaledCampaign {
	multiplier := 1 + spendIncreasePercent/100

	scaled := make([]domain.ScaledCampaign, 0, len(campaigns))
	for _, c := range campaigns {
		// Campanha não rentável não ganha volume projetado
		efficiencyFactor := 0.0
		if c.ROAS > 0 {
			efficiencyFactor = 1.0
		}
		volumeFactor := multiplier * efficiencyFactor

		scaled = append(scaled, domain.ScaledCampaign{
			ID:               c.ID,
			Name:             c.Name,
			Platform:         c.Platform,
			Status:           c.Status,
			Spend:            c.Spend * multiplier,
			Impressions:      float64(c.Impressions) * volumeFactor,
			Clicks:           float64(c.Clicks) * volumeFactor,
			Conversions:      float64(c.Conversions) * volumeFactor,
			ROAS:             c.ROAS,
			CPC:              c.CPC,
			CTR:              c.CTR,
			Signups:          float64(c.Signups) * volumeFactor,
			SQLs:             float64(c.SQLs) * volumeFactor,
			Customers:        float64(c.Customers) * volumeFactor,
			Onboarded:        c.Onboarded,
			ChurnedCustomers: c.ChurnedCustomers,
			Date:             c.Date,
		})
	}

	return scaled
}

func reduce(scaled []domain.ScaledCampaign) domain.ForecastTotals {
	var totals domain.ForecastTotals
	for _, c := range scaled {
		totals.Spend += c.Spend
		totals.Impressions += c.Impressions
		totals.Clicks += c.Clicks
		totals.Conversions += c.Conversions
		totals.Revenue += c.Spend * c.ROAS
		totals.SQLs += c.SQLs
		totals.Customers += c.Customers
		totals.ChurnedCustomers += float64(c.ChurnedCustomers)
	}
	return totals
}

func deriveKpis(totals domain.ForecastTotals, params domain.ForecastParams) domain.ForecastKpis {
	return domain.ForecastKpis{
		ROAS:          utils.SafeDivide(totals.Revenue, totals.Spend),
		CPC:           utils.SafeDivide(totals.Spend, totals.Clicks),
		CTR:           utils.SafeDivide(totals.Clicks, totals.Impressions) * 100,
		CAC:           utils.SafeDivide(totals.Spend, totals.Customers),
		CPM:           utils.SafeDivide(totals.Spend, totals.Impressions) * 1000,
		CostPerSQL:    utils.SafeDivide(totals.Spend, totals.SQLs),
		PipelineValue: totals.SQLs * params.AvgDealSize,
		ARR:           totals.Customers * params.AvgAnnualValue,
		ChurnRate:     utils.SafeDivide(totals.ChurnedCustomers, totals.Customers) * 100,
	}
}
