package insighting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfmkt/campaign-insights-api/internal/domain"
)

func TestAggregate(t *testing.T) {
	service := NewService()

	t.Run("Conjunto vazio produz resumo vazio com coleções não nulas", func(t *testing.T) {
		summary := service.Aggregate([]domain.Campaign{})

		assert.Equal(t, 0.0, summary.Totals.Spend)
		assert.Equal(t, 0.0, summary.Totals.Revenue)
		assert.Equal(t, 0.0, summary.OverallROAS)
		assert.Equal(t, 0.0, summary.OverallCTR)
		assert.NotNil(t, summary.Platforms)
		assert.Empty(t, summary.Platforms)
		assert.NotNil(t, summary.Trend)
		assert.Empty(t, summary.Trend)
		assert.NotNil(t, summary.Kpis)
		assert.Empty(t, summary.Kpis)
	})

	t.Run("Totais e razões derivadas do conjunto completo", func(t *testing.T) {
		campaigns := []domain.Campaign{
			{Name: "A", Platform: domain.PlatformGoogle, Spend: 100, ROAS: 2.0, Impressions: 1000, Clicks: 50, Conversions: 10, Date: "2024-01-10"},
			{Name: "B", Platform: domain.PlatformMeta, Spend: 200, ROAS: 0, Impressions: 3000, Clicks: 150, Conversions: 20, Date: "2024-02-10"},
		}

		summary := service.Aggregate(campaigns)

		// Receita sempre por campanha: 100*2 + 200*0 = 200
		assert.Equal(t, 300.0, summary.Totals.Spend)
		assert.Equal(t, 200.0, summary.Totals.Revenue)
		assert.Equal(t, 4000, summary.Totals.Impressions)
		assert.Equal(t, 200, summary.Totals.Clicks)
		assert.Equal(t, 30, summary.Totals.Conversions)

		assert.InDelta(t, 200.0/300.0, summary.OverallROAS, 1e-9)
		assert.InDelta(t, 5.0, summary.OverallCTR, 1e-9)
	})

	t.Run("Quebra por plataforma na ordem de primeira aparição", func(t *testing.T) {
		campaigns := []domain.Campaign{
			{Platform: domain.PlatformMeta, Spend: 10, ROAS: 1, Date: "2024-01-01"},
			{Platform: domain.PlatformGoogle, Spend: 20, ROAS: 2, Date: "2024-01-02"},
			{Platform: domain.PlatformMeta, Spend: 30, ROAS: 3, Date: "2024-01-03"},
		}

		summary := service.Aggregate(campaigns)

		require.Len(t, summary.Platforms, 2)
		assert.Equal(t, "Meta Ads", summary.Platforms[0].Platform)
		assert.Equal(t, 40.0, summary.Platforms[0].Spend)
		assert.Equal(t, 100.0, summary.Platforms[0].Revenue) // 10*1 + 30*3
		assert.Equal(t, "Google Ads", summary.Platforms[1].Platform)
		assert.Equal(t, 40.0, summary.Platforms[1].Revenue)
	})

	t.Run("Série mensal ordenada Jan a Dez independente da ordem dos dados", func(t *testing.T) {
		campaigns := []domain.Campaign{
			{Spend: 100, ROAS: 3.0, Date: "2024-08-15"},
			{Spend: 100, ROAS: 1.0, Date: "2024-03-10"},
			{Spend: 100, ROAS: 2.0, Date: "2024-03-20"},
		}

		summary := service.Aggregate(campaigns)

		require.Len(t, summary.Trend, 2)
		assert.Equal(t, "Mar", summary.Trend[0].Month)
		assert.InDelta(t, 1.5, summary.Trend[0].ROAS, 1e-9) // (100+200)/200
		assert.Equal(t, "Aug", summary.Trend[1].Month)
		assert.InDelta(t, 3.0, summary.Trend[1].ROAS, 1e-9)
	})

	t.Run("Data inválida fica fora apenas da série mensal", func(t *testing.T) {
		campaigns := []domain.Campaign{
			{Spend: 100, ROAS: 2.0, Date: "not-a-date"},
			{Spend: 50, ROAS: 1.0, Date: "2024-05-01"},
		}

		summary := service.Aggregate(campaigns)

		// Totais incluem as duas campanhas
		assert.Equal(t, 150.0, summary.Totals.Spend)
		assert.Equal(t, 250.0, summary.Totals.Revenue)

		// A tendência só tem o mês da campanha com data válida
		require.Len(t, summary.Trend, 1)
		assert.Equal(t, "May", summary.Trend[0].Month)
	})

	t.Run("Totais de funil acumulam todas as etapas", func(t *testing.T) {
		campaigns := []domain.Campaign{
			{Impressions: 1000, Clicks: 100, Conversions: 10, Signups: 50, SQLs: 20, Customers: 5, Onboarded: 4, Date: "2024-01-01"},
			{Impressions: 2000, Clicks: 200, Conversions: 20, Signups: 100, SQLs: 40, Customers: 10, Onboarded: 8, Date: "2024-01-02"},
		}

		summary := service.Aggregate(campaigns)

		assert.Equal(t, 3000, summary.FunnelTotals[domain.StageImpressions])
		assert.Equal(t, 300, summary.FunnelTotals[domain.StageClicks])
		assert.Equal(t, 30, summary.FunnelTotals[domain.StageConversions])
		assert.Equal(t, 150, summary.FunnelTotals[domain.StageSignups])
		assert.Equal(t, 60, summary.FunnelTotals[domain.StageSQLs])
		assert.Equal(t, 15, summary.FunnelTotals[domain.StageCustomers])
		assert.Equal(t, 12, summary.FunnelTotals[domain.StageOnboarded])
	})

	t.Run("Resultado independe da ordem das campanhas", func(t *testing.T) {
		campaigns := []domain.Campaign{
			{Platform: domain.PlatformGoogle, Spend: 100, ROAS: 2.0, Impressions: 1000, Clicks: 50, Date: "2024-01-10"},
			{Platform: domain.PlatformMeta, Spend: 200, ROAS: 1.5, Impressions: 2000, Clicks: 80, Date: "2024-02-10"},
			{Platform: domain.PlatformGoogle, Spend: 50, ROAS: 4.0, Impressions: 500, Clicks: 25, Date: "2024-03-10"},
		}
		reversed := []domain.Campaign{campaigns[2], campaigns[1], campaigns[0]}

		a := service.Aggregate(campaigns)
		b := service.Aggregate(reversed)

		assert.Equal(t, a.Totals, b.Totals)
		assert.Equal(t, a.OverallROAS, b.OverallROAS)
		assert.Equal(t, a.Trend, b.Trend)
		assert.Equal(t, a.FunnelTotals, b.FunnelTotals)
		// Apenas a ordem da quebra por plataforma muda
		assert.ElementsMatch(t, a.Platforms, b.Platforms)
	})
}

func TestBuildKpis(t *testing.T) {
	service := NewService()

	campaigns := []domain.Campaign{
		{Spend: 12500, ROAS: 2.0, Impressions: 1500000, Clicks: 75000, Conversions: 2500, Date: "2024-01-01"},
	}

	summary := service.Aggregate(campaigns)

	require.Len(t, summary.Kpis, 6)
	assert.Equal(t, "ROAS", summary.Kpis[0].Title)
	assert.Equal(t, "2.0x", summary.Kpis[0].Value)
	assert.Equal(t, "Spend", summary.Kpis[1].Title)
	assert.Equal(t, "$12.5K", summary.Kpis[1].Value)
	assert.Equal(t, "Impressions", summary.Kpis[2].Title)
	assert.Equal(t, "1.5M", summary.Kpis[2].Value)
	assert.Equal(t, "Clicks", summary.Kpis[3].Title)
	assert.Equal(t, "75K", summary.Kpis[3].Value)
	assert.Equal(t, "CTR", summary.Kpis[5].Title)
	assert.Equal(t, "5.00%", summary.Kpis[5].Value)
}

func TestCompactNumber(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{"Valor pequeno sem sufixo", 950, "950"},
		{"Milhar com casa decimal", 1340, "1.3K"},
		{"Milhar redondo sem casa decimal", 75000, "75K"},
		{"Milhão", 1500000, "1.5M"},
		{"Bilhão", 2000000000, "2B"},
		{"Zero", 0, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, compactNumber(tt.value))
		})
	}
}
