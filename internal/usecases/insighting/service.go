package insighting

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/perfmkt/campaign-insights-api/internal/domain"
	"github.com/perfmkt/campaign-insights-api/pkg/utils"
)

// Ordem canônica dos meses para a série de tendência
var monthOrder = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

type monthlyAccumulator struct {
	spend   float64
	revenue float64
}

type Service struct{}

// NewService cria o serviço de agregação do dashboard.
func NewService() Aggregator {
	return &Service{}
}

// Aggregate calcula totais, razões derivadas, quebra por plataforma, série
// mensal de ROAS e totais de funil do conjunto de campanhas. A receita é
// sempre derivada por campanha (spend * roas) antes de somar.
func (s *Service) Aggregate(campaigns []domain.Campaign) domain.DashboardSummary {
	summary := domain.DashboardSummary{
		Platforms:    make([]domain.PlatformBreakdown, 0),
		Trend:        make([]domain.TrendPoint, 0),
		FunnelTotals: make(domain.FunnelTotals),
		Kpis:         make([]domain.Kpi, 0),
	}

	byPlatform := make(map[string]*domain.PlatformBreakdown)
	platformOrder := make([]string, 0)
	byMonth := make(map[string]*monthlyAccumulator)

	for _, c := range campaigns {
		revenue := c.Revenue()

		summary.Totals.Spend += c.Spend
		summary.Totals.Impressions += c.Impressions
		summary.Totals.Clicks += c.Clicks
		summary.Totals.Conversions += c.Conversions
		summary.Totals.Revenue += revenue

		key := c.Platform.String()
		group, ok := byPlatform[key]
		if !ok {
			group = &domain.PlatformBreakdown{Platform: key}
			byPlatform[key] = group
			platformOrder = append(platformOrder, key)
		}
		group.Spend += c.Spend
		group.Revenue += revenue

		summary.FunnelTotals[domain.StageImpressions] += c.Impressions
		summary.FunnelTotals[domain.StageClicks] += c.Clicks
		summary.FunnelTotals[domain.StageConversions] += c.Conversions
		summary.FunnelTotals[domain.StageSignups] += c.Signups
		summary.FunnelTotals[domain.StageSQLs] += c.SQLs
		summary.FunnelTotals[domain.StageCustomers] += c.Customers
		summary.FunnelTotals[domain.StageOnboarded] += c.Onboarded

		date, err := time.Parse(time.DateOnly, c.Date)
		if err != nil {
			// Não fatal: a campanha fica fora apenas da série mensal
			logrus.WithFields(logrus.Fields{
				"campaign": c.Name,
				"date":     c.Date,
			}).Warn("insights: invalid date, skipping campaign in monthly trend")
			continue
		}

		month := date.Format("Jan")
		acc, ok := byMonth[month]
		if !ok {
			acc = &monthlyAccumulator{}
			byMonth[month] = acc
		}
		acc.spend += c.Spend
		acc.revenue += revenue
	}

	summary.OverallROAS = utils.SafeDivide(summary.Totals.Revenue, summary.Totals.Spend)
	summary.OverallCTR = utils.SafeDivide(float64(summary.Totals.Clicks), float64(summary.Totals.Impressions)) * 100

	// Quebra por plataforma na ordem de primeira aparição
	for _, key := range platformOrder {
		summary.Platforms = append(summary.Platforms, *byPlatform[key])
	}

	// Série mensal sempre Jan→Dez, apenas meses presentes nos dados
	for _, month := range monthOrder {
		acc, ok := byMonth[month]
		if !ok {
			continue
		}
		summary.Trend = append(summary.Trend, domain.TrendPoint{
			Month: month,
			ROAS:  utils.SafeDivide(acc.revenue, acc.spend),
		})
	}

	summary.Kpis = buildKpis(summary, len(campaigns))

	return summary
}

// buildKpis monta os cartões de indicadores gerais do dashboard.
func buildKpis(summary domain.DashboardSummary, count int) []domain.Kpi {
	if count == 0 {
		return []domain.Kpi{}
	}

	return []domain.Kpi{
		{Title: "ROAS", Value: fmt.Sprintf("%.1fx", summary.OverallROAS), Change: "-", ChangeType: "neutral"},
		{Title: "Spend", Value: compactCurrency(summary.Totals.Spend), Change: "-", ChangeType: "neutral"},
		{Title: "Impressions", Value: compactNumber(float64(summary.Totals.Impressions)), Change: "-", ChangeType: "neutral"},
		{Title: "Clicks", Value: compactNumber(float64(summary.Totals.Clicks)), Change: "-", ChangeType: "neutral"},
		{Title: "Conversions", Value: compactNumber(float64(summary.Totals.Conversions)), Change: "-", ChangeType: "neutral"},
		{Title: "CTR", Value: fmt.Sprintf("%.2f%%", summary.OverallCTR), Change: "-", ChangeType: "neutral"},
	}
}

// compactNumber formata com sufixo K/M/B e no máximo uma casa decimal
func compactNumber(v float64) string {
	abs := v
	if abs < 0 {
		abs = -abs
	}

	switch {
	case abs >= 1e9:
		return trimZero(fmt.Sprintf("%.1f", v/1e9)) + "B"
	case abs >= 1e6:
		return trimZero(fmt.Sprintf("%.1f", v/1e6)) + "M"
	case abs >= 1e3:
		return trimZero(fmt.Sprintf("%.1f", v/1e3)) + "K"
	default:
		return trimZero(fmt.Sprintf("%.1f", v))
	}
}

func compactCurrency(v float64) string {
	if v < 0 {
		return "-$" + compactNumber(-v)
	}
	return "$" + compactNumber(v)
}

func trimZero(s string) string {
	if len(s) > 2 && s[len(s)-2:] == ".0" {
		return s[:len(s)-2]
	}
	return s
}
