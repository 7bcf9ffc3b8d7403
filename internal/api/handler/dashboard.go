package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/perfmkt/campaign-insights-api/infrastructure/repository"
	"github.com/perfmkt/campaign-insights-api/internal/domain"
	"github.com/perfmkt/campaign-insights-api/internal/usecases/funneling"
	"github.com/perfmkt/campaign-insights-api/internal/usecases/insighting"
	"github.com/perfmkt/campaign-insights-api/pkg/apiErrors"
	"github.com/perfmkt/campaign-insights-api/pkg/log"
	"github.com/perfmkt/campaign-insights-api/pkg/utils"
)

type dashboardResponse struct {
	domain.DashboardSummary
	Funnel     []domain.FunnelStage    `json:"funnel"`
	Stages     []domain.FunnelStageKey `json:"stages"`
	SnapshotID string                  `json:"snapshotId"`
}

// GetDashboard agrega o conjunto de trabalho atual para a visão de
// dashboard. A sequência de funil vem do parâmetro `stages` (lista
// separada por vírgula, na ordem escolhida pelo usuário); sem o parâmetro
// vale a sequência padrão. `start_date` e `end_date` restringem o conjunto
// antes da agregação.
func GetDashboard(service insighting.Aggregator, repo repository.CampaignRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		stages, err := parseStagesParam(r.URL.Query().Get("stages"))
		if err != nil {
			logger.WithField("stages", r.URL.Query().Get("stages")).Warn("dashboard: invalid stages parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			logger.WithError(err).Warn("dashboard: invalid start_date parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			logger.WithError(err).Warn("dashboard: invalid end_date parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		campaigns := filterByPeriod(repo.List(), startDate, endDate)
		snapshotID, _ := repo.Snapshot()

		summary := service.Aggregate(campaigns)

		response := dashboardResponse{
			DashboardSummary: summary,
			Funnel:           funneling.BuildFunnel(stages, summary.FunnelTotals),
			Stages:           stages,
			SnapshotID:       snapshotID,
		}

		logger.WithFields(log.Fields{
			"campaigns":   len(campaigns),
			"snapshot_id": snapshotID,
		}).Info("dashboard: summary computed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("dashboard: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// parseStagesParam valida a sequência de funil pedida pelo usuário:
// apenas chaves do superconjunto fixo, sem repetição.
func parseStagesParam(raw string) ([]domain.FunnelStageKey, error) {
	if strings.TrimSpace(raw) == "" {
		return funneling.DefaultSequence(), nil
	}

	seen := make(map[domain.FunnelStageKey]struct{})
	var stages []domain.FunnelStageKey

	for _, token := range strings.Split(raw, ",") {
		key := domain.FunnelStageKey(strings.TrimSpace(token))
		if !funneling.KnownStage(key) {
			return nil, fmt.Errorf("unknown funnel stage %q", key)
		}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("duplicated funnel stage %q", key)
		}
		seen[key] = struct{}{}
		stages = append(stages, key)
	}

	return stages, nil
}

// filterByPeriod restringe o conjunto ao intervalo de datas, quando
// informado. Campanhas com data fora do formato ficam de fora apenas
// quando existe filtro ativo.
func filterByPeriod(campaigns []domain.Campaign, startDate, endDate *time.Time) []domain.Campaign {
	noStart := startDate == nil || startDate.IsZero()
	noEnd := endDate == nil || endDate.IsZero()
	if noStart && noEnd {
		return campaigns
	}

	filtered := make([]domain.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		date, err := time.Parse(time.DateOnly, c.Date)
		if err != nil {
			continue
		}
		if !noStart && date.Before(*startDate) {
			continue
		}
		if !noEnd && date.After(*endDate) {
			continue
		}
		filtered = append(filtered, c)
	}

	return filtered
}
