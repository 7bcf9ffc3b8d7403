package handler

import (
	"net/http"

	"github.com/perfmkt/campaign-insights-api/infrastructure/repository"
	"github.com/perfmkt/campaign-insights-api/internal/config"
	"github.com/perfmkt/campaign-insights-api/internal/domain"
	"github.com/perfmkt/campaign-insights-api/internal/usecases/forecasting"
	"github.com/perfmkt/campaign-insights-api/pkg/apiErrors"
	"github.com/perfmkt/campaign-insights-api/pkg/log"
)

// forecastRequest aceita parâmetros opcionais: campo ausente cai no
// default de negócio configurado.
type forecastRequest struct {
	SpendIncreasePercent *float64 `json:"spendIncreasePercent"`
	AvgDealSize          *float64 `json:"avgDealSize"`
	AvgAnnualValue       *float64 `json:"avgAnnualValue"`
}

// PostForecast projeta o cenário de investimento sobre o conjunto de
// trabalho atual. O corpo informa o percentual de aumento de gasto e os
// parâmetros de negócio; omissões assumem os defaults da configuração.
func PostForecast(service forecasting.Forecaster, repo repository.CampaignRepository, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request forecastRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.WithError(err).Warn("forecast: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		params := domain.ForecastParams{
			SpendIncreasePercent: 0,
			AvgDealSize:          cfg.Forecast.AvgDealSize,
			AvgAnnualValue:       cfg.Forecast.AvgAnnualValue,
		}
		if request.SpendIncreasePercent != nil {
			params.SpendIncreasePercent = *request.SpendIncreasePercent
		}
		if request.AvgDealSize != nil {
			params.AvgDealSize = *request.AvgDealSize
		}
		if request.AvgAnnualValue != nil {
			params.AvgAnnualValue = *request.AvgAnnualValue
		}

		report := service.Forecast(repo.List(), params)

		logger.WithFields(log.Fields{
			"spend_increase_percent": params.SpendIncreasePercent,
			"campaigns":              len(report.Campaigns),
		}).Info("forecast: scenario computed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("forecast: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
