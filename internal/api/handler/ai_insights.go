package handler

import (
	"net/http"
	"strings"

	"github.com/perfmkt/campaign-insights-api/infrastructure/integrator/gemini"
	"github.com/perfmkt/campaign-insights-api/infrastructure/repository"
	"github.com/perfmkt/campaign-insights-api/pkg/apiErrors"
	"github.com/perfmkt/campaign-insights-api/pkg/log"
)

type aiInsightsRequest struct {
	Query string `json:"query"`
}

type aiInsightsResponse struct {
	Insights string `json:"insights"`
}

// PostAiInsights responde uma pergunta em linguagem natural sobre o
// conjunto de campanhas atual, delegando a análise ao modelo generativo.
func PostAiInsights(service gemini.InsightsGenerator, repo repository.CampaignRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request aiInsightsRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.WithError(err).Warn("ai insights: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		if strings.TrimSpace(request.Query) == "" {
			logger.Warn("ai insights: empty query")
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "query is required", nil)
			return
		}

		insights, err := service.GenerateInsights(request.Query, repo.List())
		if err != nil {
			logger.WithError(err).Error("ai insights: generation failed")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)
			return
		}

		logger.WithField("query_length", len(request.Query)).Info("ai insights: answer generated")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(aiInsightsResponse{Insights: insights}); err != nil {
			logger.WithError(err).Error("ai insights: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
