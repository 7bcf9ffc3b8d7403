package handler

import (
	"net/http"

	"github.com/perfmkt/campaign-insights-api/infrastructure/integrator/gemini"
	"github.com/perfmkt/campaign-insights-api/infrastructure/repository"
	"github.com/perfmkt/campaign-insights-api/internal/api/handler/router"
	"github.com/perfmkt/campaign-insights-api/internal/config"
	"github.com/perfmkt/campaign-insights-api/internal/scheduler"
	"github.com/perfmkt/campaign-insights-api/internal/usecases/forecasting"
	"github.com/perfmkt/campaign-insights-api/internal/usecases/ingesting"
	"github.com/perfmkt/campaign-insights-api/internal/usecases/insighting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Campaigns(
	ingestService ingesting.Ingester,
	campaignRepo repository.CampaignRepository,
	syncService *scheduler.SheetsSyncService,
) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/campaigns",
			Method:  http.MethodGet,
			Handler: ListCampaigns(campaignRepo),
		},
		{
			Path:    "/v1/campaigns/upload",
			Method:  http.MethodPost,
			Handler: UploadCampaigns(ingestService, campaignRepo),
		},
		{
			Path:    "/v1/campaigns/template",
			Method:  http.MethodGet,
			Handler: GetCampaignTemplate(ingestService),
		},
		{
			Path:    "/v1/campaigns/sync",
			Method:  http.MethodPost,
			Handler: SyncCampaigns(syncService),
		},
		{
			Path:    "/v1/campaigns/sync/status",
			Method:  http.MethodGet,
			Handler: GetSyncStatus(syncService),
		},
	}
}

func Dashboard(
	insightService insighting.Aggregator,
	campaignRepo repository.CampaignRepository,
) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(insightService, campaignRepo),
		},
	}
}

func Forecast(
	forecastService forecasting.Forecaster,
	campaignRepo repository.CampaignRepository,
	cfg *config.Config,
) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/forecast",
			Method:  http.MethodPost,
			Handler: PostForecast(forecastService, campaignRepo, cfg),
		},
	}
}

func AiInsights(
	insightsGenerator gemini.InsightsGenerator,
	campaignRepo repository.CampaignRepository,
) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/insights/ai",
			Method:  http.MethodPost,
			Handler: PostAiInsights(insightsGenerator, campaignRepo),
		},
	}
}
