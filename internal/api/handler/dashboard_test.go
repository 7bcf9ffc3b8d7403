package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/perfmkt/campaign-insights-api/infrastructure/repository/mocks"
	"github.com/perfmkt/campaign-insights-api/internal/domain"
	"github.com/perfmkt/campaign-insights-api/internal/usecases/insighting"
	"github.com/perfmkt/campaign-insights-api/pkg/apiErrors"
)

func dashboardCampaigns() []domain.Campaign {
	return []domain.Campaign{
		{ID: 1, Name: "A", Platform: domain.PlatformGoogle, Spend: 100, ROAS: 2.0, Impressions: 1000, Clicks: 50, Conversions: 10, Customers: 2, Date: "2024-01-10"},
		{ID: 2, Name: "B", Platform: domain.PlatformMeta, Spend: 200, ROAS: 1.0, Impressions: 2000, Clicks: 100, Conversions: 20, Customers: 4, Date: "2024-03-10"},
	}
}

func TestGetDashboard(t *testing.T) {
	service := insighting.NewService()

	newMockRepo := func(t *testing.T) *mocks.MockCampaignRepository {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		return mocks.NewMockCampaignRepository(ctrl)
	}

	t.Run("Resumo com sequência de funil padrão", func(t *testing.T) {
		mockRepo := newMockRepo(t)
		mockRepo.EXPECT().List().Return(dashboardCampaigns())
		mockRepo.EXPECT().Snapshot().Return("snap01", time.Time{})

		handler := GetDashboard(service, mockRepo)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body dashboardResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

		assert.Equal(t, 300.0, body.Totals.Spend)
		assert.Equal(t, 400.0, body.Totals.Revenue)
		assert.Equal(t, "snap01", body.SnapshotID)

		require.Len(t, body.Funnel, 4)
		assert.Equal(t, "Impressions", body.Funnel[0].Label)
		assert.Equal(t, 3000, body.Funnel[0].Value)
		assert.Equal(t, "Customers", body.Funnel[3].Label)
		assert.Equal(t, 6, body.Funnel[3].Value)
	})

	t.Run("Parâmetro stages define a sequência do funil", func(t *testing.T) {
		mockRepo := newMockRepo(t)
		mockRepo.EXPECT().List().Return(dashboardCampaigns())
		mockRepo.EXPECT().Snapshot().Return("snap01", time.Time{})

		handler := GetDashboard(service, mockRepo)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard?stages=clicks,impressions", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body dashboardResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

		require.Len(t, body.Funnel, 2)
		assert.Equal(t, "Clicks", body.Funnel[0].Label)
		assert.Equal(t, 150, body.Funnel[0].Value)
		assert.Equal(t, "Impressions", body.Funnel[1].Label)
	})

	t.Run("Etapa desconhecida responde 400", func(t *testing.T) {
		mockRepo := newMockRepo(t)

		handler := GetDashboard(service, mockRepo)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard?stages=leads", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var apiErr apiErrors.APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)
		assert.Contains(t, apiErr.Message, "leads")
	})

	t.Run("Etapa repetida responde 400", func(t *testing.T) {
		mockRepo := newMockRepo(t)

		handler := GetDashboard(service, mockRepo)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard?stages=clicks,clicks", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Filtro de período restringe o conjunto agregado", func(t *testing.T) {
		mockRepo := newMockRepo(t)
		mockRepo.EXPECT().List().Return(dashboardCampaigns())
		mockRepo.EXPECT().Snapshot().Return("snap01", time.Time{})

		handler := GetDashboard(service, mockRepo)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard?start_date=2024-02-01&end_date=2024-12-31", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body dashboardResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

		// Apenas a campanha de março entra no período
		assert.Equal(t, 200.0, body.Totals.Spend)
	})

	t.Run("Data de filtro mal formada responde 400", func(t *testing.T) {
		mockRepo := newMockRepo(t)

		handler := GetDashboard(service, mockRepo)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard?start_date=10-01-2024", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
