package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	geminimocks "github.com/perfmkt/campaign-insights-api/infrastructure/integrator/gemini/mocks"
	"github.com/perfmkt/campaign-insights-api/infrastructure/repository/mocks"
	"github.com/perfmkt/campaign-insights-api/internal/domain"
	"github.com/perfmkt/campaign-insights-api/pkg/apiErrors"
)

func TestPostAiInsights(t *testing.T) {
	t.Run("Pergunta válida devolve a análise do modelo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockCampaignRepository(ctrl)
		mockGenerator := geminimocks.NewMockInsightsGenerator(ctrl)

		campaigns := []domain.Campaign{{ID: 1, Name: "A"}}
		mockRepo.EXPECT().List().Return(campaigns)
		mockGenerator.EXPECT().
			GenerateInsights("Qual campanha tem o melhor ROAS?", campaigns).
			Return("A campanha A lidera em ROAS.", nil)

		handler := PostAiInsights(mockGenerator, mockRepo)

		body := `{"query": "Qual campanha tem o melhor ROAS?"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/insights/ai", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var response aiInsightsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "A campanha A lidera em ROAS.", response.Insights)
	})

	t.Run("Pergunta vazia responde 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockCampaignRepository(ctrl)
		mockGenerator := geminimocks.NewMockInsightsGenerator(ctrl)

		handler := PostAiInsights(mockGenerator, mockRepo)

		req := httptest.NewRequest(http.MethodPost, "/v1/insights/ai", strings.NewReader(`{"query": "   "}`))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var apiErr apiErrors.APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		assert.Equal(t, apiErrors.ErrMissingRequiredData, apiErr.Code)
	})

	t.Run("Falha do modelo responde 502 com a mensagem propagada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockCampaignRepository(ctrl)
		mockGenerator := geminimocks.NewMockInsightsGenerator(ctrl)

		mockRepo.EXPECT().List().Return([]domain.Campaign{})
		mockGenerator.EXPECT().
			GenerateInsights("Resumo geral", gomock.Any()).
			Return("", errors.New("Gemini API key is missing. Please provide it to use AI features."))

		handler := PostAiInsights(mockGenerator, mockRepo)

		req := httptest.NewRequest(http.MethodPost, "/v1/insights/ai", strings.NewReader(`{"query": "Resumo geral"}`))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)

		var apiErr apiErrors.APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		assert.Equal(t, apiErrors.ErrExternalService, apiErr.Code)
		assert.Contains(t, apiErr.Message, "Gemini API key is missing")
	})
}
