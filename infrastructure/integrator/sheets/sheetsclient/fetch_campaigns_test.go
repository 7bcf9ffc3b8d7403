package sheetsclient

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfmkt/campaign-insights-api/internal/config"
)

func newTestClient() *SheetsClient {
	return NewClient(&config.Config{}).(*SheetsClient)
}

func TestFetchCampaigns(t *testing.T) {
	t.Run("Resposta com campanhas é decodificada na ordem recebida", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "token-abc", r.URL.Query().Get("accessToken"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"id": 1, "name": "Campanha A"}, {"id": 2, "name": "Campanha B"}]`))
		}))
		defer server.Close()

		client := newTestClient()

		campaigns, err := client.FetchCampaigns(FetchParams{
			ScriptURL:   server.URL,
			AccessToken: "token-abc",
		})

		require.NoError(t, err)
		require.Len(t, campaigns, 2)
		assert.Equal(t, "Campanha A", campaigns[0].Name)
		assert.Equal(t, "Campanha B", campaigns[1].Name)
	})

	t.Run("URL ausente falha antes de qualquer requisição", func(t *testing.T) {
		client := newTestClient()

		_, err := client.FetchCampaigns(FetchParams{})

		require.Error(t, err)
		assert.Equal(t, "Apps Script URL is not set.", err.Error())
	})

	t.Run("Objeto de erro com status 200 é propagado como falha", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"error": "Invalid access token."}`))
		}))
		defer server.Close()

		client := newTestClient()

		_, err := client.FetchCampaigns(FetchParams{ScriptURL: server.URL})

		require.Error(t, err)
		assert.Equal(t, "Invalid access token.", err.Error())
	})

	t.Run("Status não OK sem corpo de erro usa mensagem genérica", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := newTestClient()

		_, err := client.FetchCampaigns(FetchParams{ScriptURL: server.URL})

		require.Error(t, err)
		assert.Equal(t, "Failed to fetch data from script.", err.Error())
	})

	t.Run("Lista vazia é tratada como erro", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := newTestClient()

		_, err := client.FetchCampaigns(FetchParams{ScriptURL: server.URL})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "No data returned from Google Sheets")
	})
}
