package sheetsclient

import (
	"net/http"
	"time"

	"github.com/perfmkt/campaign-insights-api/internal/config"
	"github.com/perfmkt/campaign-insights-api/internal/domain"
)

// FetchParams são os parâmetros de uma busca na ponte do Apps Script.
type FetchParams struct {
	ScriptURL   string
	AccessToken string
}

type Client interface {
	FetchCampaigns(params FetchParams) ([]domain.Campaign, error)
}

type SheetsClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente da ponte de planilhas.
func NewClient(cfg *config.Config) Client {
	return &SheetsClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
