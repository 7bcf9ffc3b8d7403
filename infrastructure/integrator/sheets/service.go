package sheets

import (
	"github.com/perfmkt/campaign-insights-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/perfmkt/campaign-insights-api/internal/config"
	"github.com/perfmkt/campaign-insights-api/internal/domain"
)

// SheetsIntegrator busca o conjunto completo de campanhas na planilha
// externa. Em caso de sucesso o chamador substitui o conjunto de trabalho
// inteiro; em caso de falha o conjunto anterior permanece intacto.
type SheetsIntegrator interface {
	FetchCampaigns() ([]domain.Campaign, error)
}

type SheetsService struct {
	cfg    *config.Config
	Client sheetsclient.Client
}

func New(cfg *config.Config, client sheetsclient.Client) SheetsIntegrator {
	return &SheetsService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *SheetsService) FetchCampaigns() ([]domain.Campaign, error) {
	params := sheetsclient.FetchParams{
		ScriptURL:   s.cfg.Sheets.ScriptURL,
		AccessToken: s.cfg.Sheets.AccessToken,
	}

	return s.Client.FetchCampaigns(params)
}
