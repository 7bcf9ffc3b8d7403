package geminiclient

import (
	"net/http"
	"time"

	"github.com/perfmkt/campaign-insights-api/internal/config"
)

// GenerateContentParams são os parâmetros de uma geração de texto.
type GenerateContentParams struct {
	Model             string
	SystemInstruction string
	Contents          string
	Temperature       float64
	TopP              float64
	TopK              int
}

type Client interface {
	GenerateContent(params GenerateContentParams) (string, error)
}

type GeminiClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente da API Gemini.
func NewClient(cfg *config.Config) Client {
	return &GeminiClient{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		config: cfg,
	}
}
