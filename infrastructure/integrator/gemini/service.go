package gemini

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/perfmkt/campaign-insights-api/infrastructure/integrator/gemini/geminiclient"
	"github.com/perfmkt/campaign-insights-api/internal/config"
	"github.com/perfmkt/campaign-insights-api/internal/domain"
	"github.com/perfmkt/campaign-insights-api/pkg/utils"
)

// InsightsGenerator produz análises em linguagem natural sobre o conjunto
// atual de campanhas. O texto retornado pelo modelo é repassado sem
// alteração, assim como erros propagados.
type InsightsGenerator interface {
	GenerateInsights(query string, campaigns []domain.Campaign) (string, error)
}

const systemInstruction = `You are a world-class performance marketing analyst named 'InsightBot'.
Your role is to analyze campaign data and provide actionable, data-driven insights.
- Be concise and clear. Use bullet points or numbered lists for recommendations.
- Always base your analysis strictly on the provided JSON data. Do not invent data.
- When comparing campaigns, refer to them by name.
- Consider all available data points, including channel, source, and content type for deeper analysis.
- Keep your tone professional and helpful.
- Format numbers and currency appropriately (e.g., $1,234.56, 4.5x ROAS, 2.34% CTR).
- Always start your response with a brief, one-sentence summary of your findings.`

// promptCampaign é a projeção enviada ao modelo: apenas os campos úteis
// para análise, sem identificadores internos.
type promptCampaign struct {
	Name        string          `json:"name"`
	Platform    domain.Platform `json:"platform"`
	Spend       float64         `json:"spend"`
	Conversions int             `json:"conversions"`
	ROAS        float64         `json:"roas"`
	CTR         float64         `json:"ctr"`
	Channel     string          `json:"channel"`
	Source      string          `json:"source"`
	ContentType string          `json:"contentType"`
}

type GeminiService struct {
	cfg    *config.Config
	Client geminiclient.Client
}

func New(cfg *config.Config, client geminiclient.Client) InsightsGenerator {
	return &GeminiService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *GeminiService) GenerateInsights(query string, campaigns []domain.Campaign) (string, error) {
	if s.cfg.Gemini.APIKey == "" {
		return "", errors.New("Gemini API key is missing. Please provide it to use AI features.")
	}

	promptData := make([]promptCampaign, 0, len(campaigns))
	for _, c := range campaigns {
		promptData = append(promptData, promptCampaign{
			Name:        c.Name,
			Platform:    c.Platform,
			Spend:       c.Spend,
			Conversions: c.Conversions,
			ROAS:        c.ROAS,
			CTR:         c.CTR,
			Channel:     c.Channel,
			Source:      c.Source,
			ContentType: c.ContentType,
		})
	}

	contents := buildContents(query, promptData)

	text, err := s.Client.GenerateContent(geminiclient.GenerateContentParams{
		Model:             s.cfg.Gemini.Model,
		SystemInstruction: systemInstruction,
		Contents:          contents,
		Temperature:       s.cfg.Gemini.Temperature,
		TopP:              s.cfg.Gemini.TopP,
		TopK:              s.cfg.Gemini.TopK,
	})
	if err != nil {
		if strings.Contains(err.Error(), "API key not valid") {
			return "", errors.New("Your Gemini API key is not valid. Please check the key and try again.")
		}
		return "", errors.Wrap(err, "Failed to get insights from Gemini")
	}

	return text, nil
}

func buildContents(query string, promptData []promptCampaign) string {
	return fmt.Sprintf(
		"Here is the current marketing campaign data in JSON format:\n```json\n%s\n```\n\nBased on this data, please answer the following question: %q\n",
		utils.PrettyJson(promptData),
		query,
	)
}
