package sheetsclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/perfmkt/campaign-insights-api/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

// FetchCampaigns busca o conjunto completo de campanhas publicado pela
// implantação do Apps Script. A resposta é a lista inteira ou um erro
// legível: nunca um conjunto parcial.
func (c *SheetsClient) FetchCampaigns(params FetchParams) ([]domain.Campaign, error) {
	if params.ScriptURL == "" {
		return nil, errors.New("Apps Script URL is not set.")
	}

	fetchURL := fmt.Sprintf("%s?accessToken=%s", params.ScriptURL, url.QueryEscape(params.AccessToken))

	resp, err := c.httpClient.Get(fetchURL)
	if err != nil {
		return nil, errors.Wrap(err, "sheets: request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "sheets: failed to read response body")
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if jsonErr := json.Unmarshal(body, &errResp); jsonErr == nil && errResp.Error != "" {
			return nil, errors.New(errResp.Error)
		}
		return nil, errors.New("Failed to fetch data from script.")
	}

	// Algumas implantações respondem 200 com um objeto de erro no corpo
	var errResp errorResponse
	if jsonErr := json.Unmarshal(body, &errResp); jsonErr == nil && errResp.Error != "" {
		return nil, errors.New(errResp.Error)
	}

	var campaigns []domain.Campaign
	if err := json.Unmarshal(body, &campaigns); err != nil {
		return nil, errors.Wrap(err, "sheets: unexpected response payload")
	}

	if len(campaigns) == 0 {
		return nil, errors.New("No data returned from Google Sheets. Ensure sheets are named correctly and not empty.")
	}

	return campaigns, nil
}
