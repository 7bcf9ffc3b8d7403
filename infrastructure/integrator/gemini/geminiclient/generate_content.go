package geminiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"topP"`
	TopK        int     `json:"topK"`
}

type generateContentRequest struct {
	SystemInstruction *content         `json:"system_instruction,omitempty"`
	Contents          []content        `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// GenerateContent chama o endpoint generateContent do modelo configurado e
// devolve o texto do primeiro candidato.
func (c *GeminiClient) GenerateContent(params GenerateContentParams) (string, error) {
	reqBody := generateContentRequest{
		Contents: []content{
			{Parts: []part{{Text: params.Contents}}},
		},
		GenerationConfig: generationConfig{
			Temperature: params.Temperature,
			TopP:        params.TopP,
			TopK:        params.TopK,
		},
	}

	if params.SystemInstruction != "" {
		reqBody.SystemInstruction = &content{Parts: []part{{Text: params.SystemInstruction}}}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", errors.Wrap(err, "gemini: failed to encode request")
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.config.Gemini.BaseURL, params.Model)

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", errors.Wrap(err, "gemini: failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.config.Gemini.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "gemini: request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "gemini: failed to read response body")
	}

	var parsed generateContentResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", errors.Wrapf(err, "gemini: unexpected response (status %d)", resp.StatusCode)
	}

	if parsed.Error != nil {
		return "", errors.Errorf("gemini: %s (status %s)", parsed.Error.Message, parsed.Error.Status)
	}

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("gemini: request failed with status %d", resp.StatusCode)
	}

	if len(parsed.Candidates) == 0 {
		return "", errors.New("gemini: response has no candidates")
	}

	var sb strings.Builder
	for _, p := range parsed.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}

	return sb.String(), nil
}
