package domain

import "fmt"

// CampaignStatus representa o estado de veiculação de uma campanha
type CampaignStatus string

const (
	CampaignStatusActive CampaignStatus = "Active"
	CampaignStatusPaused CampaignStatus = "Paused"
	CampaignStatusEnded  CampaignStatus = "Ended"
)

// ParseCampaignStatus valida o valor literal de status vindo da importação.
// Qualquer valor fora do conjunto Active/Paused/Ended é rejeitado.
func ParseCampaignStatus(value string) (CampaignStatus, error) {
	switch CampaignStatus(value) {
	case CampaignStatusActive, CampaignStatusPaused, CampaignStatusEnded:
		return CampaignStatus(value), nil
	default:
		return "", fmt.Errorf("Invalid status value %q", value)
	}
}

// Campaign representa uma observação de performance de campanha.
// Os campos numéricos nunca carregam NaN: a ingestão substitui valores
// inválidos por zero antes de entregar o registro para os agregadores.
type Campaign struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	Platform    Platform       `json:"platform"`
	Status      CampaignStatus `json:"status"`
	Spend       float64        `json:"spend"`
	Impressions int            `json:"impressions"`
	Clicks      int            `json:"clicks"`
	Conversions int            `json:"conversions"`
	ROAS        float64        `json:"roas"`
	CPC         float64        `json:"cpc"`
	CTR         float64        `json:"ctr"`
	Channel     string         `json:"channel"`
	Source      string         `json:"source"`
	ContentType string         `json:"contentType"`
	AdSetName   string         `json:"adSetName"`
	Date        string         `json:"date"` // formato YYYY-MM-DD

	// Métricas opcionais de funil
	Signups          int `json:"signups"`
	SQLs             int `json:"sqls"`
	Customers        int `json:"customers"`
	Onboarded        int `json:"onboarded"`
	ChurnedCustomers int `json:"churnedCustomers"`
}

// Revenue calcula a receita derivada da campanha. A receita nunca é
// armazenada: roas é a única fonte de verdade de rentabilidade.
func (c Campaign) Revenue() float64 {
	return c.Spend * c.ROAS
}
