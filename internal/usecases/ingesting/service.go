package ingesting

import (
	"strconv"
	"strings"
	"time"

	"github.com/perfmkt/campaign-insights-api/internal/domain"
)

// Ingester converte texto delimitado em campanhas validadas.
type Ingester interface {
	ParseCSV(text string) ([]domain.Campaign, error)
	Template() string
}

// Colunas obrigatórias do cabeçalho. A ordem das colunas no arquivo é
// livre; a presença não.
var requiredHeaders = []string{
	"id", "name", "platform", "status", "spend", "impressions",
	"clicks", "conversions", "roas", "cpc", "ctr", "date",
}

const templateHeaders = "id,name,platform,status,spend,impressions,clicks,conversions,roas,cpc,ctr,channel,source,contentType,adSetName,date,signups,sqls,customers,onboarded,churnedCustomers"

const templateExampleRow = `1,Q4 Promo,"Google Ads",Active,5000,100000,5000,250,6.0,1.00,5.0,"Paid Search","google.com","Search Ad","TOF Bofu",2024-10-05,500,250,100,80,10`

type Service struct {
	now func() time.Time
}

// NewService cria o serviço de ingestão de CSV.
func NewService() Ingester {
	return &Service{now: time.Now}
}

// ParseCSV converte o texto em uma lista de campanhas, na ordem das linhas.
// Falhas estruturais (cabeçalho, status inválido) abortam a chamada inteira;
// problemas de coerção numérica são recuperados localmente com defaults.
func (s *Service) ParseCSV(text string) ([]domain.Campaign, error) {
	lines := nonBlankLines(text)
	if len(lines) < 2 {
		return nil, ErrNoDataRows
	}

	header := splitHeader(lines[0])
	if missing := missingHeaders(header); len(missing) > 0 {
		return nil, &MissingHeadersError{Missing: missing}
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[h] = i
	}

	campaigns := make([]domain.Campaign, 0, len(lines)-1)
	for i, row := range lines[1:] {
		values := splitRow(row)

		// Completa linhas curtas até a largura do cabeçalho
		for len(values) < len(header) {
			values = append(values, "")
		}

		// Colunas opcionais ausentes do cabeçalho valem vazio
		field := func(name string) string {
			col, ok := index[name]
			if !ok {
				return ""
			}
			return values[col]
		}

		status, err := domain.ParseCampaignStatus(strings.TrimSpace(field("status")))
		if err != nil {
			return nil, &RowError{Row: i + 2, Err: err}
		}

		campaigns = append(campaigns, domain.Campaign{
			ID:               intOr(field("id"), i),
			Name:             stringOrNA(field("name")),
			Platform:         domain.Platform(stringOrNA(field("platform"))),
			Status:           status,
			Spend:            floatOrZero(field("spend")),
			Impressions:      intOrZero(field("impressions")),
			Clicks:           intOrZero(field("clicks")),
			Conversions:      intOrZero(field("conversions")),
			ROAS:             floatOrZero(field("roas")),
			CPC:              floatOrZero(field("cpc")),
			CTR:              floatOrZero(field("ctr")),
			Channel:          stringOrNA(field("channel")),
			Source:           stringOrNA(field("source")),
			ContentType:      stringOrNA(field("contentType")),
			AdSetName:        stringOrNA(field("adSetName")),
			Date:             s.dateOrToday(field("date")),
			Signups:          intOrZero(field("signups")),
			SQLs:             intOrZero(field("sqls")),
			Customers:        intOrZero(field("customers")),
			Onboarded:        intOrZero(field("onboarded")),
			ChurnedCustomers: intOrZero(field("churnedCustomers")),
		})
	}

	return campaigns, nil
}

// Template retorna o CSV modelo com o cabeçalho completo e uma linha de
// exemplo, para download pelo frontend.
func (s *Service) Template() string {
	return templateHeaders + "\n" + templateExampleRow
}

func nonBlankLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func splitHeader(line string) []string {
	parts := strings.Split(strings.TrimSpace(line), ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// splitRow separa os campos respeitando aspas duplas, que podem envolver
// vírgulas. As aspas não fazem parte do valor.
func splitRow(line string) []string {
	var values []string
	var current strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			values = append(values, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	values = append(values, current.String())

	return values
}

func missingHeaders(header []string) []string {
	present := make(map[string]struct{}, len(header))
	for _, h := range header {
		present[h] = struct{}{}
	}

	var missing []string
	for _, h := range requiredHeaders {
		if _, ok := present[h]; !ok {
			missing = append(missing, h)
		}
	}
	return missing
}

func floatOrZero(value string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return f
}

func intOrZero(value string) int {
	return intOr(value, 0)
}

func intOr(value string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		// Aceita notação decimal truncando, como a coerção original
		if f, ferr := strconv.ParseFloat(strings.TrimSpace(value), 64); ferr == nil {
			return int(f)
		}
		return fallback
	}
	return n
}

func stringOrNA(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "N/A"
	}
	return value
}

func (s *Service) dateOrToday(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return s.now().Format(time.DateOnly)
	}
	return value
}
