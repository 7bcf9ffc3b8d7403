package ingesting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfmkt/campaign-insights-api/internal/domain"
)

func newTestService() *Service {
	return &Service{
		now: func() time.Time {
			return time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
		},
	}
}

const fullHeader = "id,name,platform,status,spend,impressions,clicks,conversions,roas,cpc,ctr,channel,source,contentType,adSetName,date,signups,sqls,customers,onboarded,churnedCustomers"

func TestParseCSV(t *testing.T) {
	service := newTestService()

	t.Run("Arquivo completo produz campanhas na ordem das linhas", func(t *testing.T) {
		csv := fullHeader + "\n" +
			"1,Campanha A,Google Ads,Active,100,1000,50,10,2.5,2.0,5.0,Paid Search,google.com,Search Ad,TOF,2024-01-10,20,8,4,3,1\n" +
			"2,Campanha B,Meta Ads,Paused,200,2000,100,20,3.0,2.0,5.0,Paid Social,facebook.com,Video Ad,BOF,2024-02-10,40,16,8,6,2"

		campaigns, err := service.ParseCSV(csv)

		require.NoError(t, err)
		require.Len(t, campaigns, 2)

		first := campaigns[0]
		assert.Equal(t, 1, first.ID)
		assert.Equal(t, "Campanha A", first.Name)
		assert.Equal(t, domain.PlatformGoogle, first.Platform)
		assert.Equal(t, domain.CampaignStatusActive, first.Status)
		assert.Equal(t, 100.0, first.Spend)
		assert.Equal(t, 1000, first.Impressions)
		assert.Equal(t, 50, first.Clicks)
		assert.Equal(t, 10, first.Conversions)
		assert.Equal(t, 2.5, first.ROAS)
		assert.Equal(t, "2024-01-10", first.Date)
		assert.Equal(t, 4, first.Customers)
		assert.Equal(t, 1, first.ChurnedCustomers)

		assert.Equal(t, "Campanha B", campaigns[1].Name)
		assert.Equal(t, domain.CampaignStatusPaused, campaigns[1].Status)
	})

	t.Run("Colunas em ordem diferente do modelo são aceitas", func(t *testing.T) {
		csv := "date,status,roas,spend,name,platform,id,impressions,clicks,conversions,cpc,ctr\n" +
			"2024-03-01,Active,4.0,500,Invertida,TikTok Ads,7,9000,450,30,1.1,5.0"

		campaigns, err := service.ParseCSV(csv)

		require.NoError(t, err)
		require.Len(t, campaigns, 1)
		assert.Equal(t, 7, campaigns[0].ID)
		assert.Equal(t, "Invertida", campaigns[0].Name)
		assert.Equal(t, 500.0, campaigns[0].Spend)
		assert.Equal(t, 4.0, campaigns[0].ROAS)
	})

	t.Run("Valores entre aspas preservam vírgulas internas", func(t *testing.T) {
		csv := fullHeader + "\n" +
			`3,"Promo, Natal","Google Ads",Active,100,1000,50,10,2.0,2.0,5.0,"Paid Search, Brand",google.com,Search Ad,TOF,2024-12-01,0,0,0,0,0`

		campaigns, err := service.ParseCSV(csv)

		require.NoError(t, err)
		require.Len(t, campaigns, 1)
		assert.Equal(t, "Promo, Natal", campaigns[0].Name)
		assert.Equal(t, "Paid Search, Brand", campaigns[0].Channel)
	})

	t.Run("Linha curta é completada com defaults", func(t *testing.T) {
		csv := "id,name,platform,status,spend,impressions,clicks,conversions,roas,cpc,ctr,date,customers\n" +
			"5,Curta,Meta Ads,Active,100,1000,50,10,2.0,2.0,5.0,2024-01-01"

		campaigns, err := service.ParseCSV(csv)

		require.NoError(t, err)
		require.Len(t, campaigns, 1)
		assert.Equal(t, 0, campaigns[0].Customers)
		assert.Equal(t, "N/A", campaigns[0].Channel)
	})

	t.Run("Campos textuais vazios viram N/A", func(t *testing.T) {
		csv := fullHeader + "\n" +
			"4,,Google Ads,Active,100,1000,50,10,2.0,2.0,5.0,,,,,2024-01-01,0,0,0,0,0"

		campaigns, err := service.ParseCSV(csv)

		require.NoError(t, err)
		require.Len(t, campaigns, 1)
		assert.Equal(t, "N/A", campaigns[0].Name)
		assert.Equal(t, "N/A", campaigns[0].Channel)
		assert.Equal(t, "N/A", campaigns[0].Source)
		assert.Equal(t, "N/A", campaigns[0].ContentType)
		assert.Equal(t, "N/A", campaigns[0].AdSetName)
	})

	t.Run("Numérico inválido vira zero sem abortar a linha", func(t *testing.T) {
		csv := fullHeader + "\n" +
			"6,Defeituosa,Google Ads,Active,abc,xyz,50,10,not-a-number,2.0,5.0,Paid Search,google.com,Search Ad,TOF,2024-01-01,0,0,0,0,0"

		campaigns, err := service.ParseCSV(csv)

		require.NoError(t, err)
		require.Len(t, campaigns, 1)
		assert.Equal(t, 0.0, campaigns[0].Spend)
		assert.Equal(t, 0, campaigns[0].Impressions)
		assert.Equal(t, 0.0, campaigns[0].ROAS)
	})

	t.Run("Id ausente usa o índice da linha de dados", func(t *testing.T) {
		csv := fullHeader + "\n" +
			",Primeira,Google Ads,Active,100,1000,50,10,2.0,2.0,5.0,a,b,c,d,2024-01-01,0,0,0,0,0\n" +
			",Segunda,Meta Ads,Active,100,1000,50,10,2.0,2.0,5.0,a,b,c,d,2024-01-01,0,0,0,0,0"

		campaigns, err := service.ParseCSV(csv)

		require.NoError(t, err)
		require.Len(t, campaigns, 2)
		assert.Equal(t, 0, campaigns[0].ID)
		assert.Equal(t, 1, campaigns[1].ID)
	})

	t.Run("Data vazia assume a data atual", func(t *testing.T) {
		csv := fullHeader + "\n" +
			"8,SemData,Google Ads,Active,100,1000,50,10,2.0,2.0,5.0,a,b,c,d,,0,0,0,0,0"

		campaigns, err := service.ParseCSV(csv)

		require.NoError(t, err)
		require.Len(t, campaigns, 1)
		assert.Equal(t, "2024-06-15", campaigns[0].Date)
	})

	t.Run("Linhas em branco no meio do arquivo são ignoradas", func(t *testing.T) {
		csv := fullHeader + "\n\n" +
			"9,ComBranco,Google Ads,Active,100,1000,50,10,2.0,2.0,5.0,a,b,c,d,2024-01-01,0,0,0,0,0\n\n"

		campaigns, err := service.ParseCSV(csv)

		require.NoError(t, err)
		assert.Len(t, campaigns, 1)
	})
}

func TestParseCSV_StructuralErrors(t *testing.T) {
	service := newTestService()

	t.Run("Arquivo sem linhas de dados é rejeitado", func(t *testing.T) {
		_, err := service.ParseCSV(fullHeader)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoDataRows)
		assert.Equal(t, "CSV must have a header and at least one data row.", err.Error())
	})

	t.Run("Arquivo vazio é rejeitado", func(t *testing.T) {
		_, err := service.ParseCSV("")

		assert.ErrorIs(t, err, ErrNoDataRows)
	})

	t.Run("Cabeçalho sem colunas obrigatórias lista as ausentes", func(t *testing.T) {
		csv := "id,name,platform,status,spend,impressions,clicks,conversions,cpc,date\n" +
			"1,Faltando,Google Ads,Active,100,1000,50,10,2.0,2024-01-01"

		_, err := service.ParseCSV(csv)

		require.Error(t, err)

		var missingErr *MissingHeadersError
		require.ErrorAs(t, err, &missingErr)
		assert.Equal(t, []string{"roas", "ctr"}, missingErr.Missing)
		assert.Equal(t, "Invalid CSV headers. Missing required headers: roas, ctr", err.Error())
	})

	t.Run("Status inválido aborta a ingestão inteira", func(t *testing.T) {
		csv := fullHeader + "\n" +
			"1,Válida,Google Ads,Active,100,1000,50,10,2.0,2.0,5.0,a,b,c,d,2024-01-01,0,0,0,0,0\n" +
			"2,Inválida,Google Ads,Cancelled,100,1000,50,10,2.0,2.0,5.0,a,b,c,d,2024-01-01,0,0,0,0,0"

		campaigns, err := service.ParseCSV(csv)

		require.Error(t, err)
		assert.Nil(t, campaigns)

		var rowErr *RowError
		require.ErrorAs(t, err, &rowErr)
		assert.Equal(t, 3, rowErr.Row)
		assert.Contains(t, err.Error(), "Error parsing data in row 3")
		assert.Contains(t, err.Error(), `Invalid status value "Cancelled"`)
	})
}

func TestTemplate(t *testing.T) {
	service := newTestService()

	template := service.Template()

	// O modelo precisa ser ingerível por ParseCSV sem erro
	campaigns, err := service.ParseCSV(template)
	require.NoError(t, err)
	require.Len(t, campaigns, 1)
	assert.Equal(t, "Q4 Promo", campaigns[0].Name)
	assert.Equal(t, domain.CampaignStatusActive, campaigns[0].Status)
	assert.Equal(t, 5000.0, campaigns[0].Spend)
}
