package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Gemini     Gemini     `mapstructure:",squash"`
	Sheets     Sheets     `mapstructure:",squash"`
	SheetsSync SheetsSync `mapstructure:",squash"`
	Forecast   Forecast   `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Gemini struct {
	APIKey      string  `mapstructure:"gemini_api_key"`
	BaseURL     string  `mapstructure:"gemini_base_url"`
	Model       string  `mapstructure:"gemini_model"`
	Temperature float64 `mapstructure:"gemini_temperature"`
	TopP        float64 `mapstructure:"gemini_top_p"`
	TopK        int     `mapstructure:"gemini_top_k"`
}

type Sheets struct {
	ScriptURL   string `mapstructure:"sheets_script_url"`
	AccessToken string `mapstructure:"sheets_access_token"`
}

type SheetsSync struct {
	CronSchedule string `mapstructure:"sheets_sync_cron"`
	Enabled      bool   `mapstructure:"sheets_sync_enabled"`
}

type Forecast struct {
	AvgDealSize    float64 `mapstructure:"forecast_avg_deal_size"`
	AvgAnnualValue float64 `mapstructure:"forecast_avg_annual_value"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("GEMINI_TEMPERATURE", 0.5)
	viper.SetDefault("GEMINI_TOP_P", 0.95)
	viper.SetDefault("GEMINI_TOP_K", 64)

	viper.SetDefault("SHEETS_SCRIPT_URL", "")
	viper.SetDefault("SHEETS_ACCESS_TOKEN", "")

	// Defaults para sincronização com a planilha externa
	viper.SetDefault("SHEETS_SYNC_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("SHEETS_SYNC_ENABLED", false)

	// Defaults dos parâmetros de negócio do cenário de investimento
	viper.SetDefault("FORECAST_AVG_DEAL_SIZE", 5000)
	viper.SetDefault("FORECAST_AVG_ANNUAL_VALUE", 2000)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Permite que o Viper leia variáveis de ambiente

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
