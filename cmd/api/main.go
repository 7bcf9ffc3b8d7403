package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/perfmkt/campaign-insights-api/infrastructure/integrator/gemini"
	"github.com/perfmkt/campaign-insights-api/infrastructure/integrator/gemini/geminiclient"
	"github.com/perfmkt/campaign-insights-api/infrastructure/integrator/sheets"
	"github.com/perfmkt/campaign-insights-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/perfmkt/campaign-insights-api/infrastructure/repository"
	"github.com/perfmkt/campaign-insights-api/internal/api"
	"github.com/perfmkt/campaign-insights-api/internal/config"
	"github.com/perfmkt/campaign-insights-api/internal/scheduler"
	"github.com/perfmkt/campaign-insights-api/internal/usecases/forecasting"
	"github.com/perfmkt/campaign-insights-api/internal/usecases/ingesting"
	"github.com/perfmkt/campaign-insights-api/internal/usecases/insighting"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	campaignRepo := repository.NewCampaignRepository()

	sheetsClient := sheetsclient.NewClient(cfg)
	sheetsIntegrator := sheets.New(cfg, sheetsClient)

	geminiClient := geminiclient.NewClient(cfg)
	insightsGenerator := gemini.New(cfg, geminiClient)

	ingestService := ingesting.NewService()
	insightService := insighting.NewService()
	forecastService := forecasting.NewService()

	// Inicializa o agendador de sincronização com a planilha externa
	sheetsSyncService := scheduler.NewSheetsSyncService(campaignRepo, sheetsIntegrator, cfg)

	if err := sheetsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de planilhas")
	} else {
		logrus.Info("Agendador de sincronização de planilhas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		campaignRepo,
		ingestService,
		insightService,
		forecastService,
		insightsGenerator,
		sheetsSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
