package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/perfmkt/campaign-insights-api/infrastructure/integrator/sheets"
	"github.com/perfmkt/campaign-insights-api/infrastructure/repository"
	"github.com/perfmkt/campaign-insights-api/internal/config"
)

// SheetsSyncConfig representa a configuração do agendador de sincronização
// com a planilha externa
type SheetsSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// SheetsSyncService gerencia o agendamento e execução da atualização do
// conjunto de campanhas a partir da planilha externa
type SheetsSyncService struct {
	scheduler           *gocron.Scheduler
	config              SheetsSyncConfig
	campaignRepo        repository.CampaignRepository
	sheetsService       sheets.SheetsIntegrator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewSheetsSyncService cria uma nova instância do serviço de sincronização
func NewSheetsSyncService(
	campaignRepo repository.CampaignRepository,
	sheetsService sheets.SheetsIntegrator,
	appConfig *config.Config,
) *SheetsSyncService {
	syncConfig := SheetsSyncConfig{
		CronSchedule: appConfig.SheetsSync.CronSchedule,
		SyncEnabled:  appConfig.SheetsSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização de planilhas carregada")

	return &SheetsSyncService{
		scheduler:     scheduler,
		config:        syncConfig,
		campaignRepo:  campaignRepo,
		sheetsService: sheetsService,
		syncRunning:   false,
	}
}

// Start inicia o agendador
func (s *SheetsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de planilhas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de planilhas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.SyncNow(); err != nil {
			logrus.WithError(err).Error("Erro na sincronização agendada de planilhas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de planilhas: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de planilhas")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncNow busca o conjunto completo na planilha e substitui o conjunto de
// trabalho. Em caso de falha o conjunto anterior permanece intacto.
// Devolve a quantidade de campanhas carregadas.
func (s *SheetsSyncService) SyncNow() (int, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de planilhas já em andamento, ignorando")
		return 0, fmt.Errorf("sincronização já em andamento")
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de campanhas com a planilha externa")

	campaigns, err := s.sheetsService.FetchCampaigns()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar campanhas da planilha, conjunto anterior mantido")
		return 0, err
	}

	snapshotID, err := s.campaignRepo.ReplaceAll(campaigns)
	if err != nil {
		logrus.WithError(err).Error("Erro ao substituir o conjunto de campanhas")
		return 0, err
	}

	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"duration":    time.Since(startTime).String(),
		"campaigns":   len(campaigns),
		"snapshot_id": snapshotID,
	}).Info("Sincronização de planilhas concluída")

	return len(campaigns), nil
}

// Status devolve o estado atual do agendador para o endpoint de inspeção.
func (s *SheetsSyncService) Status() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":           s.config.SyncEnabled,
		"cron_schedule":     s.config.CronSchedule,
		"running":           s.syncRunning,
		"last_started_at":   s.lastSyncStartedAt,
		"last_completed_at": s.lastSyncCompletedAt,
	}
}
