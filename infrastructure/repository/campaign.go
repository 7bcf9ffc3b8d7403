package repository

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/perfmkt/campaign-insights-api/internal/domain"
	"github.com/perfmkt/campaign-insights-api/pkg/utils"
)

// CampaignRepository mantém o conjunto de trabalho de campanhas em memória.
// Não existe upsert incremental: toda ingestão substitui o conjunto inteiro.
type CampaignRepository interface {
	ReplaceAll(campaigns []domain.Campaign) (string, error)
	List() []domain.Campaign
	Count() int
	Snapshot() (string, time.Time)
}

type campaignRepository struct {
	mu         sync.RWMutex
	campaigns  []domain.Campaign
	snapshotID string
	loadedAt   time.Time
}

// NewCampaignRepository cria o repositório em memória vazio.
func NewCampaignRepository() CampaignRepository {
	return &campaignRepository{
		campaigns: []domain.Campaign{},
	}
}

// ReplaceAll substitui o conjunto de trabalho inteiro e devolve o ID do
// novo snapshot. O slice recebido é copiado: os registros são imutáveis
// depois de carregados.
func (r *campaignRepository) ReplaceAll(campaigns []domain.Campaign) (string, error) {
	snapshotID, err := utils.GenerateID()
	if err != nil {
		return "", err
	}

	copied := make([]domain.Campaign, len(campaigns))
	copy(copied, campaigns)

	r.mu.Lock()
	r.campaigns = copied
	r.snapshotID = snapshotID
	r.loadedAt = time.Now()
	r.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"snapshot_id": snapshotID,
		"campaigns":   len(copied),
	}).Info("repository: conjunto de campanhas substituído")

	return snapshotID, nil
}

// List devolve uma cópia do conjunto atual, na ordem de ingestão.
func (r *campaignRepository) List() []domain.Campaign {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Campaign, len(r.campaigns))
	copy(out, r.campaigns)
	return out
}

func (r *campaignRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.campaigns)
}

// Snapshot devolve o ID e o instante da última substituição do conjunto.
func (r *campaignRepository) Snapshot() (string, time.Time) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshotID, r.loadedAt
}
