package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/perfmkt/campaign-insights-api/infrastructure/repository"
	"github.com/perfmkt/campaign-insights-api/internal/scheduler"
	"github.com/perfmkt/campaign-insights-api/internal/usecases/ingesting"
	"github.com/perfmkt/campaign-insights-api/pkg/apiErrors"
	"github.com/perfmkt/campaign-insights-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Corpo máximo aceito no upload de CSV: 10 MiB cobre com folga conjuntos
// da ordem de milhares de campanhas.
const maxUploadBytes = 10 << 20

// UploadCampaigns recebe o texto CSV no corpo da requisição, valida e
// substitui o conjunto de trabalho inteiro. Erros estruturais não produzem
// conjunto parcial: o snapshot anterior permanece intacto.
func UploadCampaigns(service ingesting.Ingester, repo repository.CampaignRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		body, err := io.ReadAll(io.LimitReader(r.Body, maxUploadBytes))
		if err != nil {
			logger.WithError(err).Warn("campaigns: failed to read upload body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Failed to read file.", nil)
			return
		}

		campaigns, err := service.ParseCSV(string(body))
		if err != nil {
			logger.WithError(err).Warn("campaigns: CSV rejected")
			apiErrors.WriteError(w, ingestErrorCode(err), err.Error(), nil)
			return
		}

		snapshotID, err := repo.ReplaceAll(campaigns)
		if err != nil {
			logger.WithError(err).Error("campaigns: failed to replace working set")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"campaigns":   len(campaigns),
			"snapshot_id": snapshotID,
		}).Info("campaigns: working set replaced from CSV upload")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"campaigns":  len(campaigns),
			"snapshotId": snapshotID,
			"message":    fmt.Sprintf("%d campaigns loaded successfully from CSV!", len(campaigns)),
		})
	})
}

// ListCampaigns devolve o conjunto de trabalho atual na ordem de ingestão.
func ListCampaigns(repo repository.CampaignRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaigns := repo.List()
		snapshotID, loadedAt := repo.Snapshot()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"campaigns":  campaigns,
			"snapshotId": snapshotID,
			"loadedAt":   loadedAt,
		}); err != nil {
			logger.WithError(err).Error("campaigns: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetCampaignTemplate devolve o CSV modelo para download.
func GetCampaignTemplate(service ingesting.Ingester) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="campaign_template.csv"`)

		if _, err := w.Write([]byte(service.Template())); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("campaigns: failed to write template")
		}
	})
}

// SyncCampaigns dispara manualmente a busca na planilha externa.
func SyncCampaigns(service *scheduler.SheetsSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("campaigns: manual sheets sync requested")

		count, err := service.SyncNow()
		if err != nil {
			logger.WithError(err).Error("campaigns: sheets sync failed")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, fmt.Sprintf("Google Sheets Error: %v", err), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"campaigns": count,
			"message":   fmt.Sprintf("%d campaigns loaded successfully from Google Sheets!", count),
		})
	})
}

// GetSyncStatus devolve o estado do agendador de sincronização.
func GetSyncStatus(service *scheduler.SheetsSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(service.Status())
	})
}

// ingestErrorCode mapeia o erro de ingestão para o código de API
func ingestErrorCode(err error) string {
	var missingErr *ingesting.MissingHeadersError
	var rowErr *ingesting.RowError

	switch {
	case errors.Is(err, ingesting.ErrNoDataRows):
		return apiErrors.ErrCsvTooShort
	case errors.As(err, &missingErr):
		return apiErrors.ErrCsvMissingHeader
	case errors.As(err, &rowErr):
		return apiErrors.ErrCsvInvalidRow
	default:
		return apiErrors.ErrInvalidFormat
	}
}
