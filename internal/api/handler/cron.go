package handler

import (
	"net/http"

	"github.com/vfg2006/analytico-api/pkg/apiErrors"
	"github.com/vfg2006/analytico-api/pkg/log"
)

const CronJobTypeForecast = "forecast"

// SyncService é o contrato mínimo de um job agendado controlável pela API
type SyncService interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	ForecastSyncService SyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := param(r, "type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeForecast:
			if services.ForecastSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de regeneração de previsões não disponível", nil)
				return
			}
			services.ForecastSyncService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: forecast", nil)
			return
		}

		log.ForContext(r.Context()).WithField("type", cronType).Info("Cron job disparada manualmente")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.ForecastSyncService != nil {
			status[CronJobTypeForecast] = services.ForecastSyncService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
