package handler

import (
	"net/http"

	"github.com/vfg2006/offer-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/offer-dashboard-api/pkg/log"
)

const CronJobTypeOfferMetricsRollup = "offer-metrics-rollup"

// CronJob é uma rotina agendada que também pode ser disparada manualmente
type CronJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém as rotinas que podem ser executadas manualmente
type CronJobServices struct {
	OfferMetricsRollup CronJob
}

func (s CronJobServices) byType(cronType string) (CronJob, bool) {
	switch cronType {
	case CronJobTypeOfferMetricsRollup:
		return s.OfferMetricsRollup, s.OfferMetricsRollup != nil
	}
	return nil, false
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := pathParam(r, "type")

		job, ok := services.byType(cronType)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: "+CronJobTypeOfferMetricsRollup, cronType)
			return
		}

		started := job.TriggerManualSync()
		log.ForContext(r.Context()).WithFields(log.Fields{
			"job":     cronType,
			"started": started,
		}).Info("Execução manual de cron job solicitada")

		message := "Cron job iniciada com sucesso"
		if !started {
			message = "Cron job já está em execução"
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": message,
			"type":    cronType,
			"started": started,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.OfferMetricsRollup != nil {
			status[CronJobTypeOfferMetricsRollup] = services.OfferMetricsRollup.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	})
}
