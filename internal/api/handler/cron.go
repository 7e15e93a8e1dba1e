package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-goals-api/pkg/apiErrors"
)

const (
	CronJobTypeGoalRanking = "goal-ranking"
	CronJobTypeAll         = "all"
)

// ManualSyncer é implementado pelos serviços agendados
type ManualSyncer interface {
	TriggerManualSync(ctx context.Context)
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	GoalRankingService ManualSyncer
}

func (s CronJobServices) byType() map[string]ManualSyncer {
	services := map[string]ManualSyncer{}
	if s.GoalRankingService != nil {
		services[CronJobTypeGoalRanking] = s.GoalRankingService
	}
	return services
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(baseCtx context.Context, services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		available := services.byType()

		switch cronType {
		case CronJobTypeAll:
			for _, service := range available {
				service.TriggerManualSync(baseCtx)
			}
		default:
			service, ok := available[cronType]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: goal-ranking, all", nil)
				return
			}
			service.TriggerManualSync(baseCtx)
		}

		logrus.WithField("type", cronType).Info("Cron job disparada manualmente")

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
		for name, service := range services.byType() {
			status[name] = service.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
