package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-goals-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-goals-api/pkg/apiErrors"
)

// GetGoalRanking retorna o ranking das lojas pelo progresso da meta geral
func GetGoalRanking(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		periodID, ok := periodParam(w, r)
		if !ok {
			return
		}

		goalRanking, err := service.GetGoalRanking(r.Context(), periodID)
		if err != nil {
			if errors.Is(err, ranking.ErrPeriodNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Período não encontrado", nil)
				return
			}
			logrus.WithError(err).Error("Erro ao buscar ranking de metas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar ranking de metas", nil)
			return
		}

		writeJSON(w, http.StatusOK, goalRanking)
	}
}
