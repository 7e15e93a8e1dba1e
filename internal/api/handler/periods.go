package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-goals-api/internal/domain"
	"github.com/vfg2006/sales-goals-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-goals-api/pkg/apiErrors"
)

func ListPeriods(service dashboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		periods, err := service.ListPeriods(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar períodos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar períodos", nil)
			return
		}

		if periods == nil {
			periods = []domain.Period{}
		}

		writeJSON(w, http.StatusOK, periods)
	}
}

// GetCurrentPeriod devolve o período que contém a data de hoje
func GetCurrentPeriod(service dashboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, err := service.ResolvePeriod(r.Context(), 0)
		if err != nil {
			writeDashboardError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, period)
	}
}
