package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-goals-api/internal/usecases/export"
)

// ExportStoreMetrics baixa os cartões da loja em XLSX
func ExportStoreMetrics(service export.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, storeID, periodID, ok := storeRequest(w, r)
		if !ok {
			return
		}

		report, err := service.ExportStoreMetrics(r.Context(), storeID, periodID)
		if err != nil {
			writeDashboardError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", report.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.FileName))
		w.Header().Set("Content-Length", strconv.Itoa(len(report.Content)))
		w.WriteHeader(http.StatusOK)

		if _, err := w.Write(report.Content); err != nil {
			logrus.WithError(err).Error("Erro ao enviar planilha de metas")
		}
	}
}
