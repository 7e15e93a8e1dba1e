package export

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/sales-goals-api/internal/domain"
	"github.com/vfg2006/sales-goals-api/internal/usecases/dashboard"
	dashboardmocks "github.com/vfg2006/sales-goals-api/internal/usecases/dashboard/mocks"
)

func storeMetrics() *domain.DashboardMetrics {
	return &domain.DashboardMetrics{
		Subject: domain.Subject{Type: domain.SubjectStore, ID: 7, Name: "Loja Centro", StoreID: 7},
		Period: domain.Period{
			ID:        5,
			Label:     "Fevereiro",
			StartDate: time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
		},
		Status: domain.PeriodCurrent,
		Metrics: []domain.MetricData{
			{
				Title:                 "Venda geral",
				Category:              "geral",
				TodaySales:            decimal.NewFromInt(300),
				PeriodSales:           decimal.NewFromInt(6000),
				Target:                decimal.NewFromInt(12000),
				DailyTarget:           decimal.RequireFromString("545.45"),
				MissingToday:          decimal.RequireFromString("245.45"),
				RemainingDays:         11,
				Status:                domain.StatusPending,
				PeriodProgressPercent: 50,
				TimeElapsedPercent:    64.52,
				ColorTier:             domain.TierBehind,
			},
			{
				Title:     "Goodlife",
				Category:  "goodlife",
				Status:    domain.StatusPending,
				ColorTier: domain.TierBehind,
				Degraded:  true,
			},
		},
	}
}

func rawCell(t *testing.T, f *excelize.File, cell string) string {
	t.Helper()
	value, err := f.GetCellValue(sheetName, cell, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	return value
}

func TestBuildMetricsWorkbook(t *testing.T) {
	f, err := BuildMetricsWorkbook(storeMetrics())
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetName}, f.GetSheetList())
	assert.Equal(t, "Metas - Loja Centro", rawCell(t, f, "A1"))
	assert.Equal(t, "Período: Fevereiro (21/01/2024 a 20/02/2024)", rawCell(t, f, "A2"))

	assert.Equal(t, "Categoria", rawCell(t, f, "A5"))
	assert.Equal(t, "Situação", rawCell(t, f, "K5"))

	assert.Equal(t, "Venda geral", rawCell(t, f, "A6"))
	assert.Equal(t, "300", rawCell(t, f, "B6"))
	assert.Equal(t, "545.45", rawCell(t, f, "E6"))
	assert.Equal(t, "11", rawCell(t, f, "G6"))
	assert.Equal(t, "pendente", rawCell(t, f, "H6"))
	assert.Equal(t, "64.52", rawCell(t, f, "J6"))
	assert.Equal(t, "Atrasado", rawCell(t, f, "K6"))

	assert.Equal(t, "Goodlife", rawCell(t, f, "A7"))
	assert.Equal(t, "Indisponível", rawCell(t, f, "K7"))
}

func TestService_ExportStoreMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	dashboardService := dashboardmocks.NewMockService(ctrl)

	metrics := storeMetrics()
	dashboardService.EXPECT().ResolveStore(gomock.Any(), int64(7)).Return(metrics.Subject, nil)
	dashboardService.EXPECT().FetchAllCategoryMetrics(gomock.Any(), metrics.Subject, int64(0)).Return(metrics, nil)

	report, err := NewService(dashboardService).ExportStoreMetrics(context.Background(), 7, 0)
	require.NoError(t, err)

	assert.Equal(t, "metas_loja_7_periodo_5.xlsx", report.FileName)
	assert.Equal(t, contentTypeXLS, report.ContentType)

	f, err := excelize.OpenReader(bytes.NewReader(report.Content))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "Venda geral", rawCell(t, f, "A6"))
}

func TestService_ExportStoreMetrics_Errors(t *testing.T) {
	t.Run("Loja inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dashboardService := dashboardmocks.NewMockService(ctrl)
		dashboardService.EXPECT().ResolveStore(gomock.Any(), int64(9)).Return(domain.Subject{}, dashboard.ErrSubjectNotFound)

		_, err := NewService(dashboardService).ExportStoreMetrics(context.Background(), 9, 0)

		assert.ErrorIs(t, err, dashboard.ErrSubjectNotFound)
	})

	t.Run("Falha ao calcular métricas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dashboardService := dashboardmocks.NewMockService(ctrl)
		dashboardService.EXPECT().ResolveStore(gomock.Any(), int64(7)).Return(domain.Subject{ID: 7}, nil)
		dashboardService.EXPECT().FetchAllCategoryMetrics(gomock.Any(), gomock.Any(), int64(5)).Return(nil, errors.New("banco fora"))

		_, err := NewService(dashboardService).ExportStoreMetrics(context.Background(), 7, 5)

		assert.ErrorContains(t, err, "banco fora")
	})
}
