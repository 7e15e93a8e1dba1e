// Package export gera a planilha com os cartões de meta de uma loja
package export

import (
	"bytes"
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/sales-goals-api/internal/domain"
	"github.com/vfg2006/sales-goals-api/internal/usecases/dashboard"
)

const (
	sheetName      = "Metas"
	headerRow      = 5
	colorPrimary   = "#1F4E79"
	dateLayout     = "02/01/2006"
	moneyFormat    = `"R$" #,##0.00`
	percentFormat  = `0.00"%"`
	contentTypeXLS = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var headers = []string{
	"Categoria",
	"Venda hoje",
	"Venda no período",
	"Meta",
	"Meta do dia",
	"Falta hoje",
	"Dias restantes",
	"Status do dia",
	"% do período",
	"% do tempo",
	"Situação",
}

var tierLabels = map[domain.ColorTier]string{
	domain.TierAhead:  "Adiantado",
	domain.TierNear:   "Próximo",
	domain.TierBehind: "Atrasado",
}

// Report é o arquivo pronto para download
type Report struct {
	FileName    string
	ContentType string
	Content     []byte
}

type Exporter interface {
	ExportStoreMetrics(ctx context.Context, storeID, periodID int64) (*Report, error)
}

type Service struct {
	dashboard dashboard.Service
}

func NewService(dashboardService dashboard.Service) Exporter {
	return &Service{dashboard: dashboardService}
}

func (s *Service) ExportStoreMetrics(ctx context.Context, storeID, periodID int64) (*Report, error) {
	subject, err := s.dashboard.ResolveStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	metrics, err := s.dashboard.FetchAllCategoryMetrics(ctx, subject, periodID)
	if err != nil {
		return nil, err
	}

	f, err := BuildMetricsWorkbook(metrics)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar planilha de metas")
		}
	}()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("erro ao gerar planilha de metas: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"store_id":  storeID,
		"period_id": metrics.Period.ID,
		"metrics":   len(metrics.Metrics),
	}).Info("Planilha de metas gerada")

	return &Report{
		FileName:    fmt.Sprintf("metas_loja_%d_periodo_%d.xlsx", subject.ID, metrics.Period.ID),
		ContentType: contentTypeXLS,
		Content:     buf.Bytes(),
	}, nil
}

// BuildMetricsWorkbook monta a planilha com um cartão por linha
func BuildMetricsWorkbook(metrics *domain.DashboardMetrics) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("erro ao renomear aba da planilha: %w", err)
	}

	styles, err := newWorkbookStyles(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	lastCol, _ := excelize.ColumnNumberToName(len(headers))

	f.SetCellValue(sheetName, "A1", fmt.Sprintf("Metas - %s", metrics.Subject.Name))
	f.MergeCell(sheetName, "A1", lastCol+"1")
	f.SetCellStyle(sheetName, "A1", lastCol+"1", styles.title)

	f.SetCellValue(sheetName, "A2", fmt.Sprintf("Período: %s (%s a %s)",
		metrics.Period.Label,
		metrics.Period.StartDate.Format(dateLayout),
		metrics.Period.EndDate.Format(dateLayout),
	))
	f.MergeCell(sheetName, "A2", lastCol+"2")

	f.SetCellValue(sheetName, "A3", fmt.Sprintf("Situação do período: %s", metrics.Status))

	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		f.SetCellValue(sheetName, cell, header)
	}
	f.SetCellStyle(sheetName, "A5", fmt.Sprintf("%s%d", lastCol, headerRow), styles.header)

	for i, metric := range metrics.Metrics {
		row := headerRow + 1 + i
		values := []any{
			metric.Title,
			metric.TodaySales.InexactFloat64(),
			metric.PeriodSales.InexactFloat64(),
			metric.Target.InexactFloat64(),
			metric.DailyTarget.InexactFloat64(),
			metric.MissingToday.InexactFloat64(),
			metric.RemainingDays,
			string(metric.Status),
			metric.PeriodProgressPercent,
			metric.TimeElapsedPercent,
			tierLabel(metric),
		}

		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				f.Close()
				return nil, fmt.Errorf("erro ao preencher célula %s: %w", cell, err)
			}
		}

		f.SetCellStyle(sheetName, fmt.Sprintf("B%d", row), fmt.Sprintf("F%d", row), styles.money)
		f.SetCellStyle(sheetName, fmt.Sprintf("I%d", row), fmt.Sprintf("J%d", row), styles.percent)
	}

	f.SetColWidth(sheetName, "A", "A", 28)
	f.SetColWidth(sheetName, "B", lastCol, 16)

	return f, nil
}

func tierLabel(metric domain.MetricData) string {
	if metric.Degraded {
		return "Indisponível"
	}
	if label, ok := tierLabels[metric.ColorTier]; ok {
		return label
	}
	return string(metric.ColorTier)
}

type workbookStyles struct {
	title   int
	header  int
	money   int
	percent int
}

func newWorkbookStyles(f *excelize.File) (workbookStyles, error) {
	var (
		styles workbookStyles
		err    error
	)

	moneyFmt := moneyFormat
	percentFmt := percentFormat

	styles.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: colorPrimary},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return styles, fmt.Errorf("erro ao criar estilo do título: %w", err)
	}

	styles.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{colorPrimary}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border: []excelize.Border{
			{Type: "bottom", Color: "#000000", Style: 1},
		},
	})
	if err != nil {
		return styles, fmt.Errorf("erro ao criar estilo do cabeçalho: %w", err)
	}

	styles.money, err = f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt})
	if err != nil {
		return styles, fmt.Errorf("erro ao criar estilo monetário: %w", err)
	}

	styles.percent, err = f.NewStyle(&excelize.Style{CustomNumFmt: &percentFmt})
	if err != nil {
		return styles, fmt.Errorf("erro ao criar estilo de percentual: %w", err)
	}

	return styles, nil
}
