package pacing

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-goals-api/internal/domain"
	"github.com/vfg2006/sales-goals-api/pkg/utils"
)

// ComputeDailyQuota replaneja a cota do dia: o que falta vender dividido pelos
// dias úteis restantes. Arredondada em centavos; zero com período encerrado.
func ComputeDailyQuota(periodTarget, cumulativeExcludingToday decimal.Decimal, daysRemaining int) decimal.Decimal {
	if daysRemaining <= 0 {
		return decimal.Zero
	}

	remaining := decimal.Max(decimal.Zero, periodTarget.Sub(cumulativeExcludingToday))

	return remaining.Div(decimal.NewFromInt(int64(daysRemaining))).Round(2)
}

// TodayShortfall é quanto ainda falta vender hoje para bater a cota
func TodayShortfall(dailyQuota, todaySales decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Zero, dailyQuota.Sub(todaySales))
}

// DailyProgressPercent não é limitado a 100
func DailyProgressPercent(dailyQuota, todaySales decimal.Decimal) float64 {
	return utils.Percent(todaySales, dailyQuota)
}

// ClassifyDaily classifica o dia. Cota zero (meta do período já batida) é sempre pendente.
func ClassifyDaily(dailyQuota, todaySales decimal.Decimal) domain.DailyStatus {
	if !dailyQuota.IsPositive() {
		return domain.StatusPending
	}

	switch todaySales.Cmp(dailyQuota) {
	case -1:
		return domain.StatusPending
	case 0:
		return domain.StatusReached
	default:
		return domain.StatusExceeded
	}
}

// PeriodProgressPercent preenche a barra de progresso do período, limitado a [0, 100]
func PeriodProgressPercent(cumulativeIncludingToday, periodTarget decimal.Decimal) float64 {
	if !periodTarget.IsPositive() {
		return 0
	}

	p := utils.Percent(cumulativeIncludingToday, periodTarget)
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}

type PacingInput struct {
	Target                   decimal.Decimal
	CumulativeExcludingToday decimal.Decimal
	TodaySales               decimal.Decimal
	Workdays                 Workdays
}

// Evaluate monta o retrato do dia a partir da meta, das vendas e do calendário
func Evaluate(in PacingInput) domain.DailyProgressSnapshot {
	quota := ComputeDailyQuota(in.Target, in.CumulativeExcludingToday, in.Workdays.DaysRemaining)

	return domain.DailyProgressSnapshot{
		DailyQuota:           quota,
		TodaySales:           in.TodaySales,
		TodayShortfall:       TodayShortfall(quota, in.TodaySales),
		TotalWorkingDays:     in.Workdays.Total(),
		WorkingDaysRemaining: in.Workdays.DaysRemaining,
		DailyProgressPercent: DailyProgressPercent(quota, in.TodaySales),
		TimeElapsedPercent:   TimeElapsedPercent(in.Workdays.DaysElapsed, in.Workdays.Total()),
		Status:               ClassifyDaily(quota, in.TodaySales),
	}
}
