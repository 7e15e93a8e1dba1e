package domain

import "github.com/shopspring/decimal"

type DailyStatus string

const (
	StatusPending  DailyStatus = "pendente"
	StatusReached  DailyStatus = "atingido"
	StatusExceeded DailyStatus = "acima"
)

type ColorTier string

const (
	TierAhead  ColorTier = "ahead"
	TierNear   ColorTier = "near"
	TierBehind ColorTier = "behind"
)

// DailyProgressSnapshot é recalculado a cada requisição e nunca persistido
type DailyProgressSnapshot struct {
	DailyQuota           decimal.Decimal `json:"daily_quota"`
	TodaySales           decimal.Decimal `json:"today_sales"`
	TodayShortfall       decimal.Decimal `json:"today_shortfall"`
	TotalWorkingDays     int             `json:"total_working_days"`
	WorkingDaysRemaining int             `json:"working_days_remaining"`
	DailyProgressPercent float64         `json:"daily_progress_percent"`
	TimeElapsedPercent   float64         `json:"time_elapsed_percent"`
	Status               DailyStatus     `json:"status"`
}

// MetricData é o cartão de uma categoria exibido no painel
type MetricData struct {
	Title                 string          `json:"title"`
	Category              string          `json:"category"`
	TodaySales            decimal.Decimal `json:"today_sales"`
	PeriodSales           decimal.Decimal `json:"period_sales"`
	Target                decimal.Decimal `json:"target"`
	DailyTarget           decimal.Decimal `json:"daily_target"`
	MissingToday          decimal.Decimal `json:"missing_today"`
	RemainingDays         int             `json:"remaining_days"`
	Status                DailyStatus     `json:"status"`
	PeriodProgressPercent float64         `json:"period_progress_percent"`
	TimeElapsedPercent    float64         `json:"time_elapsed_percent"`
	ColorTier             ColorTier       `json:"color_tier"`
	// Degraded indica que a busca de vendas da categoria falhou e os valores foram zerados
	Degraded bool `json:"degraded,omitempty"`
}

// DailyProgress é a visão de progresso diário de um colaborador em uma categoria
type DailyProgress struct {
	Subject  Subject               `json:"subject"`
	Period   Period                `json:"period"`
	Category string                `json:"category"`
	Target   decimal.Decimal       `json:"target"`
	Snapshot DailyProgressSnapshot `json:"snapshot"`
	// Degraded indica que alguma janela de vendas falhou e entrou zerada
	Degraded bool `json:"degraded,omitempty"`
	// WorkdaysDegraded indica dias úteis calculados sem as folgas
	WorkdaysDegraded bool `json:"workdays_degraded,omitempty"`
}

// DashboardMetrics agrupa os cartões de um sujeito em um período
type DashboardMetrics struct {
	Subject Subject      `json:"subject"`
	Period  Period       `json:"period"`
	Status  PeriodStatus `json:"status"`
	Metrics []MetricData `json:"metrics"`
	// WorkdaysDegraded indica dias úteis calculados sem as folgas
	WorkdaysDegraded bool `json:"workdays_degraded,omitempty"`
}
