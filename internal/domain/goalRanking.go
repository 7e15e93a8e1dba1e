package domain

import "time"

type GoalRankingResponse struct {
	Period     Period            `json:"period"`
	Ranking    []GoalRankingItem `json:"ranking"`
	LastUpdate time.Time         `json:"last_update"`
}

type GoalRankingItem struct {
	ID               int64     `json:"id"`
	StoreID          int64     `json:"store_id"`
	PeriodID         int64     `json:"period_id"`
	StoreName        string    `json:"store_name"`
	PeriodSales      float64   `json:"period_sales"`
	Target           float64   `json:"target"`
	ProgressPercent  float64   `json:"progress_percent"`
	Position         int       `json:"position"`
	PositionChange   int       `json:"position_change"` // Valor positivo = subiu, negativo = desceu, 0 = manteve
	PreviousPosition int       `json:"previous_position"`
	RunID            string    `json:"run_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
