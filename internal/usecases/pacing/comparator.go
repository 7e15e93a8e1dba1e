package pacing

import (
	"github.com/vfg2006/sales-goals-api/internal/domain"
	"github.com/vfg2006/sales-goals-api/pkg/utils"
)

const (
	aheadThreshold  = 10.0
	behindThreshold = -5.0
)

// CompareToTimeElapsed classifica o progresso contra o tempo decorrido do período
func CompareToTimeElapsed(progressPercent, timeElapsedPercent float64) domain.ColorTier {
	difference := progressPercent - timeElapsedPercent

	switch {
	case difference > aheadThreshold:
		return domain.TierAhead
	case difference >= behindThreshold:
		return domain.TierNear
	default:
		return domain.TierBehind
	}
}

// TimeElapsedPercent é a fração de dias úteis já decorridos
func TimeElapsedPercent(daysElapsed, totalWorkingDays int) float64 {
	if totalWorkingDays <= 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(float64(daysElapsed) / float64(totalWorkingDays) * 100)
}
