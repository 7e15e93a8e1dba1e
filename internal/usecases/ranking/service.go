package ranking

import (
	"context"
	"errors"
	"fmt"

	"github.com/vfg2006/sales-goals-api/infrastructure/repository"
	"github.com/vfg2006/sales-goals-api/internal/domain"
	"github.com/vfg2006/sales-goals-api/internal/usecases/pacing"
)

var ErrPeriodNotFound = errors.New("período não encontrado")

type RankingService interface {
	GetGoalRanking(ctx context.Context, periodID int64) (*domain.GoalRankingResponse, error)
}

type GoalRankingService struct {
	clock                 pacing.Clock
	PeriodRepository      repository.PeriodRepository
	GoalRankingRepository repository.GoalRankingRepository
}

func NewGoalRankingService(clock pacing.Clock, periodRepository repository.PeriodRepository, goalRankingRepository repository.GoalRankingRepository) RankingService {
	return &GoalRankingService{
		clock:                 clock,
		PeriodRepository:      periodRepository,
		GoalRankingRepository: goalRankingRepository,
	}
}

// GetGoalRanking devolve o último ranking gravado. periodID zero usa o período de hoje.
func (s *GoalRankingService) GetGoalRanking(ctx context.Context, periodID int64) (*domain.GoalRankingResponse, error) {
	var (
		period *domain.Period
		err    error
	)

	if periodID == 0 {
		period, err = s.PeriodRepository.GetByDate(ctx, s.clock.Today())
	} else {
		period, err = s.PeriodRepository.GetByID(ctx, periodID)
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar período do ranking: %w", err)
	}
	if period == nil {
		return nil, ErrPeriodNotFound
	}

	items, lastUpdate, err := s.GoalRankingRepository.GetGoalRanking(ctx, period.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar ranking de metas: %w", err)
	}

	if items == nil {
		items = []domain.GoalRankingItem{}
	}

	return &domain.GoalRankingResponse{
		Period:     *period,
		Ranking:    items,
		LastUpdate: lastUpdate,
	}, nil
}
