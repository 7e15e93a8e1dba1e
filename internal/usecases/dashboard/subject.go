package dashboard

import (
	"context"
	"fmt"

	"github.com/vfg2006/sales-goals-api/internal/domain"
)

func (s *service) ResolveStore(ctx context.Context, storeID int64) (domain.Subject, error) {
	store, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return domain.Subject{}, fmt.Errorf("erro ao buscar loja: %w", err)
	}
	if store == nil {
		return domain.Subject{}, ErrSubjectNotFound
	}

	return store.Subject(), nil
}

func (s *service) ResolveCollaborator(ctx context.Context, collaboratorID int64) (domain.Subject, error) {
	collaborator, err := s.collaboratorRepo.GetByID(ctx, collaboratorID)
	if err != nil {
		return domain.Subject{}, fmt.Errorf("erro ao buscar colaborador: %w", err)
	}
	if collaborator == nil {
		return domain.Subject{}, ErrSubjectNotFound
	}

	store, err := s.storeRepo.GetByID(ctx, collaborator.StoreID)
	if err != nil {
		return domain.Subject{}, fmt.Errorf("erro ao buscar loja do colaborador: %w", err)
	}
	if store == nil {
		return domain.Subject{}, ErrSubjectNotFound
	}

	return collaborator.Subject(*store), nil
}

// ResolvePeriod busca o período pelo id. Id zero significa o período atual:
// o cadastrado que contém hoje ou, na falta dele, o 21→20 calculado.
func (s *service) ResolvePeriod(ctx context.Context, periodID int64) (domain.Period, error) {
	if periodID != 0 {
		period, err := s.periodRepo.GetByID(ctx, periodID)
		if err != nil {
			return domain.Period{}, fmt.Errorf("erro ao buscar período: %w", err)
		}
		if period == nil {
			return domain.Period{}, ErrPeriodNotFound
		}
		return *period, nil
	}

	today := s.clock.Today()

	period, err := s.periodRepo.GetByDate(ctx, today)
	if err != nil {
		return domain.Period{}, fmt.Errorf("erro ao buscar período atual: %w", err)
	}
	if period == nil {
		return domain.PeriodContaining(today, s.clock.Location()), nil
	}

	return *period, nil
}

func (s *service) ListPeriods(ctx context.Context) ([]domain.Period, error) {
	periods, err := s.periodRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar períodos: %w", err)
	}
	return periods, nil
}
