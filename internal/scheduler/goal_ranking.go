// Package scheduler contém os serviços de agendamento
package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/sales-goals-api/infrastructure/repository"
	"github.com/vfg2006/sales-goals-api/internal/category"
	"github.com/vfg2006/sales-goals-api/internal/config"
	"github.com/vfg2006/sales-goals-api/internal/domain"
	"github.com/vfg2006/sales-goals-api/internal/usecases/pacing"
	"github.com/vfg2006/sales-goals-api/internal/usecases/sales"
	"github.com/vfg2006/sales-goals-api/pkg/utils"
)

const runIDLength = 10

type GoalRankingConfig struct {
	CronSchedule      string
	SyncEnabled       bool
	MaxConcurrentJobs int
}

// GoalRankingService ranqueia as lojas pelo progresso da meta geral no período atual
type GoalRankingService struct {
	scheduler           *gocron.Scheduler
	clock               pacing.Clock
	storeRepo           repository.StoreRepository
	periodRepo          repository.PeriodRepository
	targetRepo          repository.TargetRepository
	rankingRepo         repository.GoalRankingRepository
	aggregator          sales.Aggregator
	config              GoalRankingConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRunID           string
}

func NewGoalRankingService(
	clock pacing.Clock,
	storeRepo repository.StoreRepository,
	periodRepo repository.PeriodRepository,
	targetRepo repository.TargetRepository,
	rankingRepo repository.GoalRankingRepository,
	aggregator sales.Aggregator,
	cfg *config.Config,
) *GoalRankingService {
	rankingConfig := GoalRankingConfig{
		CronSchedule:      cfg.GoalRanking.CronSchedule,
		SyncEnabled:       cfg.GoalRanking.SyncEnabled,
		MaxConcurrentJobs: cfg.GoalRanking.MaxConcurrentJobs,
	}

	if rankingConfig.MaxConcurrentJobs <= 0 {
		rankingConfig.MaxConcurrentJobs = 1
	}

	scheduler := gocron.NewScheduler(clock.Location())

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       rankingConfig.CronSchedule,
		"max_concurrent_jobs": rankingConfig.MaxConcurrentJobs,
	}).Info("Configuração do agendador do ranking de metas carregada")

	return &GoalRankingService{
		scheduler:   scheduler,
		clock:       clock,
		storeRepo:   storeRepo,
		periodRepo:  periodRepo,
		targetRepo:  targetRepo,
		rankingRepo: rankingRepo,
		aggregator:  aggregator,
		config:      rankingConfig,
	}
}

func (s *GoalRankingService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron do ranking de metas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do ranking de metas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.UpdateGoalRanking(ctx); err != nil {
			logrus.WithError(err).Error("Erro na atualização do ranking de metas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do ranking de metas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do ranking de metas")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *GoalRankingService) UpdateGoalRanking(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Atualização do ranking de metas já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.clock.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.clock.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando atualização do ranking de metas")

	today := s.clock.Today()

	period, err := s.periodRepo.GetByDate(ctx, today)
	if err != nil {
		return fmt.Errorf("erro ao buscar período atual: %w", err)
	}
	if period == nil {
		logrus.WithField("date", today.Format(time.DateOnly)).Info("Nenhum período cadastrado para hoje, ranking não atualizado")
		return nil
	}

	stores, err := s.getRankableStores(ctx)
	if err != nil {
		return err
	}

	if _, err := s.processGoalRankingWithDate(ctx, stores, *period, today); err != nil {
		return err
	}

	logrus.Info("Atualização do ranking de metas concluída")

	return nil
}

// getRankableStores busca as lojas ativas com código de filial
func (s *GoalRankingService) getRankableStores(ctx context.Context) ([]domain.Store, error) {
	stores, err := s.storeRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar lojas ativas: %w", err)
	}

	rankable := make([]domain.Store, 0, len(stores))
	for _, store := range stores {
		if store.Code == "" {
			logrus.WithField("store_id", store.ID).Warn("Loja sem código de filial fora do ranking de metas")
			continue
		}
		rankable = append(rankable, store)
	}

	logrus.WithFields(logrus.Fields{
		"stores": len(rankable),
	}).Info("Lojas encontradas para o ranking de metas")

	return rankable, nil
}

// processGoalRankingWithDate calcula o progresso de cada loja até a data,
// ordena e grava o ranking com a variação de posição
func (s *GoalRankingService) processGoalRankingWithDate(ctx context.Context, stores []domain.Store, period domain.Period, processingDate time.Time) ([]*domain.GoalRankingItem, error) {
	targets, err := s.targetRepo.ListStoreGeneralTargets(ctx, period.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar metas das lojas: %w", err)
	}

	runID, err := utils.GenerateID(runIDLength)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id da execução: %w", err)
	}

	end := period.EndDate
	if processingDate.Before(end) {
		end = processingDate
	}
	dateRange := domain.DateRange{From: period.StartDate, To: end}

	var mu sync.Mutex
	updatedRankings := make([]*domain.GoalRankingItem, 0, len(stores))
	rankingsBeforeUpdate := make(map[int64]*domain.GoalRankingItem)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.MaxConcurrentJobs)

	for _, store := range stores {
		target, ok := targets[store.ID]
		if !ok || !target.IsPositive() {
			logrus.WithField("store_id", store.ID).Debug("Loja sem meta geral no período fora do ranking")
			continue
		}

		g.Go(func() error {
			previous, err := s.rankingRepo.GetByStoreID(gctx, store.ID, period.ID)
			if err != nil {
				logrus.WithError(err).WithField("store_id", store.ID).Error("Erro ao buscar ranking anterior da loja")
			}

			periodSales, err := s.aggregator.SumSales(gctx, store.Subject(), category.Geral, dateRange, "")
			if err != nil {
				logrus.WithError(err).WithField("store_id", store.ID).Error("Erro ao buscar vendas da loja para o ranking")
				return nil
			}

			item := &domain.GoalRankingItem{
				StoreID:         store.ID,
				PeriodID:        period.ID,
				StoreName:       store.Name,
				PeriodSales:     periodSales.InexactFloat64(),
				Target:          target.InexactFloat64(),
				ProgressPercent: progressPercent(periodSales, target),
				RunID:           runID,
			}

			mu.Lock()
			defer mu.Unlock()

			updatedRankings = append(updatedRankings, item)
			if previous != nil {
				rankingsBeforeUpdate[store.ID] = previous
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	updatePositions(updatedRankings, rankingsBeforeUpdate)

	if err := s.rankingRepo.SaveOrUpdateGoalRanking(ctx, updatedRankings); err != nil {
		logrus.WithError(err).Error("Erro ao salvar ranking de metas atualizado")
		return updatedRankings, err
	}

	s.syncMutex.Lock()
	s.lastRunID = runID
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"run_id": runID,
		"stores": len(updatedRankings),
	}).Info("Ranking de metas atualizado")

	return updatedRankings, nil
}

// progressPercent não é limitado a 100 para desempatar lojas acima da meta
func progressPercent(periodSales, target decimal.Decimal) float64 {
	return utils.Percent(periodSales, target)
}

func updatePositions(
	updatedRankings []*domain.GoalRankingItem,
	rankingsBeforeUpdate map[int64]*domain.GoalRankingItem,
) {
	sort.SliceStable(updatedRankings, func(i, j int) bool {
		a, b := updatedRankings[i], updatedRankings[j]
		if a.ProgressPercent != b.ProgressPercent {
			return a.ProgressPercent > b.ProgressPercent
		}
		if a.PeriodSales != b.PeriodSales {
			return a.PeriodSales > b.PeriodSales
		}
		return a.StoreID < b.StoreID
	})

	for i, ranking := range updatedRankings {
		ranking.Position = i + 1

		rankingBefore, exists := rankingsBeforeUpdate[ranking.StoreID]
		if exists && rankingBefore.Position > 0 {
			ranking.PositionChange = rankingBefore.Position - ranking.Position
			ranking.PreviousPosition = rankingBefore.Position
		}
	}
}

// TriggerManualSync inicia manualmente uma atualização do ranking de metas
func (s *GoalRankingService) TriggerManualSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização do ranking de metas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual do ranking de metas")
	go func() {
		if err := s.UpdateGoalRanking(ctx); err != nil {
			logrus.WithError(err).Error("Erro na atualização manual do ranking de metas")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *GoalRankingService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_run_id":            s.lastRunID,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
