package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/sales-goals-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-goals-api/internal/category"
	"github.com/vfg2006/sales-goals-api/internal/domain"
	"github.com/vfg2006/sales-goals-api/internal/usecases/pacing"
	salesmocks "github.com/vfg2006/sales-goals-api/internal/usecases/sales/mocks"
)

type goalRankingFixture struct {
	service     *GoalRankingService
	storeRepo   *mocks.MockStoreRepository
	periodRepo  *mocks.MockPeriodRepository
	targetRepo  *mocks.MockTargetRepository
	rankingRepo *mocks.MockGoalRankingRepository
	aggregator  *salesmocks.MockAggregator
}

func newGoalRankingFixture(t *testing.T) *goalRankingFixture {
	ctrl := gomock.NewController(t)

	f := &goalRankingFixture{
		storeRepo:   mocks.NewMockStoreRepository(ctrl),
		periodRepo:  mocks.NewMockPeriodRepository(ctrl),
		targetRepo:  mocks.NewMockTargetRepository(ctrl),
		rankingRepo: mocks.NewMockGoalRankingRepository(ctrl),
		aggregator:  salesmocks.NewMockAggregator(ctrl),
	}

	f.service = &GoalRankingService{
		clock:       pacing.FixedClock(time.Date(2024, 2, 10, 14, 30, 0, 0, time.UTC), time.UTC),
		storeRepo:   f.storeRepo,
		periodRepo:  f.periodRepo,
		targetRepo:  f.targetRepo,
		rankingRepo: f.rankingRepo,
		aggregator:  f.aggregator,
		config: GoalRankingConfig{
			CronSchedule:      "*/30 8-22 * * *",
			MaxConcurrentJobs: 2,
		},
	}

	return f
}

func rankingPeriod() domain.Period {
	return domain.Period{
		ID:        5,
		Label:     "Fevereiro",
		StartDate: time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
	}
}

func rankingStore(id int64, name string) domain.Store {
	return domain.Store{ID: id, Name: name, Code: "10" + name[len(name)-1:], Active: true}
}

func TestGoalRankingService_processGoalRankingWithDate(t *testing.T) {
	period := rankingPeriod()
	processingDate := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	periodToDate := domain.DateRange{From: period.StartDate, To: processingDate}

	storeA := rankingStore(1, "Loja A")
	storeB := rankingStore(2, "Loja B")
	storeC := rankingStore(3, "Loja C")

	tests := []struct {
		name     string
		stores   []domain.Store
		setup    func(f *goalRankingFixture)
		validate func(t *testing.T, result []*domain.GoalRankingItem)
	}{
		{
			name:   "Loja nova sem ranking anterior - deve calcular progresso da meta",
			stores: []domain.Store{storeA},
			setup: func(f *goalRankingFixture) {
				f.targetRepo.EXPECT().ListStoreGeneralTargets(gomock.Any(), int64(5)).
					Return(map[int64]decimal.Decimal{1: decimal.NewFromInt(1000)}, nil)
				f.rankingRepo.EXPECT().GetByStoreID(gomock.Any(), int64(1), int64(5)).Return(nil, nil)
				f.aggregator.EXPECT().SumSales(gomock.Any(), storeA.Subject(), category.Geral, periodToDate, category.Source("")).
					Return(decimal.NewFromInt(600), nil)
				f.rankingRepo.EXPECT().SaveOrUpdateGoalRanking(gomock.Any(), gomock.Len(1)).Return(nil)
			},
			validate: func(t *testing.T, result []*domain.GoalRankingItem) {
				require.Len(t, result, 1)
				assert.Equal(t, int64(1), result[0].StoreID)
				assert.Equal(t, int64(5), result[0].PeriodID)
				assert.Equal(t, "Loja A", result[0].StoreName)
				assert.Equal(t, 600.0, result[0].PeriodSales)
				assert.Equal(t, 1000.0, result[0].Target)
				assert.Equal(t, 60.0, result[0].ProgressPercent)
				assert.Equal(t, 1, result[0].Position)
				assert.Equal(t, 0, result[0].PositionChange)
				assert.Equal(t, 0, result[0].PreviousPosition)
				assert.NotEmpty(t, result[0].RunID)
			},
		},
		{
			name:   "Múltiplas lojas - deve ordenar pelo progresso e calcular variação de posição",
			stores: []domain.Store{storeA, storeB, storeC},
			setup: func(f *goalRankingFixture) {
				f.targetRepo.EXPECT().ListStoreGeneralTargets(gomock.Any(), int64(5)).
					Return(map[int64]decimal.Decimal{
						1: decimal.NewFromInt(1000),
						2: decimal.NewFromInt(1000),
						3: decimal.NewFromInt(1000),
					}, nil)

				f.rankingRepo.EXPECT().GetByStoreID(gomock.Any(), int64(1), int64(5)).
					Return(&domain.GoalRankingItem{StoreID: 1, Position: 1}, nil)
				f.rankingRepo.EXPECT().GetByStoreID(gomock.Any(), int64(2), int64(5)).
					Return(&domain.GoalRankingItem{StoreID: 2, Position: 2}, nil)
				f.rankingRepo.EXPECT().GetByStoreID(gomock.Any(), int64(3), int64(5)).
					Return(&domain.GoalRankingItem{StoreID: 3, Position: 3}, nil)

				f.aggregator.EXPECT().SumSales(gomock.Any(), storeA.Subject(), category.Geral, periodToDate, gomock.Any()).
					Return(decimal.NewFromInt(500), nil)
				f.aggregator.EXPECT().SumSales(gomock.Any(), storeB.Subject(), category.Geral, periodToDate, gomock.Any()).
					Return(decimal.NewFromInt(900), nil)
				f.aggregator.EXPECT().SumSales(gomock.Any(), storeC.Subject(), category.Geral, periodToDate, gomock.Any()).
					Return(decimal.NewFromInt(1200), nil)

				f.rankingRepo.EXPECT().SaveOrUpdateGoalRanking(gomock.Any(), gomock.Len(3)).Return(nil)
			},
			validate: func(t *testing.T, result []*domain.GoalRankingItem) {
				require.Len(t, result, 3)

				// Loja C passou da meta (120%) e subiu duas posições
				assert.Equal(t, int64(3), result[0].StoreID)
				assert.Equal(t, 120.0, result[0].ProgressPercent)
				assert.Equal(t, 1, result[0].Position)
				assert.Equal(t, 2, result[0].PositionChange)
				assert.Equal(t, 3, result[0].PreviousPosition)

				assert.Equal(t, int64(2), result[1].StoreID)
				assert.Equal(t, 2, result[1].Position)
				assert.Equal(t, 0, result[1].PositionChange)

				assert.Equal(t, int64(1), result[2].StoreID)
				assert.Equal(t, 3, result[2].Position)
				assert.Equal(t, -2, result[2].PositionChange)
				assert.Equal(t, 1, result[2].PreviousPosition)

				assert.Equal(t, result[0].RunID, result[2].RunID)
			},
		},
		{
			name:   "Empate no progresso - maior venda fica na frente",
			stores: []domain.Store{storeA, storeB},
			setup: func(f *goalRankingFixture) {
				f.targetRepo.EXPECT().ListStoreGeneralTargets(gomock.Any(), int64(5)).
					Return(map[int64]decimal.Decimal{
						1: decimal.NewFromInt(1000),
						2: decimal.NewFromInt(2000),
					}, nil)
				f.rankingRepo.EXPECT().GetByStoreID(gomock.Any(), gomock.Any(), int64(5)).Return(nil, nil).Times(2)
				f.aggregator.EXPECT().SumSales(gomock.Any(), storeA.Subject(), category.Geral, periodToDate, gomock.Any()).
					Return(decimal.NewFromInt(500), nil)
				f.aggregator.EXPECT().SumSales(gomock.Any(), storeB.Subject(), category.Geral, periodToDate, gomock.Any()).
					Return(decimal.NewFromInt(1000), nil)
				f.rankingRepo.EXPECT().SaveOrUpdateGoalRanking(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, result []*domain.GoalRankingItem) {
				require.Len(t, result, 2)
				assert.Equal(t, int64(2), result[0].StoreID)
				assert.Equal(t, int64(1), result[1].StoreID)
				assert.Equal(t, result[0].ProgressPercent, result[1].ProgressPercent)
			},
		},
		{
			name:   "Loja sem meta no período - fica fora do ranking",
			stores: []domain.Store{storeA, storeB},
			setup: func(f *goalRankingFixture) {
				f.targetRepo.EXPECT().ListStoreGeneralTargets(gomock.Any(), int64(5)).
					Return(map[int64]decimal.Decimal{2: decimal.NewFromInt(1000)}, nil)
				f.rankingRepo.EXPECT().GetByStoreID(gomock.Any(), int64(2), int64(5)).Return(nil, nil)
				f.aggregator.EXPECT().SumSales(gomock.Any(), storeB.Subject(), category.Geral, periodToDate, gomock.Any()).
					Return(decimal.NewFromInt(250), nil)
				f.rankingRepo.EXPECT().SaveOrUpdateGoalRanking(gomock.Any(), gomock.Len(1)).Return(nil)
			},
			validate: func(t *testing.T, result []*domain.GoalRankingItem) {
				require.Len(t, result, 1)
				assert.Equal(t, int64(2), result[0].StoreID)
				assert.Equal(t, 25.0, result[0].ProgressPercent)
			},
		},
		{
			name:   "Erro nas vendas de uma loja - demais lojas continuam no ranking",
			stores: []domain.Store{storeA, storeB},
			setup: func(f *goalRankingFixture) {
				f.targetRepo.EXPECT().ListStoreGeneralTargets(gomock.Any(), int64(5)).
					Return(map[int64]decimal.Decimal{
						1: decimal.NewFromInt(1000),
						2: decimal.NewFromInt(1000),
					}, nil)
				f.rankingRepo.EXPECT().GetByStoreID(gomock.Any(), gomock.Any(), int64(5)).Return(nil, nil).Times(2)
				f.aggregator.EXPECT().SumSales(gomock.Any(), storeA.Subject(), category.Geral, periodToDate, gomock.Any()).
					Return(decimal.Zero, errors.New("timeout"))
				f.aggregator.EXPECT().SumSales(gomock.Any(), storeB.Subject(), category.Geral, periodToDate, gomock.Any()).
					Return(decimal.NewFromInt(100), nil)
				f.rankingRepo.EXPECT().SaveOrUpdateGoalRanking(gomock.Any(), gomock.Len(1)).Return(nil)
			},
			validate: func(t *testing.T, result []*domain.GoalRankingItem) {
				require.Len(t, result, 1)
				assert.Equal(t, int64(2), result[0].StoreID)
				assert.Equal(t, 1, result[0].Position)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newGoalRankingFixture(t)
			tt.setup(f)

			result, err := f.service.processGoalRankingWithDate(context.Background(), tt.stores, period, processingDate)

			require.NoError(t, err)
			tt.validate(t, result)
		})
	}
}

func TestGoalRankingService_processGoalRankingWithDate_PastPeriodUsesWholePeriod(t *testing.T) {
	f := newGoalRankingFixture(t)
	period := rankingPeriod()
	store := rankingStore(1, "Loja A")

	f.targetRepo.EXPECT().ListStoreGeneralTargets(gomock.Any(), int64(5)).
		Return(map[int64]decimal.Decimal{1: decimal.NewFromInt(1000)}, nil)
	f.rankingRepo.EXPECT().GetByStoreID(gomock.Any(), int64(1), int64(5)).Return(nil, nil)
	f.aggregator.EXPECT().
		SumSales(gomock.Any(), store.Subject(), category.Geral, domain.DateRange{From: period.StartDate, To: period.EndDate}, gomock.Any()).
		Return(decimal.NewFromInt(1000), nil)
	f.rankingRepo.EXPECT().SaveOrUpdateGoalRanking(gomock.Any(), gomock.Any()).Return(nil)

	result, err := f.service.processGoalRankingWithDate(context.Background(), []domain.Store{store}, period, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, 100.0, result[0].ProgressPercent)
}

func TestGoalRankingService_processGoalRankingWithDate_SaveError(t *testing.T) {
	f := newGoalRankingFixture(t)
	period := rankingPeriod()
	store := rankingStore(1, "Loja A")

	f.targetRepo.EXPECT().ListStoreGeneralTargets(gomock.Any(), int64(5)).
		Return(map[int64]decimal.Decimal{1: decimal.NewFromInt(1000)}, nil)
	f.rankingRepo.EXPECT().GetByStoreID(gomock.Any(), int64(1), int64(5)).Return(nil, nil)
	f.aggregator.EXPECT().SumSales(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(decimal.NewFromInt(10), nil)
	f.rankingRepo.EXPECT().SaveOrUpdateGoalRanking(gomock.Any(), gomock.Any()).Return(errors.New("conexão perdida"))

	_, err := f.service.processGoalRankingWithDate(context.Background(), []domain.Store{store}, period, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))

	assert.Error(t, err)
	assert.Empty(t, f.service.GetStatus()["last_run_id"])
}

func TestGoalRankingService_UpdateGoalRanking(t *testing.T) {
	t.Run("Sem período cadastrado para hoje - não atualiza", func(t *testing.T) {
		f := newGoalRankingFixture(t)
		f.periodRepo.EXPECT().GetByDate(gomock.Any(), time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)).Return(nil, nil)

		err := f.service.UpdateGoalRanking(context.Background())

		require.NoError(t, err)
		assert.False(t, f.service.GetStatus()["sync_running"].(bool))
	})

	t.Run("Erro ao buscar período - propaga o erro", func(t *testing.T) {
		f := newGoalRankingFixture(t)
		f.periodRepo.EXPECT().GetByDate(gomock.Any(), gomock.Any()).Return(nil, errors.New("banco fora"))

		err := f.service.UpdateGoalRanking(context.Background())

		assert.ErrorContains(t, err, "banco fora")
	})

	t.Run("Lojas sem código de filial ficam fora do ranking", func(t *testing.T) {
		f := newGoalRankingFixture(t)
		period := rankingPeriod()
		withCode := rankingStore(1, "Loja A")
		withoutCode := domain.Store{ID: 2, Name: "Loja B", Active: true}

		f.periodRepo.EXPECT().GetByDate(gomock.Any(), gomock.Any()).Return(&period, nil)
		f.storeRepo.EXPECT().ListActive(gomock.Any()).Return([]domain.Store{withCode, withoutCode}, nil)
		f.targetRepo.EXPECT().ListStoreGeneralTargets(gomock.Any(), int64(5)).
			Return(map[int64]decimal.Decimal{1: decimal.NewFromInt(1000), 2: decimal.NewFromInt(1000)}, nil)
		f.rankingRepo.EXPECT().GetByStoreID(gomock.Any(), int64(1), int64(5)).Return(nil, nil)
		f.aggregator.EXPECT().SumSales(gomock.Any(), withCode.Subject(), category.Geral, gomock.Any(), gomock.Any()).
			Return(decimal.NewFromInt(300), nil)
		f.rankingRepo.EXPECT().SaveOrUpdateGoalRanking(gomock.Any(), gomock.Len(1)).Return(nil)

		err := f.service.UpdateGoalRanking(context.Background())

		require.NoError(t, err)
		status := f.service.GetStatus()
		assert.NotEmpty(t, status["last_run_id"])
		assert.False(t, status["sync_running"].(bool))
	})

	t.Run("Execução em andamento - ignora nova atualização", func(t *testing.T) {
		f := newGoalRankingFixture(t)
		f.service.syncRunning = true

		err := f.service.UpdateGoalRanking(context.Background())

		require.NoError(t, err)
	})
}

func TestGoalRankingService_Start_Disabled(t *testing.T) {
	f := newGoalRankingFixture(t)

	err := f.service.Start(context.Background())

	assert.NoError(t, err)
}

func TestProgressPercent(t *testing.T) {
	assert.Equal(t, 0.0, progressPercent(decimal.NewFromInt(100), decimal.Zero))
	assert.Equal(t, 33.33, progressPercent(decimal.NewFromInt(1), decimal.NewFromInt(3)))
	assert.Equal(t, 150.0, progressPercent(decimal.NewFromInt(1500), decimal.NewFromInt(1000)))
}

func TestUpdatePositions_PreviousWithoutPosition(t *testing.T) {
	items := []*domain.GoalRankingItem{
		{StoreID: 1, ProgressPercent: 10},
		{StoreID: 2, ProgressPercent: 20},
	}
	before := map[int64]*domain.GoalRankingItem{1: {StoreID: 1, Position: 0}}

	updatePositions(items, before)

	assert.Equal(t, int64(2), items[0].StoreID)
	assert.Equal(t, 2, items[1].Position)
	assert.Equal(t, 0, items[1].PositionChange)
	assert.Equal(t, 0, items[1].PreviousPosition)
}
