package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/sales-goals-api/infrastructure/repository"
	"github.com/vfg2006/sales-goals-api/internal/category"
	"github.com/vfg2006/sales-goals-api/internal/domain"
	"github.com/vfg2006/sales-goals-api/internal/usecases/pacing"
	"github.com/vfg2006/sales-goals-api/internal/usecases/sales"
	"github.com/vfg2006/sales-goals-api/pkg/log"
)

type Service interface {
	FetchAllCategoryMetrics(ctx context.Context, subject domain.Subject, periodID int64) (*domain.DashboardMetrics, error)
	GetDailyProgress(ctx context.Context, subject domain.Subject, categoryName string, periodID int64) (*domain.DailyProgress, error)
	ResolveStore(ctx context.Context, storeID int64) (domain.Subject, error)
	ResolveCollaborator(ctx context.Context, collaboratorID int64) (domain.Subject, error)
	ResolvePeriod(ctx context.Context, periodID int64) (domain.Period, error)
	ListPeriods(ctx context.Context) ([]domain.Period, error)
}

// Options reúne as regras configuráveis do painel
type Options struct {
	StoreCategories      []string
	IndividualCategories []string
	TodayAbsence         pacing.TodayAbsencePolicy
}

type service struct {
	clock            pacing.Clock
	categories       *category.Table
	options          Options
	aggregator       sales.Aggregator
	periodRepo       repository.PeriodRepository
	targetRepo       repository.TargetRepository
	absenceRepo      repository.AbsenceRepository
	storeRepo        repository.StoreRepository
	collaboratorRepo repository.CollaboratorRepository
}

func NewService(
	clock pacing.Clock,
	categories *category.Table,
	options Options,
	aggregator sales.Aggregator,
	periodRepo repository.PeriodRepository,
	targetRepo repository.TargetRepository,
	absenceRepo repository.AbsenceRepository,
	storeRepo repository.StoreRepository,
	collaboratorRepo repository.CollaboratorRepository,
) Service {
	if len(options.StoreCategories) == 0 {
		options.StoreCategories = category.StoreCategories
	}
	if len(options.IndividualCategories) == 0 {
		options.IndividualCategories = category.IndividualCategories
	}
	if options.TodayAbsence == "" {
		options.TodayAbsence = pacing.TodayAbsenceExclude
	}

	return &service{
		clock:            clock,
		categories:       categories,
		options:          options,
		aggregator:       aggregator,
		periodRepo:       periodRepo,
		targetRepo:       targetRepo,
		absenceRepo:      absenceRepo,
		storeRepo:        storeRepo,
		collaboratorRepo: collaboratorRepo,
	}
}

// salesWindows são os três intervalos consultados em paralelo
type salesWindows struct {
	today       domain.DateRange
	periodToDay domain.DateRange
	toYesterday domain.DateRange
}

func windowsFor(period domain.Period, today time.Time) salesWindows {
	start, end := period.StartDate, period.EndDate
	empty := domain.DateRange{From: start, To: start.AddDate(0, 0, -1)}

	switch period.Status(today) {
	case domain.PeriodFuture:
		return salesWindows{today: empty, periodToDay: empty, toYesterday: empty}
	case domain.PeriodPast:
		whole := domain.DateRange{From: start, To: end}
		return salesWindows{today: empty, periodToDay: whole, toYesterday: whole}
	default:
		return salesWindows{
			today:       domain.DateRange{From: today, To: today},
			periodToDay: domain.DateRange{From: start, To: today},
			toYesterday: domain.DateRange{From: start, To: today.AddDate(0, 0, -1)},
		}
	}
}

func (s *service) categorySet(subject domain.Subject) []string {
	if subject.Type == domain.SubjectStore {
		return s.options.StoreCategories
	}
	return s.options.IndividualCategories
}

// FetchAllCategoryMetrics monta os cartões do painel. As três janelas de
// vendas são buscadas em paralelo, cada uma com uma consulta agrupada. Uma
// categoria que falha é zerada e marcada como degradada.
func (s *service) FetchAllCategoryMetrics(ctx context.Context, subject domain.Subject, periodID int64) (*domain.DashboardMetrics, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"subject_type": subject.Type,
		"subject_id":   subject.ID,
		"period_id":    periodID,
	})

	if subject.Type == domain.SubjectStore && subject.StoreCode == "" {
		logger.Warn("Loja sem código de filial, painel não pode ser montado")
		return nil, ErrStoreCodeNotFound
	}

	period, err := s.ResolvePeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}

	targets, err := s.targetsByCategory(ctx, subject, period.ID)
	if err != nil {
		return nil, err
	}

	categories := make([]string, 0, len(targets))
	for _, name := range s.categorySet(subject) {
		if _, ok := targets[name]; ok {
			categories = append(categories, name)
		}
	}

	result := &domain.DashboardMetrics{
		Subject: subject,
		Period:  period,
		Status:  period.Status(s.clock.Now()),
		Metrics: make([]domain.MetricData, 0, len(categories)),
	}

	if len(categories) == 0 {
		logger.Info("Nenhuma meta cadastrada para o sujeito no período")
		return result, nil
	}

	workdays, workdaysDegraded := s.resolveWorkdays(ctx, logger, subject, period)
	result.WorkdaysDegraded = workdaysDegraded

	windows := windowsFor(period, s.clock.Today())

	var (
		todayTotals, periodTotals, yesterdayTotals map[string]decimal.Decimal
		todayErrs, periodErrs, yesterdayErrs       map[string]error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		todayTotals, todayErrs = s.aggregator.SumByCategory(gctx, subject, categories, windows.today)
		return nil
	})
	g.Go(func() error {
		periodTotals, periodErrs = s.aggregator.SumByCategory(gctx, subject, categories, windows.periodToDay)
		return nil
	})
	g.Go(func() error {
		yesterdayTotals, yesterdayErrs = s.aggregator.SumByCategory(gctx, subject, categories, windows.toYesterday)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, name := range categories {
		degraded := firstError(name, todayErrs, periodErrs, yesterdayErrs)
		if degraded != nil {
			logger.WithFields(log.Fields{
				"category": name,
				"error":    degraded.Error(),
			}).Error("Falha ao buscar vendas da categoria, exibindo valores zerados")
		}

		metric := buildMetric(
			s.categories.Title(name),
			name,
			targets[name],
			amountOrZero(todayTotals, name, degraded),
			amountOrZero(periodTotals, name, degraded),
			amountOrZero(yesterdayTotals, name, degraded),
			workdays,
		)
		metric.Degraded = degraded != nil

		result.Metrics = append(result.Metrics, metric)
	}

	return result, nil
}

// buildMetric aplica o calculador de ritmo e o comparador a uma categoria
func buildMetric(title, name string, target, todaySales, periodSales, cumulativeExcludingToday decimal.Decimal, workdays pacing.Workdays) domain.MetricData {
	snapshot := pacing.Evaluate(pacing.PacingInput{
		Target:                   target,
		CumulativeExcludingToday: cumulativeExcludingToday,
		TodaySales:               todaySales,
		Workdays:                 workdays,
	})

	progress := pacing.PeriodProgressPercent(periodSales, target)

	return domain.MetricData{
		Title:                 title,
		Category:              name,
		TodaySales:            todaySales,
		PeriodSales:           periodSales,
		Target:                target,
		DailyTarget:           snapshot.DailyQuota,
		MissingToday:          snapshot.TodayShortfall,
		RemainingDays:         snapshot.WorkingDaysRemaining,
		Status:                snapshot.Status,
		PeriodProgressPercent: progress,
		TimeElapsedPercent:    snapshot.TimeElapsedPercent,
		ColorTier:             pacing.CompareToTimeElapsed(progress, snapshot.TimeElapsedPercent),
	}
}

// GetDailyProgress calcula o retrato do dia de uma única categoria. Uma janela
// de vendas que falha entra zerada e o retrato volta marcado como degradado.
func (s *service) GetDailyProgress(ctx context.Context, subject domain.Subject, categoryName string, periodID int64) (*domain.DailyProgress, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"subject_type": subject.Type,
		"subject_id":   subject.ID,
		"period_id":    periodID,
		"category":     categoryName,
	})

	if subject.Type == domain.SubjectStore && subject.StoreCode == "" {
		return nil, ErrStoreCodeNotFound
	}

	period, err := s.ResolvePeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}

	targets, err := s.targetsByCategory(ctx, subject, period.ID)
	if err != nil {
		return nil, err
	}

	target, ok := targets[categoryName]
	if !ok {
		return nil, ErrTargetNotFound
	}

	workdays, workdaysDegraded := s.resolveWorkdays(ctx, logger, subject, period)

	windows := windowsFor(period, s.clock.Today())

	var (
		todaySales, cumulativeExcludingToday decimal.Decimal
		todayErr, yesterdayErr               error
	)

	var g errgroup.Group
	g.Go(func() error {
		todaySales, todayErr = s.aggregator.SumSales(ctx, subject, categoryName, windows.today, "")
		return nil
	})
	g.Go(func() error {
		cumulativeExcludingToday, yesterdayErr = s.aggregator.SumSales(ctx, subject, categoryName, windows.toYesterday, "")
		return nil
	})
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	degraded := false
	if todayErr != nil {
		logger.WithError(todayErr).Error("Falha ao buscar vendas de hoje, exibindo valor zerado")
		todaySales = decimal.Zero
		degraded = true
	}
	if yesterdayErr != nil {
		logger.WithError(yesterdayErr).Error("Falha ao buscar vendas acumuladas, exibindo valor zerado")
		cumulativeExcludingToday = decimal.Zero
		degraded = true
	}

	return &domain.DailyProgress{
		Subject:  subject,
		Period:   period,
		Category: categoryName,
		Target:   target,
		Snapshot: pacing.Evaluate(pacing.PacingInput{
			Target:                   target,
			CumulativeExcludingToday: cumulativeExcludingToday,
			TodaySales:               todaySales,
			Workdays:                 workdays,
		}),
		Degraded:         degraded,
		WorkdaysDegraded: workdaysDegraded,
	}, nil
}

func (s *service) targetsByCategory(ctx context.Context, subject domain.Subject, periodID int64) (map[string]decimal.Decimal, error) {
	targets := make(map[string]decimal.Decimal)
	if periodID == 0 {
		// período calculado, sem metas cadastradas
		return targets, nil
	}

	list, err := s.targetRepo.ListBySubject(ctx, subject, periodID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar metas: %w", err)
	}

	for _, target := range list {
		targets[target.Category] = target.Amount
	}

	return targets, nil
}

// resolveWorkdays aplica as ausências do colaborador ou a regra de domingos
// das lojas do centro. Sem acesso às folgas o calendário segue sem ausências
// e o retorno indica a degradação.
func (s *service) resolveWorkdays(ctx context.Context, logger log.Logger, subject domain.Subject, period domain.Period) (pacing.Workdays, bool) {
	var (
		absences []time.Time
		degraded bool
	)

	if subject.Type == domain.SubjectCollaborator {
		list, err := s.absenceRepo.ListByCollaborator(ctx, subject.ID, domain.DateRange{From: period.StartDate, To: period.EndDate})
		if err != nil {
			logger.WithError(err).Error("Falha ao buscar folgas, calculando dias úteis sem ausências")
			degraded = true
		} else {
			absences = domain.AbsenceDates(list)
		}
	}

	return pacing.ResolveWorkdays(period, absences, pacing.WorkdayOptions{
		Today:                       s.clock.Today(),
		Location:                    s.clock.Location(),
		ExcludeSundaysFromRemaining: subject.IsCentro(),
		TodayAbsence:                s.options.TodayAbsence,
	}), degraded
}

func firstError(name string, errs ...map[string]error) error {
	for _, m := range errs {
		if err, ok := m[name]; ok && err != nil {
			return err
		}
	}
	return nil
}

func amountOrZero(totals map[string]decimal.Decimal, name string, degraded error) decimal.Decimal {
	if degraded != nil {
		return decimal.Zero
	}
	if amount, ok := totals[name]; ok {
		return amount
	}
	return decimal.Zero
}
