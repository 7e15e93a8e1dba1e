package main

import (
	"context"
	_ "time/tzdata"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-goals-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-goals-api/infrastructure/integrator/salesfeed"
	"github.com/vfg2006/sales-goals-api/infrastructure/integrator/salesfeed/feedclient"
	"github.com/vfg2006/sales-goals-api/infrastructure/repository"
	"github.com/vfg2006/sales-goals-api/internal/api"
	"github.com/vfg2006/sales-goals-api/internal/category"
	"github.com/vfg2006/sales-goals-api/internal/config"
	"github.com/vfg2006/sales-goals-api/internal/scheduler"
	"github.com/vfg2006/sales-goals-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-goals-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-goals-api/internal/usecases/export"
	"github.com/vfg2006/sales-goals-api/internal/usecases/pacing"
	"github.com/vfg2006/sales-goals-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-goals-api/internal/usecases/sales"
	"github.com/vfg2006/sales-goals-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	clock, err := pacing.LoadClock(cfg.Pacing.Timezone)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar fuso horário")
	}

	todayAbsence, err := pacing.ParseTodayAbsencePolicy(cfg.Pacing.TodayAbsencePolicy)
	if err != nil {
		logrus.WithError(err).Fatal("Erro na configuração de ausências")
	}

	categories, err := category.Build(cfg.Categories.GroupCodes, cfg.Categories.LedgerAliases)
	if err != nil {
		logrus.WithError(err).Fatal("Erro na tabela de categorias")
	}

	if cfg.Database.RunMigrations {
		if err := postgres.RunMigrations(cfg.Database); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	pgConn := pgconn(ctx, cfg.Database)

	periodRepo := repository.NewPeriodRepository(pgConn, clock.Location())
	storeRepo := repository.NewStoreRepository(pgConn)
	collaboratorRepo := repository.NewCollaboratorRepository(pgConn)
	targetRepo := repository.NewTargetRepository(pgConn)
	ledgerRepo := repository.NewSalesLedgerRepository(pgConn)
	absenceRepo := repository.NewAbsenceRepository(pgConn, clock.Location())
	userRepo := repository.NewUserRepository(pgConn)
	goalRankingRepo := repository.NewGoalRankingRepository(pgConn)

	feedClient := feedclient.NewClient(cfg.SalesFeed)
	salesFeed := salesfeed.New(cfg.SalesFeed, feedClient, clock)

	if ok, err := salesFeed.CheckConnection(ctx); !ok {
		logrus.WithError(err).Warn("API de vendas indisponível na inicialização, categorias do fornecedor serão degradadas")
	}

	aggregator := sales.NewService(categories, ledgerRepo, salesFeed)

	dashboardService := dashboard.NewService(
		clock,
		categories,
		dashboard.Options{
			StoreCategories:      category.ParseList(cfg.Categories.Store, category.StoreCategories),
			IndividualCategories: category.ParseList(cfg.Categories.Individual, category.IndividualCategories),
			TodayAbsence:         todayAbsence,
		},
		aggregator,
		periodRepo,
		targetRepo,
		absenceRepo,
		storeRepo,
		collaboratorRepo,
	)

	authenticator := authenticating.NewService(userRepo, cfg.Auth)
	exportService := export.NewService(dashboardService)
	rankingService := ranking.NewGoalRankingService(clock, periodRepo, goalRankingRepo)

	goalRankingSyncService := scheduler.NewGoalRankingService(
		clock,
		storeRepo,
		periodRepo,
		targetRepo,
		goalRankingRepo,
		aggregator,
		cfg,
	)

	if err := goalRankingSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do ranking de metas")
	} else {
		logrus.Info("Agendador do ranking de metas iniciado com sucesso")
	}

	server, err := api.New(ctx, cfg, api.Services{
		DB:              pgConn,
		Authenticator:   authenticator,
		Dashboard:       dashboardService,
		Export:          exportService,
		Ranking:         rankingService,
		GoalRankingSync: goalRankingSyncService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
