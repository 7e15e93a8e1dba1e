package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-goals-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-goals-api/internal/api/handler"
	"github.com/vfg2006/sales-goals-api/internal/api/handler/router"
	"github.com/vfg2006/sales-goals-api/internal/config"
	"github.com/vfg2006/sales-goals-api/internal/scheduler"
	"github.com/vfg2006/sales-goals-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-goals-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-goals-api/internal/usecases/export"
	"github.com/vfg2006/sales-goals-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-goals-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Services reúne as dependências expostas pela API
type Services struct {
	DB              postgres.Conn
	Authenticator   authenticating.Authenticator
	Dashboard       dashboard.Service
	Export          export.Exporter
	Ranking         ranking.RankingService
	GoalRankingSync *scheduler.GoalRankingService
}

type Server struct {
	httpServer *http.Server
	db         postgres.Conn
}

func New(ctx context.Context, config *config.Config, services Services) (*Server, error) {
	if services.Authenticator == nil || services.Dashboard == nil {
		return nil, errors.New("autenticador e serviço de painel são obrigatórios")
	}

	cronServices := handler.CronJobServices{}
	if services.GoalRankingSync != nil {
		cronServices.GoalRankingService = services.GoalRankingSync
	}

	inflight := dashboard.NewInflight()

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.DB)...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Periods(services.Dashboard)...),
		router.WithRoutes(handler.Metrics(services.Dashboard, inflight)...),
		router.WithRoutes(handler.Export(services.Export)...),
		router.WithRoutes(handler.GoalRanking(services.Ranking)...),
		router.WithRoutes(handler.CronJobs(ctx, cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
		db: services.DB,
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

// Shutdown encerra o servidor HTTP e depois a conexão com o banco
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}
	logrus.Info("Servidor HTTP desligado com sucesso")

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return fmt.Errorf("erro ao fechar conexão com o banco: %w", err)
		}
	}

	return nil
}
