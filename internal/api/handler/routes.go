package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/sales-goals-api/internal/api/handler/router"
	"github.com/vfg2006/sales-goals-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-goals-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-goals-api/internal/usecases/export"
	"github.com/vfg2006/sales-goals-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-goals-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Periods(service dashboard.Service) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/periods",
			Method:      http.MethodGet,
			Handler:     ListPeriods(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/periods/current",
			Method:      http.MethodGet,
			Handler:     GetCurrentPeriod(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Metrics(service dashboard.Service, inflight *dashboard.Inflight) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/stores/:id/metrics",
			Method:      http.MethodGet,
			Handler:     GetStoreMetrics(service, inflight),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/collaborators/:id/metrics",
			Method:      http.MethodGet,
			Handler:     GetCollaboratorMetrics(service, inflight),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/collaborators/:id/daily-progress",
			Method:      http.MethodGet,
			Handler:     GetDailyProgress(service, inflight),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Export(service export.Exporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/stores/:id/metrics/export",
			Method:      http.MethodGet,
			Handler:     ExportStoreMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}

func GoalRanking(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ranking/stores",
			Method:      http.MethodGet,
			Handler:     GetGoalRanking(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}

func CronJobs(ctx context.Context, services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(ctx, services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
