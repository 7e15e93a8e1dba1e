package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/sales-goals-api/internal/api/handler/router"
	"github.com/vfg2006/sales-goals-api/internal/domain"
	"github.com/vfg2006/sales-goals-api/internal/usecases/authenticating"
	authmocks "github.com/vfg2006/sales-goals-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/sales-goals-api/internal/usecases/dashboard"
	dashboardmocks "github.com/vfg2006/sales-goals-api/internal/usecases/dashboard/mocks"
	"github.com/vfg2006/sales-goals-api/internal/usecases/export"
	exportmocks "github.com/vfg2006/sales-goals-api/internal/usecases/export/mocks"
	"github.com/vfg2006/sales-goals-api/internal/usecases/ranking"
	rankingmocks "github.com/vfg2006/sales-goals-api/internal/usecases/ranking/mocks"
	"github.com/vfg2006/sales-goals-api/pkg/apiErrors"
	"github.com/vfg2006/sales-goals-api/pkg/log"
	"github.com/vfg2006/sales-goals-api/pkg/middleware"
)

func int64Ptr(v int64) *int64 { return &v }

var (
	adminClaims   = &domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}
	managerClaims = &domain.Claims{UserID: 2, UserRoleID: domain.RoleManager, UserStoreID: int64Ptr(7)}
	sellerClaims  = &domain.Claims{UserID: 3, UserRoleID: domain.RoleCollaborator, UserStoreID: int64Ptr(7), UserCollaboratorID: int64Ptr(42)}
)

func serve(routes []router.Route, claims *domain.Claims, req *http.Request) *httptest.ResponseRecorder {
	r := router.New(router.WithRoutes(routes...))
	if claims != nil {
		req = req.WithContext(middleware.WithUser(req.Context(), claims))
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func storeSubject() domain.Subject {
	return domain.Subject{Type: domain.SubjectStore, ID: 7, Name: "Loja Centro", StoreID: 7, StoreCode: "7"}
}

func sellerSubject() domain.Subject {
	return domain.Subject{Type: domain.SubjectCollaborator, ID: 42, Name: "Ana", StoreID: 7, SellerCode: "300"}
}

func TestGetStoreMetrics(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name       string
		claims     *domain.Claims
		target     string
		setup      func(svc *dashboardmocks.MockService)
		wantStatus int
		wantCode   string
	}{
		{
			name:   "Gerente da loja vê os cartões",
			claims: managerClaims,
			target: "/v1/stores/7/metrics?period=5",
			setup: func(svc *dashboardmocks.MockService) {
				svc.EXPECT().ResolveStore(gomock.Any(), int64(7)).Return(storeSubject(), nil)
				svc.EXPECT().FetchAllCategoryMetrics(gomock.Any(), storeSubject(), int64(5)).
					Return(&domain.DashboardMetrics{Subject: storeSubject(), Metrics: []domain.MetricData{{Category: "geral"}}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Gerente de outra loja",
			claims:     &domain.Claims{UserID: 9, UserRoleID: domain.RoleManager, UserStoreID: int64Ptr(8)},
			target:     "/v1/stores/7/metrics",
			setup:      func(svc *dashboardmocks.MockService) {},
			wantStatus: http.StatusForbidden,
			wantCode:   apiErrors.ErrInsufficientPrivilege,
		},
		{
			name:       "Colaborador não acessa cartões da loja",
			claims:     sellerClaims,
			target:     "/v1/stores/7/metrics",
			setup:      func(svc *dashboardmocks.MockService) {},
			wantStatus: http.StatusForbidden,
			wantCode:   apiErrors.ErrInsufficientPrivilege,
		},
		{
			name:       "Id inválido",
			claims:     adminClaims,
			target:     "/v1/stores/abc/metrics",
			setup:      func(svc *dashboardmocks.MockService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:       "Período inválido",
			claims:     adminClaims,
			target:     "/v1/stores/7/metrics?period=x",
			setup:      func(svc *dashboardmocks.MockService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:   "Loja sem código de filial",
			claims: adminClaims,
			target: "/v1/stores/7/metrics",
			setup: func(svc *dashboardmocks.MockService) {
				svc.EXPECT().ResolveStore(gomock.Any(), int64(7)).Return(storeSubject(), nil)
				svc.EXPECT().FetchAllCategoryMetrics(gomock.Any(), gomock.Any(), int64(0)).Return(nil, dashboard.ErrStoreCodeNotFound)
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   apiErrors.ErrStoreCodeMissing,
		},
		{
			name:   "Loja inexistente",
			claims: adminClaims,
			target: "/v1/stores/7/metrics",
			setup: func(svc *dashboardmocks.MockService) {
				svc.EXPECT().ResolveStore(gomock.Any(), int64(7)).Return(domain.Subject{}, dashboard.ErrSubjectNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   apiErrors.ErrResourceNotFound,
		},
		{
			name:   "Erro inesperado",
			claims: adminClaims,
			target: "/v1/stores/7/metrics",
			setup: func(svc *dashboardmocks.MockService) {
				svc.EXPECT().ResolveStore(gomock.Any(), int64(7)).Return(storeSubject(), nil)
				svc.EXPECT().FetchAllCategoryMetrics(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("banco fora"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := dashboardmocks.NewMockService(ctrl)
			tt.setup(svc)

			rec := serve(Metrics(svc, dashboard.NewInflight()), tt.claims, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestGetStoreMetrics_SupersededRequest(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	svc := dashboardmocks.NewMockService(ctrl)
	inflight := dashboard.NewInflight()
	routes := Metrics(svc, inflight)

	firstStarted := make(chan struct{})
	svc.EXPECT().ResolveStore(gomock.Any(), int64(7)).Return(storeSubject(), nil).Times(2)

	gomock.InOrder(
		svc.EXPECT().FetchAllCategoryMetrics(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, subject domain.Subject, periodID int64) (*domain.DashboardMetrics, error) {
				close(firstStarted)
				<-ctx.Done()
				return nil, context.Cause(ctx)
			}),
		svc.EXPECT().FetchAllCategoryMetrics(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&domain.DashboardMetrics{Subject: storeSubject()}, nil),
	)

	var (
		wg    sync.WaitGroup
		first *httptest.ResponseRecorder
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		first = serve(routes, managerClaims, httptest.NewRequest(http.MethodGet, "/v1/stores/7/metrics", nil))
	}()

	select {
	case <-firstStarted:
	case <-time.After(2 * time.Second):
		t.Fatal("primeira requisição não começou")
	}

	second := serve(routes, managerClaims, httptest.NewRequest(http.MethodGet, "/v1/stores/7/metrics", nil))
	wg.Wait()

	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, http.StatusConflict, first.Code)
	assert.Equal(t, apiErrors.ErrRequestSuperseded, decodeError(t, first).Code)
	assert.Equal(t, 0, inflight.Len())
}

func TestGetCollaboratorMetrics(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name       string
		claims     *domain.Claims
		setup      func(svc *dashboardmocks.MockService)
		wantStatus int
	}{
		{
			name:   "Colaborador vê os próprios números",
			claims: sellerClaims,
			setup: func(svc *dashboardmocks.MockService) {
				svc.EXPECT().ResolveCollaborator(gomock.Any(), int64(42)).Return(sellerSubject(), nil)
				svc.EXPECT().FetchAllCategoryMetrics(gomock.Any(), sellerSubject(), int64(0)).
					Return(&domain.DashboardMetrics{Subject: sellerSubject()}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "Gerente da loja do colaborador",
			claims: managerClaims,
			setup: func(svc *dashboardmocks.MockService) {
				svc.EXPECT().ResolveCollaborator(gomock.Any(), int64(42)).Return(sellerSubject(), nil)
				svc.EXPECT().FetchAllCategoryMetrics(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&domain.DashboardMetrics{Subject: sellerSubject()}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "Outro colaborador",
			claims: &domain.Claims{UserID: 4, UserRoleID: domain.RoleCollaborator, UserCollaboratorID: int64Ptr(43), UserStoreID: int64Ptr(7)},
			setup: func(svc *dashboardmocks.MockService) {
				svc.EXPECT().ResolveCollaborator(gomock.Any(), int64(42)).Return(sellerSubject(), nil)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "Colaborador inexistente",
			claims: adminClaims,
			setup: func(svc *dashboardmocks.MockService) {
				svc.EXPECT().ResolveCollaborator(gomock.Any(), int64(42)).Return(domain.Subject{}, dashboard.ErrSubjectNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := dashboardmocks.NewMockService(ctrl)
			tt.setup(svc)

			rec := serve(Metrics(svc, dashboard.NewInflight()), tt.claims, httptest.NewRequest(http.MethodGet, "/v1/collaborators/42/metrics", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestGetDailyProgress(t *testing.T) {
	log.SetupTestLogger()

	t.Run("Categoria obrigatória", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := dashboardmocks.NewMockService(ctrl)
		svc.EXPECT().ResolveCollaborator(gomock.Any(), int64(42)).Return(sellerSubject(), nil)

		rec := serve(Metrics(svc, dashboard.NewInflight()), sellerClaims, httptest.NewRequest(http.MethodGet, "/v1/collaborators/42/daily-progress", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeError(t, rec).Code)
	})

	t.Run("Meta não cadastrada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := dashboardmocks.NewMockService(ctrl)
		svc.EXPECT().ResolveCollaborator(gomock.Any(), int64(42)).Return(sellerSubject(), nil)
		svc.EXPECT().GetDailyProgress(gomock.Any(), sellerSubject(), "goodlife", int64(5)).Return(nil, dashboard.ErrTargetNotFound)

		rec := serve(Metrics(svc, dashboard.NewInflight()), sellerClaims, httptest.NewRequest(http.MethodGet, "/v1/collaborators/42/daily-progress?category=goodlife&period=5", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Retrato do dia", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := dashboardmocks.NewMockService(ctrl)
		svc.EXPECT().ResolveCollaborator(gomock.Any(), int64(42)).Return(sellerSubject(), nil)
		svc.EXPECT().GetDailyProgress(gomock.Any(), sellerSubject(), "geral", int64(0)).
			Return(&domain.DailyProgress{Category: "geral", Snapshot: domain.DailyProgressSnapshot{Status: domain.StatusReached}}, nil)

		rec := serve(Metrics(svc, dashboard.NewInflight()), sellerClaims, httptest.NewRequest(http.MethodGet, "/v1/collaborators/42/daily-progress?category=geral", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"atingido"`)
	})
}

func TestPeriods(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	svc := dashboardmocks.NewMockService(ctrl)
	svc.EXPECT().ListPeriods(gomock.Any()).Return(nil, nil)
	svc.EXPECT().ResolvePeriod(gomock.Any(), int64(0)).Return(domain.Period{}, dashboard.ErrPeriodNotFound)

	rec := serve(Periods(svc), sellerClaims, httptest.NewRequest(http.MethodGet, "/v1/periods", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = serve(Periods(svc), sellerClaims, httptest.NewRequest(http.MethodGet, "/v1/periods/current", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExportStoreMetrics(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	svc := exportmocks.NewMockExporter(ctrl)
	svc.EXPECT().ExportStoreMetrics(gomock.Any(), int64(7), int64(5)).Return(&export.Report{
		FileName:    "metas_loja_7_periodo_5.xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Content:     []byte("PK"),
	}, nil)

	rec := serve(Export(svc), managerClaims, httptest.NewRequest(http.MethodGet, "/v1/stores/7/metrics/export?period=5", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="metas_loja_7_periodo_5.xlsx"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "PK", rec.Body.String())
}

func TestGetGoalRanking(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	svc := rankingmocks.NewMockRankingService(ctrl)
	svc.EXPECT().GetGoalRanking(gomock.Any(), int64(0)).
		Return(&domain.GoalRankingResponse{Ranking: []domain.GoalRankingItem{{StoreID: 7, Position: 1}}}, nil)
	svc.EXPECT().GetGoalRanking(gomock.Any(), int64(99)).Return(nil, ranking.ErrPeriodNotFound)

	rec := serve(GoalRanking(svc), managerClaims, httptest.NewRequest(http.MethodGet, "/v1/ranking/stores", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"position":1`)

	rec = serve(GoalRanking(svc), managerClaims, httptest.NewRequest(http.MethodGet, "/v1/ranking/stores?period=99", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(GoalRanking(svc), sellerClaims, httptest.NewRequest(http.MethodGet, "/v1/ranking/stores", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestLoginAndMe(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	auth := authmocks.NewMockAuthenticator(ctrl)

	auth.EXPECT().LoginUser(gomock.Any(), "ana@loja.com", "certa").Return("token-jwt", nil)
	auth.EXPECT().LoginUser(gomock.Any(), "ana@loja.com", "errada").
		Return("", authenticating.NewUserAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, 3, "Senha incorreta"))
	auth.EXPECT().GetUserProfile(gomock.Any(), int64(3)).Return(&domain.User{ID: 3, Name: "Ana"}, nil)

	routes := Authentication(auth)

	rec := serve(routes, nil, httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(`{"email":"ana@loja.com","password":"certa"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "token-jwt")

	rec = serve(routes, nil, httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(`{"email":"ana@loja.com","password":"errada"}`)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidCredentials, decodeError(t, rec).Code)

	rec = serve(routes, nil, httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(`{`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(routes, sellerClaims, httptest.NewRequest(http.MethodGet, "/v1/me", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Ana"`)
}

type fakeSyncer struct {
	mu        sync.Mutex
	triggered int
}

func (f *fakeSyncer) TriggerManualSync(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.triggered++
}

func (f *fakeSyncer) GetStatus() map[string]any {
	return map[string]any{"sync_running": false}
}

func TestCronJobs(t *testing.T) {
	log.SetupTestLogger()

	syncer := &fakeSyncer{}
	routes := CronJobs(context.Background(), CronJobServices{GoalRankingService: syncer})

	rec := serve(routes, adminClaims, httptest.NewRequest(http.MethodPost, "/v1/cron/goal-ranking/run", nil))
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec = serve(routes, adminClaims, httptest.NewRequest(http.MethodPost, "/v1/cron/all/run", nil))
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec = serve(routes, adminClaims, httptest.NewRequest(http.MethodPost, "/v1/cron/desconhecida/run", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(routes, managerClaims, httptest.NewRequest(http.MethodPost, "/v1/cron/goal-ranking/run", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = serve(routes, adminClaims, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"goal-ranking"`)

	assert.Equal(t, 2, syncer.triggered)
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(ctx context.Context) error { return f.err }

func TestHealthcheck(t *testing.T) {
	log.SetupTestLogger()

	rec := serve(Healthcheck(fakePinger{}), nil, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(Healthcheck(fakePinger{err: errors.New("sem conexão")}), nil, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
