package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/sales-goals-api/internal/domain"
	"github.com/vfg2006/sales-goals-api/internal/usecases/authenticating"
	authmocks "github.com/vfg2006/sales-goals-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/sales-goals-api/pkg/log"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name       string
		path       string
		header     string
		setup      func(auth *authmocks.MockAuthenticator)
		wantStatus int
	}{
		{
			name:       "Rota pública não exige token",
			path:       "/healthcheck",
			setup:      func(auth *authmocks.MockAuthenticator) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Sem cabeçalho Authorization",
			path:       "/v1/periods",
			setup:      func(auth *authmocks.MockAuthenticator) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Cabeçalho sem Bearer",
			path:       "/v1/periods",
			header:     "Basic abc",
			setup:      func(auth *authmocks.MockAuthenticator) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "Token expirado",
			path:   "/v1/periods",
			header: "Bearer velho",
			setup: func(auth *authmocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("velho").Return(nil, authenticating.ErrExpiredToken)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "Token válido",
			path:   "/v1/periods",
			header: "Bearer bom",
			setup: func(auth *authmocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("bom").Return(&domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := authmocks.NewMockAuthenticator(ctrl)
			tt.setup(auth)

			var gotClaims *domain.Claims
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotClaims, _ = UserFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(auth)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.header == "Bearer bom" {
				require.NotNil(t, gotClaims)
				assert.Equal(t, int64(1), gotClaims.UserID)
			}
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name       string
		claims     *domain.Claims
		wantStatus int
	}{
		{"Sem usuário no contexto", nil, http.StatusUnauthorized},
		{"Colaborador em rota de gerente", &domain.Claims{UserID: 3, UserRoleID: domain.RoleCollaborator}, http.StatusForbidden},
		{"Gerente", &domain.Claims{UserID: 2, UserRoleID: domain.RoleManager}, http.StatusOK},
		{"Administrador", &domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/stores/1/metrics", nil)
			if tt.claims != nil {
				req = req.WithContext(WithUser(req.Context(), tt.claims))
			}
			rec := httptest.NewRecorder()

			AdminOrManager()(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler())

	t.Run("Origem liberada", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/periods", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Origem desconhecida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/periods", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight responde sem chamar o handler", func(t *testing.T) {
		called := false
		preflight := Cors(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))

		rec := httptest.NewRecorder()
		preflight.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/v1/periods", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, called)
	})
}

func TestLoggingAndPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware()(LogPanicMiddleware()(panicking)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/periods", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(correlationHeader))
}
