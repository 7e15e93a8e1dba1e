package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/vfg2006/sales-goals-api/internal/domain"
	"github.com/vfg2006/sales-goals-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-goals-api/pkg/apiErrors"
	"github.com/vfg2006/sales-goals-api/pkg/log"
	"github.com/vfg2006/sales-goals-api/pkg/middleware"
)

// GetStoreMetrics devolve os cartões de meta da loja
func GetStoreMetrics(service dashboard.Service, inflight *dashboard.Inflight) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, storeID, periodID, ok := storeRequest(w, r)
		if !ok {
			return
		}

		subject, err := service.ResolveStore(r.Context(), storeID)
		if err != nil {
			writeDashboardError(w, r, err)
			return
		}

		key := fmt.Sprintf("%d:store:%d", claims.UserID, storeID)
		runLatest(w, r, inflight, key, func(ctx context.Context) (any, error) {
			return service.FetchAllCategoryMetrics(ctx, subject, periodID)
		})
	}
}

// GetCollaboratorMetrics devolve os cartões de meta individuais do colaborador
func GetCollaboratorMetrics(service dashboard.Service, inflight *dashboard.Inflight) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, subject, ok := collaboratorRequest(w, r, service)
		if !ok {
			return
		}

		periodID, ok := periodParam(w, r)
		if !ok {
			return
		}

		key := fmt.Sprintf("%d:collaborator:%d", claims.UserID, subject.ID)
		runLatest(w, r, inflight, key, func(ctx context.Context) (any, error) {
			return service.FetchAllCategoryMetrics(ctx, subject, periodID)
		})
	}
}

// GetDailyProgress devolve o retrato do dia de uma categoria do colaborador
func GetDailyProgress(service dashboard.Service, inflight *dashboard.Inflight) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, subject, ok := collaboratorRequest(w, r, service)
		if !ok {
			return
		}

		periodID, ok := periodParam(w, r)
		if !ok {
			return
		}

		categoryName := r.URL.Query().Get("category")
		if categoryName == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro category não fornecido", nil)
			return
		}

		key := fmt.Sprintf("%d:daily:%d:%s", claims.UserID, subject.ID, categoryName)
		runLatest(w, r, inflight, key, func(ctx context.Context) (any, error) {
			return service.GetDailyProgress(ctx, subject, categoryName, periodID)
		})
	}
}

func storeRequest(w http.ResponseWriter, r *http.Request) (*domain.Claims, int64, int64, bool) {
	claims, ok := middleware.UserFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return nil, 0, 0, false
	}

	storeID, ok := pathID(w, r, "id")
	if !ok {
		return nil, 0, 0, false
	}

	if !claims.CanViewStore(storeID) {
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para ver esta loja", nil)
		return nil, 0, 0, false
	}

	periodID, ok := periodParam(w, r)
	if !ok {
		return nil, 0, 0, false
	}

	return claims, storeID, periodID, true
}

func collaboratorRequest(w http.ResponseWriter, r *http.Request, service dashboard.Service) (*domain.Claims, domain.Subject, bool) {
	claims, ok := middleware.UserFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return nil, domain.Subject{}, false
	}

	collaboratorID, ok := pathID(w, r, "id")
	if !ok {
		return nil, domain.Subject{}, false
	}

	subject, err := service.ResolveCollaborator(r.Context(), collaboratorID)
	if err != nil {
		writeDashboardError(w, r, err)
		return nil, domain.Subject{}, false
	}

	if !claims.CanViewCollaborator(subject.ID, subject.StoreID) {
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para ver este colaborador", nil)
		return nil, domain.Subject{}, false
	}

	return claims, subject, true
}

// runLatest executa a busca registrada no Inflight. Se outra requisição da mesma
// chave começar antes do fim, o resultado desta é descartado com 409.
func runLatest(w http.ResponseWriter, r *http.Request, inflight *dashboard.Inflight, key string, fetch func(ctx context.Context) (any, error)) {
	ctx, ticket := inflight.Begin(r.Context(), key)
	defer ticket.Done()

	result, err := fetch(ctx)

	if ticket.Superseded() {
		log.ForContext(r.Context()).WithField("view", key).Info("Resultado descartado, requisição substituída")
		apiErrors.WriteError(w, apiErrors.ErrRequestSuperseded, dashboard.ErrSuperseded.Error(), nil)
		return
	}

	if err != nil {
		writeDashboardError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func writeDashboardError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, dashboard.ErrSuperseded):
		apiErrors.WriteError(w, apiErrors.ErrRequestSuperseded, err.Error(), nil)
	case errors.Is(err, dashboard.ErrSubjectNotFound),
		errors.Is(err, dashboard.ErrPeriodNotFound),
		errors.Is(err, dashboard.ErrTargetNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)
	case errors.Is(err, dashboard.ErrStoreCodeNotFound):
		apiErrors.WriteError(w, apiErrors.ErrStoreCodeMissing, err.Error(), nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error("Erro ao calcular métricas de metas")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular métricas de metas", nil)
	}
}
