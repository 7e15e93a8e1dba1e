package salesfeed

import (
	"context"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	salesfeeddomain "github.com/vfg2006/sales-goals-api/infrastructure/integrator/salesfeed/domain"
	"github.com/vfg2006/sales-goals-api/infrastructure/integrator/salesfeed/feedclient"
	"github.com/vfg2006/sales-goals-api/internal/config"
	"github.com/vfg2006/sales-goals-api/internal/usecases/pacing"
)

type SalesFeedIntegrator interface {
	GetSalesByGroup(ctx context.Context, params salesfeeddomain.SalesByGroupParams) ([]salesfeeddomain.SalesRow, error)
	CheckConnection(ctx context.Context) (bool, error)
}

type SalesFeedService struct {
	cfg    config.SalesFeed
	clock  pacing.Clock
	Client feedclient.Client
}

func New(cfg config.SalesFeed, client feedclient.Client, clock pacing.Clock) SalesFeedIntegrator {
	return &SalesFeedService{
		cfg:    cfg,
		clock:  clock,
		Client: client,
	}
}

func (s *SalesFeedService) GetSalesByGroup(ctx context.Context, params salesfeeddomain.SalesByGroupParams) ([]salesfeeddomain.SalesRow, error) {
	query := url.Values{}
	query.Set("dataIni", params.StartDate.Format(time.DateOnly))
	query.Set("dataFim", params.EndDate.Format(time.DateOnly))

	if filter := params.GroupFilter(); filter != "" {
		query.Set("filtroGrupos", filter)
	}
	if filter := params.StoreFilter(); filter != "" {
		query.Set("filtroFiliais", filter)
	}

	groupBy := params.GroupBy
	if groupBy == "" {
		groupBy = salesfeeddomain.GroupByStoreSellerGroup
	}
	query.Set("groupBy", groupBy)

	orderBy := params.OrderBy
	if orderBy == "" {
		orderBy = salesfeeddomain.OrderBySeller
	}
	query.Set("orderBy", orderBy)

	resp, err := s.Client.Query(ctx, s.cfg.Endpoint, query)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"dataIni": query.Get("dataIni"),
		"dataFim": query.Get("dataFim"),
		"grupos":  query.Get("filtroGrupos"),
		"filiais": query.Get("filtroFiliais"),
		"linhas":  len(resp),
	}).Debug("Vendas consultadas na API do fornecedor")

	return resp, nil
}

// CheckConnection consulta o dia atual, no fuso configurado, para validar URL e token
func (s *SalesFeedService) CheckConnection(ctx context.Context) (bool, error) {
	today := s.clock.Today()

	_, err := s.GetSalesByGroup(ctx, salesfeeddomain.SalesByGroupParams{
		StartDate: today,
		EndDate:   today,
	})
	if err != nil {
		return false, err
	}

	return true, nil
}
