package salesfeed

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	salesfeeddomain "github.com/vfg2006/sales-goals-api/infrastructure/integrator/salesfeed/domain"
	"github.com/vfg2006/sales-goals-api/infrastructure/integrator/salesfeed/feedclient"
	feedclientmocks "github.com/vfg2006/sales-goals-api/infrastructure/integrator/salesfeed/feedclient/mocks"
	"github.com/vfg2006/sales-goals-api/internal/config"
	"github.com/vfg2006/sales-goals-api/internal/usecases/pacing"
)

func TestGetSalesByGroup(t *testing.T) {
	start := time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		params        salesfeeddomain.SalesByGroupParams
		expectedQuery url.Values
		clientErr     error
		expectError   bool
	}{
		{
			name: "com filtros de grupo e filial",
			params: salesfeeddomain.SalesByGroupParams{
				StartDate:  start,
				EndDate:    end,
				GroupCodes: []string{"22", "46"},
				StoreCodes: []string{"12"},
			},
			expectedQuery: url.Values{
				"dataIni":       {"2024-01-21"},
				"dataFim":       {"2024-02-10"},
				"filtroGrupos":  {"22,46"},
				"filtroFiliais": {"12"},
				"groupBy":       {salesfeeddomain.GroupByStoreSellerGroup},
				"orderBy":       {salesfeeddomain.OrderBySeller},
			},
		},
		{
			name: "todos os grupos",
			params: salesfeeddomain.SalesByGroupParams{
				StartDate: start,
				EndDate:   start,
				GroupBy:   "CDFIL",
				OrderBy:   "CDFIL",
			},
			expectedQuery: url.Values{
				"dataIni": {"2024-01-21"},
				"dataFim": {"2024-01-21"},
				"groupBy": {"CDFIL"},
				"orderBy": {"CDFIL"},
			},
		},
		{
			name: "erro do cliente",
			params: salesfeeddomain.SalesByGroupParams{
				StartDate: start,
				EndDate:   start,
			},
			expectedQuery: url.Values{
				"dataIni": {"2024-01-21"},
				"dataFim": {"2024-01-21"},
				"groupBy": {salesfeeddomain.GroupByStoreSellerGroup},
				"orderBy": {salesfeeddomain.OrderBySeller},
			},
			clientErr:   errors.New("timeout"),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := feedclientmocks.NewMockClient(ctrl)
			client.EXPECT().
				Query(gomock.Any(), "vendas/funcionarios", tt.expectedQuery).
				Return(feedclient.QueryResponse{{StoreCode: "12"}}, tt.clientErr)

			service := New(config.SalesFeed{Endpoint: "vendas/funcionarios"}, client, pacing.NewClock(time.UTC))

			rows, err := service.GetSalesByGroup(context.Background(), tt.params)
			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, rows)
				return
			}

			require.NoError(t, err)
			assert.Len(t, rows, 1)
		})
	}
}

func TestCheckConnection(t *testing.T) {
	// 01:30 UTC de 10/02 ainda é 09/02 em UTC-3
	brt := time.FixedZone("BRT", -3*60*60)
	clock := pacing.FixedClock(time.Date(2024, 2, 10, 1, 30, 0, 0, time.UTC), brt)

	tests := []struct {
		name      string
		clientErr error
		wantOK    bool
	}{
		{name: "conexão válida", wantOK: true},
		{name: "token inválido", clientErr: errors.New("status 401"), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := feedclientmocks.NewMockClient(ctrl)
			client.EXPECT().
				Query(gomock.Any(), "vendas/funcionarios", url.Values{
					"dataIni": {"2024-02-09"},
					"dataFim": {"2024-02-09"},
					"groupBy": {salesfeeddomain.GroupByStoreSellerGroup},
					"orderBy": {salesfeeddomain.OrderBySeller},
				}).
				Return(feedclient.QueryResponse{}, tt.clientErr)

			service := New(config.SalesFeed{Endpoint: "vendas/funcionarios"}, client, clock)

			ok, err := service.CheckConnection(context.Background())
			assert.Equal(t, tt.wantOK, ok)
			if tt.clientErr != nil {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
