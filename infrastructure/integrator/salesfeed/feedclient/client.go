package feedclient

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/vfg2006/sales-goals-api/internal/config"
)

type Client interface {
	Query(ctx context.Context, endpoint string, params url.Values) (QueryResponse, error)
}

type SalesFeedClient struct {
	httpClient *http.Client
	config     config.SalesFeed
	backoff    func() backoff.BackOff
}

// NewClient cria o cliente da API de vendas. O timeout é aplicado por
// tentativa, as tentativas extras seguem backoff exponencial.
func NewClient(cfg config.SalesFeed) Client {
	c := &SalesFeedClient{
		// o timeout real é controlado por contexto em cada tentativa
		httpClient: &http.Client{},
		config:     cfg,
	}
	c.backoff = c.defaultBackoff

	return c
}

func (c *SalesFeedClient) defaultBackoff() backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	if c.config.InitialBackoff > 0 {
		exp.InitialInterval = c.config.InitialBackoff
	}
	if c.config.MaxBackoff > 0 {
		exp.MaxInterval = c.config.MaxBackoff
	}
	// o limite é dado pelo número de tentativas
	exp.MaxElapsedTime = 0

	retries := c.config.MaxRetries
	if retries < 0 {
		retries = 0
	}

	return backoff.WithMaxRetries(exp, uint64(retries))
}

func (c *SalesFeedClient) attemptTimeout() time.Duration {
	if c.config.Timeout <= 0 {
		return 30 * time.Second
	}
	return c.config.Timeout
}
