package feedclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	salesfeeddomain "github.com/vfg2006/sales-goals-api/infrastructure/integrator/salesfeed/domain"
)

type QueryResponse []salesfeeddomain.SalesRow

// StatusError indica uma resposta fora de 2xx
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("requisição falhou com status: %s", e.Status)
}

func (c *SalesFeedClient) Query(ctx context.Context, endpoint string, params url.Values) (QueryResponse, error) {
	requestURL, err := c.buildURL(endpoint, params)
	if err != nil {
		return nil, err
	}

	var response QueryResponse
	attempt := 0

	operation := func() error {
		attempt++

		rows, err := c.doRequest(ctx, requestURL)
		if err != nil {
			var permanent *backoff.PermanentError
			if errors.As(err, &permanent) {
				return err
			}

			// Cancelamento do chamador não é repetido
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}

			var statusErr *StatusError
			if errors.As(err, &statusErr) && !retryableStatus(statusErr.StatusCode) {
				return backoff.Permanent(err)
			}

			logrus.WithFields(logrus.Fields{
				"endpoint": endpoint,
				"attempt":  attempt,
				"error":    err.Error(),
			}).Warn("Falha ao consultar API de vendas, tentando novamente")

			return err
		}

		response = rows
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(c.backoff(), ctx)); err != nil {
		return nil, errors.Wrapf(err, "erro ao consultar %s após %d tentativa(s)", endpoint, attempt)
	}

	return response, nil
}

func (c *SalesFeedClient) buildURL(endpoint string, params url.Values) (string, error) {
	base, err := url.Parse(c.config.URL)
	if err != nil {
		return "", errors.Wrap(err, "erro ao analisar a URL base")
	}
	base.Path = path.Join(base.Path, endpoint)

	query := base.Query()
	for key, values := range params {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	base.RawQuery = query.Encode()

	return base.String(), nil
}

func (c *SalesFeedClient) doRequest(ctx context.Context, requestURL string) (QueryResponse, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.attemptTimeout())
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Authorization", "Bearer "+c.config.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta")
	}

	rows, err := salesfeeddomain.DecodeRows(body)
	if err != nil {
		return nil, backoff.Permanent(errors.Wrap(err, "erro ao decodificar a resposta"))
	}

	return rows, nil
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
