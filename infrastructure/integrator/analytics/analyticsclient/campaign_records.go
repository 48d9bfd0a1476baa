package analyticsclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	analyticsdomain "github.com/vfg2006/campaign-analytics-api/infrastructure/integrator/analytics/domain"
)

func (c *AnalyticsClient) GetCampaignRecords(ctx context.Context, endpoint string) (*analyticsdomain.CampaignResponse, error) {
	// Validar a URL da requisição.
	if _, err := url.ParseRequestURI(endpoint); err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL do endpoint")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	// Verificar o código de status da resposta.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("requisição para %s falhou com status: %s", endpoint, resp.Status)
	}

	var response analyticsdomain.CampaignResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta")
	}

	return &response, nil
}
