package analyticsclient

import (
	"context"
	"net/http"
	"time"

	analyticsdomain "github.com/vfg2006/campaign-analytics-api/infrastructure/integrator/analytics/domain"
	"github.com/vfg2006/campaign-analytics-api/internal/config"
)

type Client interface {
	GetCampaignRecords(ctx context.Context, endpoint string) (*analyticsdomain.CampaignResponse, error)
}

type AnalyticsClient struct {
	httpClient *http.Client
}

// NewClient cria o cliente HTTP dos endpoints de análise de campanhas.
// Timeout zero significa sem limite.
func NewClient(cfg *config.Config) Client {
	return &AnalyticsClient{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Analytics.TimeoutSeconds) * time.Second,
		},
	}
}
