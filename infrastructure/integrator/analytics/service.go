package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/integrator/analytics/analyticsclient"
	analyticsdomain "github.com/vfg2006/campaign-analytics-api/infrastructure/integrator/analytics/domain"
	"github.com/vfg2006/campaign-analytics-api/internal/config"
	"golang.org/x/sync/errgroup"
)

// ErrFetchFailed indica que ao menos um dos endpoints falhou; nenhum dado
// parcial é devolvido
var ErrFetchFailed = errors.New("erro ao carregar dados de campanhas")

type AnalyticsIntegrator interface {
	FetchDatasets(ctx context.Context) (*analyticsdomain.Datasets, error)
}

type AnalyticsService struct {
	cfg    *config.Config
	Client analyticsclient.Client
}

func New(cfg *config.Config, client analyticsclient.Client) AnalyticsIntegrator {
	return &AnalyticsService{
		cfg:    cfg,
		Client: client,
	}
}

// FetchDatasets busca o ano corrente e o ano anterior em paralelo. Se qualquer
// uma das requisições falhar, a carga inteira falha.
func (s *AnalyticsService) FetchDatasets(ctx context.Context) (*analyticsdomain.Datasets, error) {
	startTime := time.Now()
	datasets := &analyticsdomain.Datasets{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		resp, err := s.fetch(gctx, analyticsdomain.SourceCurrentYear, s.cfg.Analytics.CurrentURL)
		if err != nil {
			return err
		}
		datasets.Current = resp.Data
		return nil
	})

	g.Go(func() error {
		resp, err := s.fetch(gctx, analyticsdomain.SourcePreviousYear, s.cfg.Analytics.PreviousURL)
		if err != nil {
			return err
		}
		datasets.Previous = resp.Data
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	logrus.WithFields(logrus.Fields{
		"current_records":  len(datasets.Current),
		"previous_records": len(datasets.Previous),
		"duration":         time.Since(startTime).String(),
	}).Info("Dados de campanhas carregados")

	return datasets, nil
}

func (s *AnalyticsService) fetch(ctx context.Context, source analyticsdomain.Source, endpoint string) (*analyticsdomain.CampaignResponse, error) {
	resp, err := s.Client.GetCampaignRecords(ctx, endpoint)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"source":   source,
			"endpoint": endpoint,
		}).Warn("Erro ao buscar dados de campanhas")
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return resp, nil
}
