package reporting

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/integrator/analytics"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
	"github.com/vfg2006/campaign-analytics-api/pkg/utils"
)

// Service guarda o snapshot corrente e calcula as visões do dashboard
type Service struct {
	analyticsService analytics.AnalyticsIntegrator
	now              func() time.Time

	mu       sync.RWMutex
	snapshot *domain.Snapshot

	// serializa as cargas para que requisições simultâneas não disparem
	// buscas repetidas
	loadMutex sync.Mutex
}

// NewService cria uma nova instância do serviço de relatórios
func NewService(analyticsService analytics.AnalyticsIntegrator) *Service {
	return &Service{
		analyticsService: analyticsService,
		now:              time.Now,
	}
}

// WithClock substitui o relógio usado para definir o mês corrente
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Refresh busca os dois conjuntos de dados. Em caso de falha o snapshot
// anterior é mantido.
func (s *Service) Refresh(ctx context.Context) (*domain.Snapshot, error) {
	s.loadMutex.Lock()
	defer s.loadMutex.Unlock()

	return s.load(ctx)
}

func (s *Service) load(ctx context.Context) (*domain.Snapshot, error) {
	datasets, err := s.analyticsService.FetchDatasets(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar snapshot de campanhas")
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id do snapshot: %w", err)
	}

	snapshot := &domain.Snapshot{
		ID:       id,
		LoadedAt: s.now(),
		Current:  datasets.Current,
		Previous: datasets.Previous,
	}

	s.mu.Lock()
	s.snapshot = snapshot
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"snapshot_id":  snapshot.ID,
		"current_year": snapshot.CurrentYear(),
	}).Info("Snapshot de campanhas atualizado")

	return snapshot, nil
}

// Snapshot retorna o snapshot carregado ou faz a primeira carga
func (s *Service) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	s.mu.RLock()
	snapshot := s.snapshot
	s.mu.RUnlock()

	if snapshot != nil {
		return snapshot, nil
	}

	s.loadMutex.Lock()
	defer s.loadMutex.Unlock()

	// outra requisição pode ter carregado enquanto aguardávamos
	s.mu.RLock()
	snapshot = s.snapshot
	s.mu.RUnlock()
	if snapshot != nil {
		return snapshot, nil
	}

	return s.load(ctx)
}
