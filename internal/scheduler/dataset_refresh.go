package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-analytics-api/internal/config"
	"github.com/vfg2006/campaign-analytics-api/internal/usecases/reporting"
)

// DatasetRefreshConfig representa a configuração do agendador de recarga dos dados
type DatasetRefreshConfig struct {
	CronSchedule string
	SyncEnabled  bool
	LoadOnStart  bool
}

// DatasetRefreshService agenda a recarga periódica do snapshot de campanhas
type DatasetRefreshService struct {
	scheduler           *gocron.Scheduler
	config              DatasetRefreshConfig
	loader              reporting.DatasetLoader
	ctx                 context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSnapshotID      string
	lastError           string
}

// NewDatasetRefreshService cria uma nova instância do serviço de recarga
func NewDatasetRefreshService(loader reporting.DatasetLoader, appConfig *config.Config) *DatasetRefreshService {
	refreshConfig := DatasetRefreshConfig{
		CronSchedule: appConfig.DatasetRefresh.CronSchedule,
		SyncEnabled:  appConfig.DatasetRefresh.Enabled,
		LoadOnStart:  appConfig.DatasetRefresh.LoadOnStart,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"sync_enabled":  refreshConfig.SyncEnabled,
		"load_on_start": refreshConfig.LoadOnStart,
	}).Info("Configuração do agendador de recarga de campanhas carregada")

	return &DatasetRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    refreshConfig,
		loader:    loader,
		ctx:       context.Background(),
	}
}

// Start faz a carga inicial, se configurada, e inicia o agendador
func (s *DatasetRefreshService) Start(ctx context.Context) error {
	s.ctx = ctx

	if s.config.LoadOnStart {
		s.refreshDataset()
	}

	if !s.config.SyncEnabled {
		logrus.Info("Recarga agendada de campanhas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga de campanhas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshDataset()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga de campanhas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga de campanhas")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshDataset recarrega o snapshot. Execuções simultâneas são ignoradas.
func (s *DatasetRefreshService) refreshDataset() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recarga de campanhas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando recarga dos dados de campanhas")

	snapshot, err := s.loader.Refresh(s.ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro na recarga dos dados de campanhas")

		s.syncMutex.Lock()
		s.lastError = err.Error()
		s.syncMutex.Unlock()
		return
	}

	logrus.WithFields(logrus.Fields{
		"duration":    time.Since(startTime).String(),
		"snapshot_id": snapshot.ID,
	}).Info("Recarga dos dados de campanhas concluída")

	s.syncMutex.Lock()
	s.lastSnapshotID = snapshot.ID
	s.lastError = ""
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// TriggerManualSync inicia manualmente uma recarga. Retorna false quando já
// existe uma em andamento.
func (s *DatasetRefreshService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recarga de campanhas já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recarga manual dos dados de campanhas")
	go s.refreshDataset()
	return true
}

// GetStatus retorna o status atual da recarga
func (s *DatasetRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_snapshot_id":       s.lastSnapshotID,
		"last_error":             s.lastError,
	}
}
