package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-analytics-api/internal/config"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
	"github.com/vfg2006/campaign-analytics-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func newRefreshConfig(enabled, loadOnStart bool) *config.Config {
	return &config.Config{
		DatasetRefresh: config.DatasetRefresh{
			CronSchedule: "*/30 * * * *",
			Enabled:      enabled,
			LoadOnStart:  loadOnStart,
		},
	}
}

func TestDatasetRefreshService_refreshDataset(t *testing.T) {
	tests := []struct {
		name           string
		setup          func(loader *mocks.MockDatasetLoader)
		expectedID     string
		expectedError  string
		expectComplete bool
	}{
		{
			name: "Recarga com sucesso - deve registrar o snapshot",
			setup: func(loader *mocks.MockDatasetLoader) {
				loader.EXPECT().
					Refresh(gomock.Any()).
					Return(&domain.Snapshot{ID: "Ab12Cd"}, nil)
			},
			expectedID:     "Ab12Cd",
			expectComplete: true,
		},
		{
			name: "Falha na busca - deve registrar o erro",
			setup: func(loader *mocks.MockDatasetLoader) {
				loader.EXPECT().
					Refresh(gomock.Any()).
					Return(nil, errors.New("erro ao carregar dados de campanhas"))
			},
			expectedError: "erro ao carregar dados de campanhas",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			loader := mocks.NewMockDatasetLoader(ctrl)
			tt.setup(loader)

			service := NewDatasetRefreshService(loader, newRefreshConfig(false, false))
			service.refreshDataset()

			status := service.GetStatus()
			assert.Equal(t, false, status["sync_running"])
			assert.Equal(t, tt.expectedID, status["last_snapshot_id"])
			assert.Equal(t, tt.expectedError, status["last_error"])
			assert.NotZero(t, status["last_sync_started_at"])
			if tt.expectComplete {
				assert.NotZero(t, status["last_sync_completed_at"])
			} else {
				assert.Zero(t, status["last_sync_completed_at"])
			}
		})
	}
}

func TestDatasetRefreshService_StartLoadsOnStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := mocks.NewMockDatasetLoader(ctrl)
	loader.EXPECT().Refresh(gomock.Any()).Return(&domain.Snapshot{ID: "first1"}, nil).Times(1)

	service := NewDatasetRefreshService(loader, newRefreshConfig(false, true))
	require.NoError(t, service.Start(context.Background()))

	status := service.GetStatus()
	assert.Equal(t, "first1", status["last_snapshot_id"])
	assert.Equal(t, false, status["sync_enabled"])
}

func TestDatasetRefreshService_StartInvalidCron(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := newRefreshConfig(true, false)
	cfg.DatasetRefresh.CronSchedule = "isso não é cron"

	service := NewDatasetRefreshService(mocks.NewMockDatasetLoader(ctrl), cfg)
	assert.Error(t, service.Start(context.Background()))
}

func TestDatasetRefreshService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	done := make(chan struct{})
	loader := mocks.NewMockDatasetLoader(ctrl)
	loader.EXPECT().
		Refresh(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (*domain.Snapshot, error) {
			close(done)
			return &domain.Snapshot{ID: "manual"}, nil
		})

	service := NewDatasetRefreshService(loader, newRefreshConfig(false, false))
	assert.True(t, service.TriggerManualSync())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("recarga manual não executada")
	}

	assert.Eventually(t, func() bool {
		return service.GetStatus()["last_snapshot_id"] == "manual"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestDatasetRefreshService_TriggerManualSyncWhileRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewDatasetRefreshService(mocks.NewMockDatasetLoader(ctrl), newRefreshConfig(false, false))
	service.syncRunning = true

	assert.False(t, service.TriggerManualSync())
	assert.Equal(t, true, service.GetStatus()["sync_running"])
}
