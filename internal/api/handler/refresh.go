package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-analytics-api/pkg/log"
)

// DatasetRefresher dispara e informa o estado da recarga dos dados
type DatasetRefresher interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// RunRefresh dispara uma recarga manual em segundo plano
func RunRefresh(refresher DatasetRefresher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if !refresher.TriggerManualSync() {
			logger.Warn("refresh: recarga já em andamento")
			apiErrors.WriteError(w, apiErrors.ErrRefreshRunning, "Recarga de dados já em andamento", nil)
			return
		}

		logger.Info("refresh: recarga manual disparada")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(w).Encode(map[string]any{
			"message": "Recarga de dados iniciada com sucesso",
		}); err != nil {
			logger.WithError(err).Error("erro ao codificar resposta")
		}
	})
}

// GetRefreshStatus retorna o estado da última recarga
func GetRefreshStatus(refresher DatasetRefresher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log.ForContext(r.Context()), refresher.GetStatus())
	})
}
