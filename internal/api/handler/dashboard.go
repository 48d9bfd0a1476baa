package handler

import (
	"errors"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/integrator/analytics"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
	"github.com/vfg2006/campaign-analytics-api/internal/export"
	"github.com/vfg2006/campaign-analytics-api/internal/metrics"
	"github.com/vfg2006/campaign-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/campaign-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-analytics-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const formatCSV = "csv"

func writeJSON(w http.ResponseWriter, logger log.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.WithError(err).Error("erro ao codificar resposta")
	}
}

// writeServiceError traduz meses fora do escopo em VAL_001, falhas de carga
// em SRV_003 e o resto em SRV_001
func writeServiceError(w http.ResponseWriter, logger log.Logger, err error) {
	if errors.Is(err, metrics.ErrPeriodOutOfScope) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Mês de outro ano no escopo atual. Use scope=combined", err.Error())
		return
	}

	if errors.Is(err, analytics.ErrFetchFailed) {
		logger.WithError(err).Error("dashboard: falha ao carregar dados de campanhas")
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Não foi possível carregar os dados de campanhas", nil)
		return
	}

	logger.WithError(err).Error("dashboard: erro ao montar visão")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar visão do dashboard", nil)
}

func writeFilterError(w http.ResponseWriter, apiErr *apiErrors.APIError) {
	apiErrors.WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
}

// GetMonthOptions retorna os meses disponíveis para o filtro
func GetMonthOptions(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filter, apiErr := parseFilter(r)
		if apiErr != nil {
			writeFilterError(w, apiErr)
			return
		}

		options, err := service.GetMonthOptions(r.Context(), filter.Scope)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"scope":       filter.Scope,
			"snapshot_id": options.SnapshotID,
		}).Debug("dashboard: meses disponíveis")

		writeJSON(w, logger, options)
	})
}

// GetKPISummary retorna os indicadores dos meses e canais selecionados.
// Aceita format=csv.
func GetKPISummary(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filter, apiErr := parseFilter(r)
		if apiErr != nil {
			writeFilterError(w, apiErr)
			return
		}

		summary, err := service.GetKPISummary(r.Context(), filter)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		if r.URL.Query().Get("format") == formatCSV {
			writeCSVHeaders(w, "kpis.csv")
			if err := export.WriteKPICSV(w, summary); err != nil {
				logger.WithError(err).Error("dashboard: erro ao escrever CSV de indicadores")
			}
			return
		}

		writeJSON(w, logger, summary)
	})
}

// GetTimeline retorna os pontos do gráfico de linhas
func GetTimeline(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filter, apiErr := parseFilter(r)
		if apiErr != nil {
			writeFilterError(w, apiErr)
			return
		}

		points, err := service.GetTimeline(r.Context(), filter)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, map[string]any{
			"metric": filter.MetricOrDefault(),
			"points": points,
		})
	})
}

// GetRevenueShare retorna as fatias do gráfico de pizza
func GetRevenueShare(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filter, apiErr := parseFilter(r)
		if apiErr != nil {
			writeFilterError(w, apiErr)
			return
		}

		shares, err := service.GetRevenueShare(r.Context(), filter)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, shares)
	})
}

// GetChannelBreakdown retorna as barras por canal
func GetChannelBreakdown(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filter, apiErr := parseFilter(r)
		if apiErr != nil {
			writeFilterError(w, apiErr)
			return
		}

		values, err := service.GetChannelBreakdown(r.Context(), filter)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, map[string]any{
			"metric":   filter.MetricOrDefault(),
			"channels": values,
		})
	})
}

// GetComparisons retorna as comparações do mês corrente projetado
func GetComparisons(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filter, apiErr := parseFilter(r)
		if apiErr != nil {
			writeFilterError(w, apiErr)
			return
		}

		comparisons, err := service.GetComparisons(r.Context(), filter)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, comparisons)
	})
}

// GetPivotTable retorna a tabela detalhada de um ano. Aceita format=csv.
func GetPivotTable(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filter, apiErr := parseFilter(r)
		if apiErr != nil {
			writeFilterError(w, apiErr)
			return
		}

		table, err := service.GetPivotTable(r.Context(), filter.Year)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		if r.URL.Query().Get("format") == formatCSV {
			writeCSVHeaders(w, "tabela-"+strconv.Itoa(table.Year)+".csv")
			if err := export.WritePivotCSV(w, table); err != nil {
				logger.WithError(err).Error("dashboard: erro ao escrever CSV da tabela")
			}
			return
		}

		writeJSON(w, logger, table)
	})
}

// GetRecords retorna o snapshot carregado no formato original dos endpoints
func GetRecords(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		snapshot, err := service.Snapshot(r.Context())
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, recordsResponse(snapshot))
	})
}

func recordsResponse(snapshot *domain.Snapshot) map[string]any {
	return map[string]any{
		"snapshot_id":        snapshot.ID,
		"loaded_at":          snapshot.LoadedAt,
		"last_recorded_date": snapshot.LastRecordedDate(),
		"current":            snapshot.Current,
		"previous":           snapshot.Previous,
	}
}

func writeCSVHeaders(w http.ResponseWriter, filename string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
}
