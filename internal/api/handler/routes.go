package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/campaign-analytics-api/pkg/middleware"
)

// Limite de disparos manuais de recarga por minuto e por IP
const refreshRunPerMinute = 6

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/months",
			Method:  http.MethodGet,
			Handler: GetMonthOptions(service),
		},
		{
			Path:    "/v1/dashboard/kpis",
			Method:  http.MethodGet,
			Handler: GetKPISummary(service),
		},
		{
			Path:    "/v1/dashboard/timeline",
			Method:  http.MethodGet,
			Handler: GetTimeline(service),
		},
		{
			Path:    "/v1/dashboard/revenue-share",
			Method:  http.MethodGet,
			Handler: GetRevenueShare(service),
		},
		{
			Path:    "/v1/dashboard/channels",
			Method:  http.MethodGet,
			Handler: GetChannelBreakdown(service),
		},
		{
			Path:    "/v1/dashboard/comparisons",
			Method:  http.MethodGet,
			Handler: GetComparisons(service),
		},
		{
			Path:    "/v1/dashboard/table",
			Method:  http.MethodGet,
			Handler: GetPivotTable(service),
		},
	}
}

func Records(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/records",
			Method:  http.MethodGet,
			Handler: GetRecords(service),
		},
	}
}

func Refresh(refresher DatasetRefresher) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/refresh/run",
			Method:      http.MethodPost,
			Handler:     RunRefresh(refresher),
			Middlewares: []func(http.Handler) http.Handler{middleware.RateLimit(refreshRunPerMinute)},
		},
		{
			Path:    "/v1/refresh/status",
			Method:  http.MethodGet,
			Handler: GetRefreshStatus(refresher),
		},
	}
}
