package handler

import (
	"net/http"

	"github.com/vfg2006/commerce-insights-api/internal/api/handler/router"
	"github.com/vfg2006/commerce-insights-api/internal/config"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/insighting"
)

func Healthcheck(snapshots insighting.SnapshotProvider) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(snapshots),
		},
	}
}

func Insights(service insighting.Insighter, defaults config.Analytics) []router.Route {
	return []router.Route{
		{
			Path:    "/kpis",
			Method:  http.MethodGet,
			Handler: GetKPIs(service, defaults),
		},
		{
			Path:    "/acquisition",
			Method:  http.MethodGet,
			Handler: GetAcquisitionRetention(service, defaults),
		},
		{
			Path:    "/forecast/revenue",
			Method:  http.MethodGet,
			Handler: GetRevenueForecast(service, defaults),
		},
		{
			Path:    "/forecast/categories",
			Method:  http.MethodGet,
			Handler: GetCategoryDemand(service, defaults),
		},
		{
			Path:    "/recommendations/inventory",
			Method:  http.MethodGet,
			Handler: GetRecommendations(service, defaults),
		},
		{
			Path:    "/overview",
			Method:  http.MethodGet,
			Handler: GetOverview(service, defaults),
		},
		{
			Path:    "/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service, defaults),
		},
	}
}

func Snapshot(refresher SnapshotRefresher, snapshots insighting.SnapshotProvider) []router.Route {
	return []router.Route{
		{
			Path:    "/snapshot/refresh",
			Method:  http.MethodPost,
			Handler: RefreshSnapshot(refresher),
		},
		{
			Path:    "/snapshot/status",
			Method:  http.MethodGet,
			Handler: GetSnapshotStatus(refresher, snapshots),
		},
	}
}
