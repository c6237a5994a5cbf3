package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/commerce-insights-api/internal/api/handler/mocks"
	"github.com/vfg2006/commerce-insights-api/internal/api/handler/router"
	"github.com/vfg2006/commerce-insights-api/internal/config"
	"github.com/vfg2006/commerce-insights-api/internal/domain"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/insighting"
	insightmocks "github.com/vfg2006/commerce-insights-api/internal/usecases/insighting/mocks"
	"github.com/vfg2006/commerce-insights-api/pkg/apiErrors"
)

var testDefaults = config.Analytics{
	MarketingSpend:      50000,
	TopCategories:       5,
	ForecastHorizonDays: 30,
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestParseInsightFilters(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantErr  bool
		validate func(t *testing.T, filters *domain.InsightFilters)
	}{
		{
			name:  "Sem parâmetros usa os padrões",
			query: "",
			validate: func(t *testing.T, filters *domain.InsightFilters) {
				assert.Nil(t, filters.StartDate)
				assert.Nil(t, filters.EndDate)
				assert.Equal(t, 50000.0, filters.MarketingSpend)
				assert.Equal(t, 0, filters.TopCategories)
			},
		},
		{
			name:  "Datas com fim estendido até o final do dia",
			query: "start_date=2024-01-01&end_date=2024-01-31&marketing_spend=1000&top_categories=3",
			validate: func(t *testing.T, filters *domain.InsightFilters) {
				require.NotNil(t, filters.StartDate)
				require.NotNil(t, filters.EndDate)
				assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *filters.StartDate)
				assert.Equal(t, time.Date(2024, 1, 31, 23, 59, 59, 999999999, time.UTC), *filters.EndDate)
				assert.Equal(t, 1000.0, filters.MarketingSpend)
				assert.Equal(t, 3, filters.TopCategories)
			},
		},
		{
			name:    "Data em formato inválido",
			query:   "start_date=01/01/2024",
			wantErr: true,
		},
		{
			name:    "Investimento negativo",
			query:   "marketing_spend=-10",
			wantErr: true,
		},
		{
			name:    "Quantidade de categorias não numérica",
			query:   "top_categories=cinco",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/kpis?"+tt.query, nil)

			filters, message, err := parseInsightFilters(req, testDefaults)

			if tt.wantErr {
				assert.Error(t, err)
				assert.NotEmpty(t, message)
				return
			}
			require.NoError(t, err)
			tt.validate(t, filters)
		})
	}
}

func TestInsightsHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := insightmocks.NewMockInsighter(ctrl)
	rt := router.New(router.WithGroup("/v1", Insights(service, testDefaults)...))

	tests := []struct {
		name       string
		path       string
		setup      func()
		wantStatus int
		validate   func(t *testing.T, body map[string]any)
	}{
		{
			name: "KPIs calculados",
			path: "/v1/kpis?start_date=2024-01-01&end_date=2024-01-31",
			setup: func() {
				service.EXPECT().
					GetKPIs(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, f *domain.InsightFilters) (*domain.KPIs, error) {
						assert.NotNil(t, f.StartDate)
						assert.Equal(t, 50000.0, f.MarketingSpend)
						return &domain.KPIs{TotalRevenue: 600, TotalOrders: 3}, nil
					})
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, 600.0, body["total_revenue"])
				assert.Equal(t, 3.0, body["total_orders"])
			},
		},
		{
			name: "Intervalo invertido retorna 400",
			path: "/v1/dashboard?start_date=2024-02-01&end_date=2024-01-01",
			setup: func() {
				service.EXPECT().
					GetDashboard(gomock.Any(), gomock.Any()).
					Return(nil, insighting.NewInsightError(insighting.ErrInvalidDateRange, apiErrors.ErrInvalidDateRange, ""))
			},
			wantStatus: http.StatusBadRequest,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, apiErrors.ErrInvalidDateRange, body["code"])
			},
		},
		{
			name: "Snapshot indisponível retorna 503",
			path: "/v1/forecast/revenue",
			setup: func() {
				service.EXPECT().
					GetRevenueForecast(gomock.Any(), gomock.Any()).
					Return(nil, insighting.NewInsightError(insighting.ErrSnapshotNotLoaded, apiErrors.ErrSnapshotUnavailable, ""))
			},
			wantStatus: http.StatusServiceUnavailable,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, apiErrors.ErrSnapshotUnavailable, body["code"])
			},
		},
		{
			name:       "Parâmetro inválido não chega ao serviço",
			path:       "/v1/recommendations/inventory?top_categories=0",
			setup:      func() {},
			wantStatus: http.StatusBadRequest,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, apiErrors.ErrInvalidFormat, body["code"])
			},
		},
		{
			name: "Recomendações vazias",
			path: "/v1/recommendations/inventory",
			setup: func() {
				service.EXPECT().
					GetRecommendations(gomock.Any(), gomock.Any()).
					Return([]domain.Recommendation{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Rota desconhecida",
			path:       "/v1/desconhecida",
			setup:      func() {},
			wantStatus: http.StatusNotFound,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, apiErrors.ErrNotFound, body["code"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.validate != nil {
				tt.validate(t, decodeBody(t, rec))
			}
		})
	}
}

func TestSnapshotHandlers(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		setup      func(refresher *mocks.MockSnapshotRefresher, snapshots *insightmocks.MockSnapshotProvider)
		wantStatus int
		validate   func(t *testing.T, body map[string]any)
	}{
		{
			name:   "Recarga iniciada",
			method: http.MethodPost,
			path:   "/v1/snapshot/refresh",
			setup: func(refresher *mocks.MockSnapshotRefresher, _ *insightmocks.MockSnapshotProvider) {
				refresher.EXPECT().RefreshSnapshot().Return(true)
			},
			wantStatus: http.StatusAccepted,
		},
		{
			name:   "Recarga já em andamento",
			method: http.MethodPost,
			path:   "/v1/snapshot/refresh",
			setup: func(refresher *mocks.MockSnapshotRefresher, _ *insightmocks.MockSnapshotProvider) {
				refresher.EXPECT().RefreshSnapshot().Return(false)
			},
			wantStatus: http.StatusConflict,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, apiErrors.ErrSnapshotRefreshing, body["code"])
			},
		},
		{
			name:   "Status inclui o snapshot publicado",
			method: http.MethodGet,
			path:   "/v1/snapshot/status",
			setup: func(refresher *mocks.MockSnapshotRefresher, snapshots *insightmocks.MockSnapshotProvider) {
				refresher.EXPECT().Status().Return(map[string]any{"refresh_running": false})
				snapshots.EXPECT().Current().Return(&domain.Snapshot{ID: "snap-1", Orders: domain.Dataset{{}, {}}}, true)
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, false, body["refresh_running"])
				assert.Equal(t, true, body["snapshot_loaded"])
				assert.Equal(t, "snap-1", body["snapshot_id"])
				assert.Equal(t, 2.0, body["snapshot_rows"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			refresher := mocks.NewMockSnapshotRefresher(ctrl)
			snapshots := insightmocks.NewMockSnapshotProvider(ctrl)
			tt.setup(refresher, snapshots)

			rt := router.New(router.WithGroup("/v1", Snapshot(refresher, snapshots)...))
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.validate != nil {
				tt.validate(t, decodeBody(t, rec))
			}
		})
	}
}

func TestHealthcheckHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	snapshots := insightmocks.NewMockSnapshotProvider(ctrl)
	snapshots.EXPECT().Current().Return(nil, false)

	rec := httptest.NewRecorder()
	HealthcheckHandler(snapshots).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, false, body["snapshot_loaded"])
}
