package insighting

import (
	"context"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/insighting.go -package=mocks

// SnapshotProvider fornece o snapshot atual do ledger
type SnapshotProvider interface {
	Current() (*domain.Snapshot, bool)
}

// Insighter expõe os indicadores e previsões calculados sobre o snapshot atual
type Insighter interface {
	// GetKPIs calcula os indicadores principais do período
	GetKPIs(ctx context.Context, filters *domain.InsightFilters) (*domain.KPIs, error)

	// GetAcquisitionRetention calcula aquisição por coorte, recompra, CAC e LTV
	GetAcquisitionRetention(ctx context.Context, filters *domain.InsightFilters) (*domain.AcquisitionRetention, error)

	// GetRevenueForecast projeta a receita diária dos próximos dias
	GetRevenueForecast(ctx context.Context, filters *domain.InsightFilters) (*domain.RevenueForecast, error)

	// GetCategoryDemand projeta os pedidos mensais das principais categorias
	GetCategoryDemand(ctx context.Context, filters *domain.InsightFilters) ([]domain.CategoryDemand, error)

	// GetRecommendations gera as recomendações de estoque por categoria
	GetRecommendations(ctx context.Context, filters *domain.InsightFilters) ([]domain.Recommendation, error)

	// GetOverview monta os painéis complementares
	GetOverview(ctx context.Context, filters *domain.InsightFilters) (*domain.Overview, error)

	// GetDashboard calcula todos os resultados de uma vez
	GetDashboard(ctx context.Context, filters *domain.InsightFilters) (*domain.Dashboard, error)
}
