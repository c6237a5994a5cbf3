package insighting

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vfg2006/commerce-insights-api/internal/analytics"
	"github.com/vfg2006/commerce-insights-api/internal/config"
	"github.com/vfg2006/commerce-insights-api/internal/domain"
	"github.com/vfg2006/commerce-insights-api/pkg/apiErrors"
	"github.com/vfg2006/commerce-insights-api/pkg/log"
)

type Service struct {
	cfg       config.Analytics
	snapshots SnapshotProvider
	now       func() time.Time
}

func NewService(cfg config.Analytics, snapshots SnapshotProvider) Insighter {
	return &Service{
		cfg:       cfg,
		snapshots: snapshots,
		now:       time.Now,
	}
}

// request é o recorte preparado para uma chamada: cada chamada trabalha sobre a
// sua própria cópia filtrada do snapshot
type request struct {
	snapshot *domain.Snapshot
	orders   domain.Dataset
	filters  domain.InsightFilters
}

func (s *Service) prepare(ctx context.Context, filters *domain.InsightFilters) (*request, error) {
	f := domain.InsightFilters{}
	if filters != nil {
		f = *filters
	}

	if f.StartDate != nil && f.EndDate != nil && f.EndDate.Before(*f.StartDate) {
		return nil, NewInsightError(ErrInvalidDateRange, apiErrors.ErrInvalidDateRange,
			fmt.Sprintf("%s > %s", f.StartDate.Format(time.DateOnly), f.EndDate.Format(time.DateOnly)))
	}

	if f.MarketingSpend < 0 {
		return nil, NewInsightError(ErrInvalidMarketingSpend, apiErrors.ErrInvalidRequest, "")
	}

	if f.TopCategories < 0 {
		return nil, NewInsightError(ErrInvalidTopCategories, apiErrors.ErrInvalidRequest, "")
	}

	if f.TopCategories == 0 {
		f.TopCategories = s.cfg.TopCategories
	}

	snapshot, ok := s.snapshots.Current()
	if !ok {
		log.ForContext(ctx).Warn("insights: snapshot ainda não carregado")
		return nil, NewInsightError(ErrSnapshotNotLoaded, apiErrors.ErrSnapshotUnavailable, "")
	}

	return &request{
		snapshot: snapshot,
		orders:   analytics.FilterByDateRange(snapshot.Orders, f.DateRange()),
		filters:  f,
	}, nil
}

func (s *Service) forecastOptions(req *request) []analytics.Option {
	return []analytics.Option{
		analytics.WithHorizon(s.cfg.ForecastHorizonDays),
		analytics.WithAnchor(s.now()),
		analytics.WithTopCategories(req.filters.TopCategories),
	}
}

func (s *Service) GetKPIs(ctx context.Context, filters *domain.InsightFilters) (*domain.KPIs, error) {
	req, err := s.prepare(ctx, filters)
	if err != nil {
		return nil, err
	}

	kpis := analytics.CalculateKPIs(req.orders, req.filters.MarketingSpend, req.filters.DateRange())
	return &kpis, nil
}

func (s *Service) GetAcquisitionRetention(ctx context.Context, filters *domain.InsightFilters) (*domain.AcquisitionRetention, error) {
	req, err := s.prepare(ctx, filters)
	if err != nil {
		return nil, err
	}

	result := analytics.CalculateAcquisitionRetention(req.orders, req.filters.MarketingSpend, req.filters.DateRange())
	return &result, nil
}

func (s *Service) GetRevenueForecast(ctx context.Context, filters *domain.InsightFilters) (*domain.RevenueForecast, error) {
	req, err := s.prepare(ctx, filters)
	if err != nil {
		return nil, err
	}

	forecast := analytics.ForecastRevenue(req.orders, s.forecastOptions(req)...)
	return &forecast, nil
}

func (s *Service) GetCategoryDemand(ctx context.Context, filters *domain.InsightFilters) ([]domain.CategoryDemand, error) {
	req, err := s.prepare(ctx, filters)
	if err != nil {
		return nil, err
	}

	return analytics.ForecastCategoryDemand(req.orders, s.forecastOptions(req)...), nil
}

func (s *Service) GetRecommendations(ctx context.Context, filters *domain.InsightFilters) ([]domain.Recommendation, error) {
	req, err := s.prepare(ctx, filters)
	if err != nil {
		return nil, err
	}

	demand := analytics.ForecastCategoryDemand(req.orders, s.forecastOptions(req)...)
	return analytics.RecommendInventory(demand), nil
}

func (s *Service) GetOverview(ctx context.Context, filters *domain.InsightFilters) (*domain.Overview, error) {
	req, err := s.prepare(ctx, filters)
	if err != nil {
		return nil, err
	}

	overview := analytics.BuildOverview(req.orders, req.filters.MarketingSpend, req.filters.TopCategories)
	return &overview, nil
}

// GetDashboard calcula os resultados independentes em paralelo sobre o mesmo recorte
func (s *Service) GetDashboard(ctx context.Context, filters *domain.InsightFilters) (*domain.Dashboard, error) {
	req, err := s.prepare(ctx, filters)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	dateRange := req.filters.DateRange()
	opts := s.forecastOptions(req)
	dashboard := &domain.Dashboard{SnapshotID: req.snapshot.ID}

	var wg sync.WaitGroup
	wg.Add(5)

	go func() {
		defer wg.Done()
		dashboard.KPIs = analytics.CalculateKPIs(req.orders, req.filters.MarketingSpend, dateRange)
	}()

	go func() {
		defer wg.Done()
		dashboard.Acquisition = analytics.CalculateAcquisitionRetention(req.orders, req.filters.MarketingSpend, dateRange)
	}()

	go func() {
		defer wg.Done()
		dashboard.RevenueForecast = analytics.ForecastRevenue(req.orders, opts...)
	}()

	go func() {
		defer wg.Done()
		dashboard.CategoryDemand = analytics.ForecastCategoryDemand(req.orders, opts...)
		dashboard.Recommendations = analytics.RecommendInventory(dashboard.CategoryDemand)
	}()

	go func() {
		defer wg.Done()
		dashboard.Overview = analytics.BuildOverview(req.orders, req.filters.MarketingSpend, req.filters.TopCategories)
	}()

	wg.Wait()

	log.ForContext(ctx).WithFields(log.Fields{
		"snapshot_id": req.snapshot.ID,
		"rows":        len(req.orders),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("insights: dashboard calculado")

	return dashboard, nil
}
