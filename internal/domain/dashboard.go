package domain

import "time"

// InsightFilters são os parâmetros de recorte recebidos pela API
type InsightFilters struct {
	StartDate      *time.Time
	EndDate        *time.Time
	MarketingSpend float64
	TopCategories  int
}

// DateRange retorna o intervalo correspondente aos filtros ou nil quando
// algum dos extremos não foi informado
func (f *InsightFilters) DateRange() DateRange {
	if f == nil || f.StartDate == nil || f.EndDate == nil {
		return nil
	}

	return NewDateRange(*f.StartDate, *f.EndDate)
}

type Dashboard struct {
	SnapshotID      string               `json:"snapshot_id"`
	KPIs            KPIs                 `json:"kpis"`
	Acquisition     AcquisitionRetention `json:"acquisition"`
	RevenueForecast RevenueForecast      `json:"revenue_forecast"`
	CategoryDemand  []CategoryDemand     `json:"category_demand"`
	Recommendations []Recommendation     `json:"recommendations"`
	Overview        Overview             `json:"overview"`
}
