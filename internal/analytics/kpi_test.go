package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

func TestCalculateKPIs(t *testing.T) {
	tests := []struct {
		name     string
		ds       domain.Dataset
		validate func(t *testing.T, kpis domain.KPIs)
	}{
		{
			name: "Três pedidos de dois clientes",
			ds: domain.Dataset{
				newOrder("O1", "C1", date(2024, 1, 1), 100),
				newOrder("O2", "C1", date(2024, 1, 2), 200),
				newOrder("O3", "C2", date(2024, 1, 3), 300),
			},
			validate: func(t *testing.T, kpis domain.KPIs) {
				assert.Equal(t, 600.0, kpis.TotalRevenue)
				assert.Equal(t, 3, kpis.TotalOrders)
				assert.Equal(t, 2, kpis.TotalCustomers)
				assert.Equal(t, 200.0, kpis.AverageTicket)
				assert.Equal(t, 0.0, kpis.LostRevenue)
				assert.Equal(t, 0.0, kpis.CancellationRate)
			},
		},
		{
			name: "Abandono por pedido e cancelamento por linha",
			ds: func() domain.Dataset {
				first := newOrder("O1", "C1", date(2024, 1, 1), 50)
				first.Cancelled = true
				second := first
				second.ProductID = "P-O1-B"
				return domain.Dataset{first, second, newOrder("O2", "C2", date(2024, 1, 2), 100)}
			}(),
			validate: func(t *testing.T, kpis domain.KPIs) {
				assert.Equal(t, 0.5, kpis.AbandonmentRate)
				assert.InDelta(t, 2.0/3.0, kpis.CancellationRate, 1e-9)
				assert.Equal(t, 100.0, kpis.LostRevenue)
				assert.Equal(t, 100.0, kpis.TotalRevenue)
				assert.Equal(t, 2, kpis.TotalOrders)
				assert.Equal(t, 3, kpis.TotalProducts)
			},
		},
		{
			name: "Dataset vazio não gera divisão por zero",
			ds:   domain.Dataset{},
			validate: func(t *testing.T, kpis domain.KPIs) {
				assert.Equal(t, domain.KPIs{}, kpis)
				assert.Nil(t, kpis.CSAT)
				assert.Nil(t, kpis.AvgDeliveryTime)
			},
		},
		{
			name: "Avaliações e entregas ausentes são ignoradas",
			ds: func() domain.Dataset {
				a := newOrder("O1", "C1", date(2024, 1, 1), 10)
				a.ReviewScore = intPtr(5)
				a.DeliveredAt = timePtr(date(2024, 1, 4).Add(-time.Hour))

				b := newOrder("O2", "C2", date(2024, 1, 1), 10)
				b.ReviewScore = intPtr(3)
				b.DeliveredAt = timePtr(date(2024, 1, 6))

				c := newOrder("O3", "C3", date(2024, 1, 1), 10)
				return domain.Dataset{a, b, c}
			}(),
			validate: func(t *testing.T, kpis domain.KPIs) {
				require.NotNil(t, kpis.CSAT)
				assert.Equal(t, 4.0, *kpis.CSAT)

				require.NotNil(t, kpis.AvgDeliveryTime)
				assert.Equal(t, 3.5, *kpis.AvgDeliveryTime)
			},
		},
		{
			name: "Categorias nulas ou vazias não contam",
			ds: func() domain.Dataset {
				a := newOrder("O1", "C1", date(2024, 1, 1), 10)
				a.Category = stringPtr("moveis")
				b := newOrder("O2", "C1", date(2024, 1, 1), 10)
				b.Category = stringPtr("moveis")
				c := newOrder("O3", "C1", date(2024, 1, 1), 10)
				c.Category = stringPtr("")
				d := newOrder("O4", "C1", date(2024, 1, 1), 10)
				d.Category = stringPtr("brinquedos")
				e := newOrder("O5", "C1", date(2024, 1, 1), 10)
				return domain.Dataset{a, b, c, d, e}
			}(),
			validate: func(t *testing.T, kpis domain.KPIs) {
				assert.Equal(t, 2, kpis.UniqueCategories)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, CalculateKPIs(tt.ds, 1000, nil))
		})
	}
}

func TestCalculateKPIs_RevenueSplit(t *testing.T) {
	prices := []float64{19.9, 45.5, 120.35, 7.25, 300}
	ds := make(domain.Dataset, 0, len(prices))
	total := 0.0
	for i, price := range prices {
		order := newOrder(string(rune('A'+i)), "C1", date(2024, 1, 1), price)
		order.Cancelled = i%2 == 0
		ds = append(ds, order)
		total += price
	}

	kpis := CalculateKPIs(ds, 0, nil)

	assert.InDelta(t, total, kpis.TotalRevenue+kpis.LostRevenue, 1e-9)
	assert.InDelta(t, 45.5+7.25, kpis.TotalRevenue, 1e-9)
	assert.GreaterOrEqual(t, kpis.CancellationRate, 0.0)
	assert.LessOrEqual(t, kpis.CancellationRate, 1.0)
	assert.GreaterOrEqual(t, kpis.AbandonmentRate, 0.0)
	assert.LessOrEqual(t, kpis.AbandonmentRate, 1.0)
}
