package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

func TestCalculateAcquisitionRetention(t *testing.T) {
	tests := []struct {
		name           string
		ds             domain.Dataset
		marketingSpend float64
		validate       func(t *testing.T, result domain.AcquisitionRetention)
	}{
		{
			name: "Segunda compra dez dias depois da primeira",
			ds: domain.Dataset{
				newOrder("O1", "C1", date(2024, 1, 1), 100),
				newOrder("O2", "C1", date(2024, 1, 11), 100),
			},
			validate: func(t *testing.T, result domain.AcquisitionRetention) {
				assert.Equal(t, 10.0, result.AvgTimeToSecond)
				assert.Equal(t, 1.0, result.RepurchaseRate)
			},
		},
		{
			name: "Coortes, recompra no mês e indicadores financeiros",
			ds: func() domain.Dataset {
				cancelled := newOrder("O4", "C2", date(2024, 2, 20), 50)
				cancelled.Cancelled = true
				return domain.Dataset{
					newOrder("O1", "C1", date(2024, 1, 5), 100),
					newOrder("O2", "C1", date(2024, 1, 20), 200),
					newOrder("O3", "C2", date(2024, 2, 10), 300),
					cancelled,
				}
			}(),
			marketingSpend: 1000,
			validate: func(t *testing.T, result domain.AcquisitionRetention) {
				assert.Equal(t, []domain.MonthlyCount{{Month: "2024-01", Count: 1}, {Month: "2024-02", Count: 1}}, result.NewCustomers)
				assert.Equal(t, 2, result.TotalNewCustomers)
				assert.Equal(t, []domain.MonthlyCount{{Month: "2024-01", Count: 1}, {Month: "2024-02", Count: 1}}, result.ReturningCustomers)
				assert.Equal(t, 1.0, result.RepurchaseRate)
				assert.Equal(t, 500.0, result.CAC)
				assert.Equal(t, 300.0, result.LTV)
				assert.Equal(t, 12.5, result.AvgTimeToSecond)
			},
		},
		{
			name: "Recompra em meses diferentes não conta como retorno no mês",
			ds: domain.Dataset{
				newOrder("O1", "C1", date(2024, 1, 5), 100),
				newOrder("O2", "C1", date(2024, 2, 5), 100),
				newOrder("O3", "C2", date(2024, 2, 6), 100),
			},
			validate: func(t *testing.T, result domain.AcquisitionRetention) {
				assert.Empty(t, result.ReturningCustomers)
				assert.Equal(t, 0.5, result.RepurchaseRate)
				assert.Equal(t, 31.0, result.AvgTimeToSecond)
			},
		},
		{
			name: "Pedidos no mesmo instante não geram intervalo",
			ds: domain.Dataset{
				newOrder("O1", "C1", date(2024, 1, 5), 100),
				newOrder("O2", "C1", date(2024, 1, 5), 100),
			},
			validate: func(t *testing.T, result domain.AcquisitionRetention) {
				assert.Equal(t, 0.0, result.AvgTimeToSecond)
				assert.Equal(t, 1.0, result.RepurchaseRate)
			},
		},
		{
			name: "Primeiro pedido com vários itens zera o intervalo",
			ds: domain.Dataset{
				newOrder("O1", "C1", date(2024, 1, 1), 100),
				newOrder("O1", "C1", date(2024, 1, 1), 40),
				newOrder("O2", "C1", date(2024, 1, 11), 100),
			},
			validate: func(t *testing.T, result domain.AcquisitionRetention) {
				assert.Equal(t, 0.0, result.AvgTimeToSecond)
				assert.Equal(t, 1.0, result.RepurchaseRate)
			},
		},
		{
			name: "Itens repetidos só excluem o próprio cliente da média",
			ds: domain.Dataset{
				newOrder("O1", "C1", date(2024, 1, 1), 100),
				newOrder("O1", "C1", date(2024, 1, 1), 40),
				newOrder("O2", "C1", date(2024, 1, 11), 100),
				newOrder("O3", "C2", date(2024, 1, 20), 100),
				newOrder("O4", "C2", date(2024, 1, 10), 100),
			},
			validate: func(t *testing.T, result domain.AcquisitionRetention) {
				assert.Equal(t, 10.0, result.AvgTimeToSecond)
			},
		},
		{
			name:           "Dataset vazio",
			ds:             domain.Dataset{},
			marketingSpend: 1000,
			validate: func(t *testing.T, result domain.AcquisitionRetention) {
				assert.Empty(t, result.NewCustomers)
				assert.Equal(t, 0, result.TotalNewCustomers)
				assert.Equal(t, 0.0, result.CAC)
				assert.Equal(t, 0.0, result.LTV)
				assert.Equal(t, 0.0, result.RepurchaseRate)
				assert.Equal(t, 0.0, result.AvgTimeToSecond)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, CalculateAcquisitionRetention(tt.ds, tt.marketingSpend, nil))
		})
	}
}

func TestCalculateAcquisitionRetention_FunnelIsFlaggedAsSimulated(t *testing.T) {
	ds := domain.Dataset{
		newOrder("O1", "C1", date(2024, 1, 5), 100),
		newOrder("O2", "C2", date(2024, 1, 6), 100),
	}

	result := CalculateAcquisitionRetention(ds, 0, nil)

	assert.Equal(t, []domain.FunnelStage{
		{Stage: "visitors", Quantity: PlaceholderFunnelVisitors, Simulated: true},
		{Stage: "carts", Quantity: PlaceholderFunnelCarts, Simulated: true},
		{Stage: "purchases", Quantity: 2},
	}, result.Funnel)
}
