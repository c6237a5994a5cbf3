package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

func demandFor(category string, avgMonthly, revenue float64, lastMonth int, forecast float64) domain.CategoryDemand {
	return domain.CategoryDemand{
		Category:         category,
		History:          []domain.MonthlyCount{{Month: "2024-01", Count: lastMonth}},
		Revenue:          revenue,
		AvgMonthlyOrders: avgMonthly,
		Forecast:         []domain.MonthlyForecast{{Month: "2024-02", Forecast: forecast}},
	}
}

func TestRecommendInventory(t *testing.T) {
	tests := []struct {
		name     string
		demand   domain.CategoryDemand
		expected domain.StockAction
	}{
		{
			name:     "Variação de 30 com giro 0.5 mantém o estoque",
			demand:   demandFor("moveis", 15, 8000, 100, 130),
			expected: domain.ActionHold,
		},
		{
			name:     "Variação de 30 com giro acima de 1 aumenta significativamente",
			demand:   demandFor("moveis", 36, 8000, 100, 130),
			expected: domain.ActionIncreaseSignificantly,
		},
		{
			name:     "Giro exatamente 1 não aumenta significativamente",
			demand:   demandFor("moveis", 30, 8000, 100, 130),
			expected: domain.ActionIncreaseModerately,
		},
		{
			name:     "Variação exatamente 20 não aumenta significativamente",
			demand:   demandFor("moveis", 36, 8000, 100, 120),
			expected: domain.ActionIncreaseModerately,
		},
		{
			name:     "Queda de 30 com giro baixo reduz moderadamente",
			demand:   demandFor("moveis", 12, 8000, 100, 70),
			expected: domain.ActionReduceModerately,
		},
		{
			name:     "Queda de 30 com giro alto mantém",
			demand:   demandFor("moveis", 30, 8000, 100, 70),
			expected: domain.ActionHold,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RecommendInventory([]domain.CategoryDemand{tt.demand})

			require.Len(t, result, 1)
			assert.Equal(t, tt.expected, result[0].Action)
			assert.Equal(t, tt.expected.Rationale(), result[0].Rationale)
		})
	}
}

func TestRecommendInventory_Metrics(t *testing.T) {
	result := RecommendInventory([]domain.CategoryDemand{demandFor("moveis", 15, 8000, 100, 130)})

	require.Len(t, result, 1)
	rec := result[0]
	assert.InDelta(t, 30.0, rec.Variation, 1e-9)
	assert.InDelta(t, 0.5, rec.InventoryTurnover, 1e-9)
	assert.InDelta(t, 130.0/30.0*22.0, rec.IdealStock, 1e-9)
	assert.Equal(t, 100, rec.LastMonthOrders)
	assert.Equal(t, 130.0, rec.NextMonthForecast)
}

func TestRecommendInventory_Eligibility(t *testing.T) {
	demand := []domain.CategoryDemand{
		demandFor("poucos_pedidos", 9.9, 8000, 100, 130),
		demandFor("pouca_receita", 15, 4999.99, 100, 130),
		{Category: "sem_previsao", History: []domain.MonthlyCount{{Month: "2024-01", Count: 20}}, AvgMonthlyOrders: 20, Revenue: 9000},
		demandFor("limite", 10, 5000, 100, 100),
	}

	result := RecommendInventory(demand)

	require.Len(t, result, 1)
	assert.Equal(t, "limite", result[0].Category)
}

func TestRecommendInventory_ZeroLastMonth(t *testing.T) {
	result := RecommendInventory([]domain.CategoryDemand{demandFor("moveis", 15, 8000, 0, 40)})

	require.Len(t, result, 1)
	assert.Equal(t, 0.0, result[0].Variation)
	assert.Equal(t, domain.ActionHold, result[0].Action)
}

func TestRecommendInventory_StableSortByAbsoluteVariation(t *testing.T) {
	demand := []domain.CategoryDemand{
		demandFor("pequena", 15, 8000, 100, 105),
		demandFor("alta", 15, 8000, 100, 130),
		demandFor("queda", 15, 8000, 100, 70),
		demandFor("maior", 15, 8000, 100, 160),
	}

	result := RecommendInventory(demand)

	categories := make([]string, 0, len(result))
	for _, rec := range result {
		categories = append(categories, rec.Category)
	}
	assert.Equal(t, []string{"maior", "alta", "queda", "pequena"}, categories)
}

func TestClassifyStockAction(t *testing.T) {
	assert.Equal(t, domain.ActionReduceSignificantly, classifyStockAction(-30, 0.2))
	assert.Equal(t, domain.ActionReduceModerately, classifyStockAction(-30, 0.3))
	assert.Equal(t, domain.ActionHold, classifyStockAction(-10, 0.1))
	assert.Equal(t, domain.ActionHold, classifyStockAction(10, 2))
	assert.Equal(t, domain.ActionIncreaseModerately, classifyStockAction(10.01, 0.51))
}
