package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

func TestFilterByDateRange(t *testing.T) {
	ds := domain.Dataset{
		newOrder("O1", "C1", date(2024, 1, 1), 100),
		newOrder("O2", "C1", date(2024, 1, 15), 200),
		newOrder("O3", "C2", date(2024, 2, 1), 300),
	}

	tests := []struct {
		name      string
		dateRange domain.DateRange
		expected  []string
	}{
		{
			name:      "Intervalo nulo retorna o dataset completo",
			dateRange: nil,
			expected:  []string{"O1", "O2", "O3"},
		},
		{
			name:      "Intervalo com um extremo é ignorado",
			dateRange: domain.DateRange{date(2024, 1, 10)},
			expected:  []string{"O1", "O2", "O3"},
		},
		{
			name:      "Intervalo com três extremos é ignorado",
			dateRange: domain.DateRange{date(2024, 1, 10), date(2024, 1, 20), date(2024, 1, 30)},
			expected:  []string{"O1", "O2", "O3"},
		},
		{
			name:      "Extremos são inclusivos",
			dateRange: domain.NewDateRange(date(2024, 1, 1), date(2024, 1, 15)),
			expected:  []string{"O1", "O2"},
		},
		{
			name:      "Intervalo sem linhas retorna vazio",
			dateRange: domain.NewDateRange(date(2023, 1, 1), date(2023, 12, 31)),
			expected:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FilterByDateRange(ds, tt.dateRange)

			ids := make([]string, 0, len(result))
			for _, order := range result {
				ids = append(ids, order.OrderID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestFilterByDateRange_WholeRangeMatchesNoFilter(t *testing.T) {
	ds := domain.Dataset{
		newOrder("O1", "C1", date(2024, 1, 1), 100),
		newOrder("O2", "C2", date(2024, 3, 1), 200),
	}

	whole := FilterByDateRange(ds, domain.NewDateRange(date(2024, 1, 1), date(2024, 3, 1)))

	assert.Equal(t, ds, whole)
	assert.Equal(t, CalculateKPIs(ds, 0, nil), CalculateKPIs(whole, 0, nil))
}

func TestFilterByDateRange_Idempotent(t *testing.T) {
	ds := domain.Dataset{
		newOrder("O1", "C1", date(2024, 1, 1), 100),
		newOrder("O2", "C1", date(2024, 2, 1), 200),
		newOrder("O3", "C2", date(2024, 3, 1), 300),
	}
	dateRange := domain.NewDateRange(date(2024, 1, 15), date(2024, 3, 1))

	once := FilterByDateRange(ds, dateRange)
	twice := FilterByDateRange(once, dateRange)

	assert.Equal(t, once, twice)
}

func TestFilterByDateRange_DoesNotMutateInput(t *testing.T) {
	ds := domain.Dataset{
		newOrder("O1", "C1", date(2024, 1, 1), 100),
		newOrder("O2", "C1", date(2024, 2, 1), 200),
	}
	original := append(domain.Dataset{}, ds...)

	result := FilterByDateRange(ds, domain.NewDateRange(date(2024, 2, 1), date(2024, 2, 28)))
	result[0].Price = 999
	result[0].PurchasedAt = time.Time{}

	assert.Equal(t, original, ds)
}
