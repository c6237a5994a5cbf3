package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

const (
	demandWindow         = 3
	demandForecastMonths = 3
)

type categoryTotals struct {
	name       string
	firstIndex int
	rows       int
	revenue    decimal.Decimal
	perMonth   map[time.Time]int
}

// ForecastCategoryDemand projeta os pedidos mensais das categorias com maior
// volume de linhas. Categorias com menos de três meses de histórico são ignoradas.
func ForecastCategoryDemand(ds domain.Dataset, opts ...Option) []domain.CategoryDemand {
	cfg := applyOptions(opts)

	categories, lastMonth := groupByCategory(ds)
	if len(categories) == 0 {
		return []domain.CategoryDemand{}
	}

	sort.SliceStable(categories, func(i, j int) bool {
		if categories[i].rows != categories[j].rows {
			return categories[i].rows > categories[j].rows
		}
		return categories[i].firstIndex < categories[j].firstIndex
	})

	if len(categories) > cfg.topCategories {
		categories = categories[:cfg.topCategories]
	}

	result := make([]domain.CategoryDemand, 0, len(categories))
	for _, category := range categories {
		months, counts := monthlySeries(category.perMonth)
		if len(counts) < demandWindow {
			continue
		}

		history := make([]domain.MonthlyCount, len(months))
		for i := range months {
			history[i] = domain.MonthlyCount{Month: monthKey(months[i]), Count: int(counts[i])}
		}

		recent := tail(counts, demandWindow)
		movingAvg, _ := mean(recent)
		trend := slope(recent)
		avgMonthly, _ := mean(counts)

		forecast := make([]domain.MonthlyForecast, demandForecastMonths)
		for k := 1; k <= demandForecastMonths; k++ {
			forecast[k-1] = domain.MonthlyForecast{
				Month:    monthKey(lastMonth.AddDate(0, k, 0)),
				Forecast: math.Max(0, movingAvg+trend*float64(k)),
			}
		}

		result = append(result, domain.CategoryDemand{
			Category:         category.name,
			History:          history,
			Revenue:          category.revenue.InexactFloat64(),
			AvgMonthlyOrders: avgMonthly,
			MovingAverage:    movingAvg,
			Trend:            trend,
			Forecast:         forecast,
		})
	}

	return result
}

// groupByCategory acumula linhas, receita e contagem mensal por categoria e
// retorna também o último mês com vendas categorizadas
func groupByCategory(ds domain.Dataset) ([]*categoryTotals, time.Time) {
	byName := make(map[string]*categoryTotals)
	var ordered []*categoryTotals
	var lastMonth time.Time

	for _, order := range ds {
		name, ok := order.CategoryName()
		if !ok {
			continue
		}

		totals, found := byName[name]
		if !found {
			totals = &categoryTotals{name: name, firstIndex: len(ordered), perMonth: make(map[time.Time]int)}
			byName[name] = totals
			ordered = append(ordered, totals)
		}

		month := monthOf(order.PurchasedAt)
		totals.rows++
		totals.revenue = totals.revenue.Add(decimal.NewFromFloat(order.Price))
		totals.perMonth[month]++

		if month.After(lastMonth) {
			lastMonth = month
		}
	}

	return ordered, lastMonth
}

func monthlySeries(perMonth map[time.Time]int) ([]time.Time, []float64) {
	months := make([]time.Time, 0, len(perMonth))
	for month := range perMonth {
		months = append(months, month)
	}

	sort.Slice(months, func(i, j int) bool {
		return months[i].Before(months[j])
	})

	counts := make([]float64, len(months))
	for i, month := range months {
		counts[i] = float64(perMonth[month])
	}

	return months, counts
}

func monthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
