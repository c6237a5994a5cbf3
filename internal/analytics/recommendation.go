package analytics

import (
	"math"
	"sort"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

const (
	MinMonthlyOrders = 10
	MinTotalRevenue  = 5000

	leadTimeDays    = 15
	safetyStockDays = 7
	daysPerMonth    = 30
)

// RecommendInventory classifica a ação de estoque de cada categoria elegível a
// partir da variação prevista e do giro. O resultado é ordenado de forma estável
// pela variação absoluta, da maior para a menor.
func RecommendInventory(demand []domain.CategoryDemand) []domain.Recommendation {
	recommendations := make([]domain.Recommendation, 0, len(demand))

	for _, category := range demand {
		next, ok := category.NextMonthForecast()
		if !ok || len(category.History) == 0 {
			continue
		}

		if category.AvgMonthlyOrders < MinMonthlyOrders || category.Revenue < MinTotalRevenue {
			continue
		}

		last := category.History[len(category.History)-1].Count

		variation := 0.0
		if last > 0 {
			variation = (next - float64(last)) / float64(last) * 100
		}

		turnover := category.AvgMonthlyOrders / daysPerMonth
		action := classifyStockAction(variation, turnover)

		recommendations = append(recommendations, domain.Recommendation{
			Category:          category.Category,
			AvgMonthlyOrders:  category.AvgMonthlyOrders,
			LastMonthOrders:   last,
			NextMonthForecast: next,
			Variation:         variation,
			InventoryTurnover: turnover,
			IdealStock:        next / daysPerMonth * (leadTimeDays + safetyStockDays),
			Revenue:           category.Revenue,
			Action:            action,
			Rationale:         action.Rationale(),
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return math.Abs(recommendations[i].Variation) > math.Abs(recommendations[j].Variation)
	})

	return recommendations
}

func classifyStockAction(variation, turnover float64) domain.StockAction {
	switch {
	case variation > 20 && turnover > 1:
		return domain.ActionIncreaseSignificantly
	case variation > 10 && turnover > 0.5:
		return domain.ActionIncreaseModerately
	case variation < -20 && turnover < 0.3:
		return domain.ActionReduceSignificantly
	case variation < -10 && turnover < 0.5:
		return domain.ActionReduceModerately
	default:
		return domain.ActionHold
	}
}
