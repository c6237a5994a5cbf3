package analytics

import (
	"sort"
	"time"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

// Valores simulados do funil. Não existe fonte de tráfego real para visitantes
// e carrinhos, por isso as etapas correspondentes saem marcadas como simuladas.
const (
	PlaceholderFunnelVisitors = 100000
	PlaceholderFunnelCarts    = 50000
)

type customerActivity struct {
	firstPurchase time.Time
	orders        map[string]struct{}
	purchases     []time.Time
}

// CalculateAcquisitionRetention calcula aquisição por coorte, recompra, CAC e LTV
func CalculateAcquisitionRetention(ds domain.Dataset, marketingSpend float64, dateRange domain.DateRange) domain.AcquisitionRetention {
	customers := make(map[string]*customerActivity)
	rowsPerCustomerMonth := make(map[string]map[string]int)

	for _, order := range ds {
		activity, ok := customers[order.CustomerUniqueID]
		if !ok {
			activity = &customerActivity{
				firstPurchase: order.PurchasedAt,
				orders:        make(map[string]struct{}),
			}
			customers[order.CustomerUniqueID] = activity
		}

		if order.PurchasedAt.Before(activity.firstPurchase) {
			activity.firstPurchase = order.PurchasedAt
		}

		activity.orders[order.OrderID] = struct{}{}
		activity.purchases = append(activity.purchases, order.PurchasedAt)

		month := monthKey(order.PurchasedAt)
		if rowsPerCustomerMonth[month] == nil {
			rowsPerCustomerMonth[month] = make(map[string]int)
		}
		rowsPerCustomerMonth[month][order.CustomerUniqueID]++
	}

	newPerMonth := make(map[string]int)
	repeatCustomers := 0
	var gaps []float64

	for _, activity := range customers {
		newPerMonth[monthKey(activity.firstPurchase)]++

		if len(activity.orders) > 1 {
			repeatCustomers++
		}

		if gap, ok := timeToSecondPurchase(activity); ok {
			gaps = append(gaps, gap)
		}
	}

	returningPerMonth := make(map[string]int)
	for month, perCustomer := range rowsPerCustomerMonth {
		for _, rows := range perCustomer {
			if rows > 1 {
				returningPerMonth[month]++
			}
		}
	}

	totalCustomers := len(customers)
	avgTimeToSecond, _ := mean(gaps)

	return domain.AcquisitionRetention{
		NewCustomers:       sortedMonthlyCounts(newPerMonth),
		TotalNewCustomers:  totalCustomers,
		ReturningCustomers: sortedMonthlyCounts(returningPerMonth),
		RepurchaseRate:     safeDiv(float64(repeatCustomers), float64(totalCustomers)),
		AvgTimeToSecond:    avgTimeToSecond,
		CAC:                safeDiv(marketingSpend, float64(totalCustomers)),
		LTV:                safeDiv(nonCancelledRevenue(ds), float64(totalCustomers)),
		Funnel: []domain.FunnelStage{
			{Stage: "visitors", Quantity: PlaceholderFunnelVisitors, Simulated: true},
			{Stage: "carts", Quantity: PlaceholderFunnelCarts, Simulated: true},
			{Stage: "purchases", Quantity: totalCustomers},
		},
	}
}

// timeToSecondPurchase retorna o intervalo em dias inteiros entre as duas
// primeiras linhas de compra do cliente. Um primeiro pedido com vários itens
// gera intervalo nulo e o cliente não conta.
func timeToSecondPurchase(activity *customerActivity) (float64, bool) {
	if len(activity.purchases) < 2 {
		return 0, false
	}

	purchases := append([]time.Time(nil), activity.purchases...)
	sort.Slice(purchases, func(i, j int) bool {
		return purchases[i].Before(purchases[j])
	})

	gap := wholeDays(purchases[1].Sub(purchases[0]))
	if gap <= 0 {
		return 0, false
	}

	return gap, true
}

func sortedMonthlyCounts(counts map[string]int) []domain.MonthlyCount {
	result := make([]domain.MonthlyCount, 0, len(counts))
	for month, count := range counts {
		result = append(result, domain.MonthlyCount{Month: month, Count: count})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Month < result[j].Month
	})

	return result
}
