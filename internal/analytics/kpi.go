package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

// CalculateKPIs calcula os indicadores principais do recorte recebido.
// O recorte por período já deve ter sido aplicado pelo chamador, marketingSpend
// e dateRange fazem parte do contrato mas não alteram o cálculo.
func CalculateKPIs(ds domain.Dataset, marketingSpend float64, dateRange domain.DateRange) domain.KPIs {
	orders := make(map[string]struct{})
	cancelledOrders := make(map[string]struct{})
	customers := make(map[string]struct{})
	products := make(map[string]struct{})
	categories := make(map[string]struct{})

	revenue := decimal.Zero
	lost := decimal.Zero
	cancelledRows := 0

	var reviews, deliveries []float64

	for _, order := range ds {
		orders[order.OrderID] = struct{}{}
		customers[order.CustomerUniqueID] = struct{}{}
		products[order.ProductID] = struct{}{}

		if category, ok := order.CategoryName(); ok {
			categories[category] = struct{}{}
		}

		price := decimal.NewFromFloat(order.Price)
		if order.Cancelled {
			cancelledOrders[order.OrderID] = struct{}{}
			cancelledRows++
			lost = lost.Add(price)
		} else {
			revenue = revenue.Add(price)
		}

		if order.ReviewScore != nil {
			reviews = append(reviews, float64(*order.ReviewScore))
		}

		if order.DeliveredAt != nil {
			deliveries = append(deliveries, wholeDays(order.DeliveredAt.Sub(order.PurchasedAt)))
		}
	}

	totalRevenue := revenue.InexactFloat64()

	kpis := domain.KPIs{
		TotalRevenue:     totalRevenue,
		TotalOrders:      len(orders),
		TotalCustomers:   len(customers),
		TotalProducts:    len(products),
		UniqueCategories: len(categories),
		AbandonmentRate:  safeDiv(float64(len(cancelledOrders)), float64(len(orders))),
		AverageTicket:    safeDiv(totalRevenue, float64(len(orders))),
		CancellationRate: safeDiv(float64(cancelledRows), float64(len(ds))),
		LostRevenue:      lost.InexactFloat64(),
	}

	if csat, ok := mean(reviews); ok {
		kpis.CSAT = floatPtr(csat)
	}

	if deliveryTime, ok := mean(deliveries); ok {
		kpis.AvgDeliveryTime = floatPtr(deliveryTime)
	}

	return kpis
}

// nonCancelledRevenue soma o preço das linhas não canceladas
func nonCancelledRevenue(ds domain.Dataset) float64 {
	total := decimal.Zero
	for _, order := range ds {
		if !order.Cancelled {
			total = total.Add(decimal.NewFromFloat(order.Price))
		}
	}

	return total.InexactFloat64()
}
