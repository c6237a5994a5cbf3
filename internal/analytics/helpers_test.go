package analytics

import (
	"fmt"
	"time"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 10, 0, 0, 0, time.UTC)
}

func stringPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func newOrder(orderID, customerID string, purchasedAt time.Time, price float64) domain.Order {
	return domain.Order{
		OrderID:          orderID,
		CustomerUniqueID: customerID,
		PurchasedAt:      purchasedAt,
		Status:           "delivered",
		Price:            price,
		ProductID:        "P-" + orderID,
		CustomerState:    "SP",
	}
}

// categoryRows gera n linhas de uma categoria no mês informado, uma por pedido
func categoryRows(category string, month time.Time, n int, price float64) domain.Dataset {
	rows := make(domain.Dataset, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("%s-%s-%d", category, month.Format("200601"), i)
		order := newOrder(id, "C-"+id, month, price)
		order.Category = stringPtr(category)
		rows = append(rows, order)
	}

	return rows
}

func concat(parts ...domain.Dataset) domain.Dataset {
	var ds domain.Dataset
	for _, p := range parts {
		ds = append(ds, p...)
	}

	return ds
}
