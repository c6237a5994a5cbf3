package analytics

import "github.com/vfg2006/commerce-insights-api/internal/domain"

// FilterByDateRange retorna as linhas com data de compra dentro de [início, fim].
// Um intervalo nulo ou sem exatamente dois extremos devolve o dataset recebido.
// O dataset de entrada nunca é alterado, o resultado é sempre um novo slice.
func FilterByDateRange(ds domain.Dataset, dateRange domain.DateRange) domain.Dataset {
	if !dateRange.Valid() {
		return ds
	}

	start, end := dateRange[0], dateRange[1]

	filtered := make(domain.Dataset, 0, len(ds))
	for _, order := range ds {
		if order.PurchasedAt.Before(start) || order.PurchasedAt.After(end) {
			continue
		}

		filtered = append(filtered, order)
	}

	return filtered
}
