package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

// PlaceholderProfitMargin é uma margem simulada aplicada sobre a receita das
// categorias. Não vem de dados de custo reais.
const PlaceholderProfitMargin = 0.30

const (
	DefaultHighlightSize      = 3
	DefaultProfitabilityLimit = 10
)

// BuildOverview monta os painéis complementares do dashboard
func BuildOverview(ds domain.Dataset, marketingSpend float64, topCategories int) domain.Overview {
	if topCategories <= 0 {
		topCategories = DefaultTopCategories
	}

	monthly := MonthlyRevenue(ds)
	byWeekday, bestWeekday := RevenueByWeekday(ds)
	byMonth, bestMonth := RevenueByCalendarMonth(ds)
	acquisition := CalculateAcquisitionRetention(ds, marketingSpend, nil)

	return domain.Overview{
		MonthlyRevenue:        monthly,
		RevenueGrowth:         RevenueGrowth(monthly),
		MonthlySatisfaction:   MonthlySatisfaction(ds),
		RevenueByWeekday:      byWeekday,
		BestWeekday:           bestWeekday,
		RevenueByMonth:        byMonth,
		BestCalendarMonth:     bestMonth,
		States:                StateBreakdown(ds),
		ReviewDistribution:    ReviewDistribution(ds),
		CategoryProfitability: CategoryProfitability(ds, DefaultProfitabilityLimit),
		CategoryGrowth:        CategoryGrowth(ds, topCategories),
		LTVCACRatio:           LTVCACRatio(acquisition.LTV, acquisition.CAC),
		OrderStatus:           OrderStatusFunnel(ds),
		CategoryHighlights:    CategoryHighlights(ds, DefaultHighlightSize),
	}
}

// MonthlyRevenue soma o preço de todas as linhas por mês
func MonthlyRevenue(ds domain.Dataset) []domain.MonthlyValue {
	totals := make(map[string]decimal.Decimal)
	for _, order := range ds {
		month := monthKey(order.PurchasedAt)
		totals[month] = totals[month].Add(decimal.NewFromFloat(order.Price))
	}

	result := make([]domain.MonthlyValue, 0, len(totals))
	for month, total := range totals {
		result = append(result, domain.MonthlyValue{Month: month, Value: total.InexactFloat64()})
	}

	sortMonthlyValues(result)
	return result
}

// RevenueGrowth compara o primeiro e o último mês da série e aponta o melhor mês
func RevenueGrowth(monthly []domain.MonthlyValue) domain.RevenueGrowth {
	growth := domain.RevenueGrowth{}
	if len(monthly) == 0 {
		return growth
	}

	best := monthly[0]
	for _, m := range monthly[1:] {
		if m.Value > best.Value {
			best = m
		}
	}
	growth.BestMonth = &best

	if len(monthly) > 1 {
		first, last := monthly[0].Value, monthly[len(monthly)-1].Value
		if first > 0 {
			growth.GrowthPercentage = (last - first) / first * 100
		}
	}

	return growth
}

// MonthlySatisfaction calcula a nota média por mês, omitindo meses sem avaliação
func MonthlySatisfaction(ds domain.Dataset) []domain.MonthlyValue {
	scores := make(map[string][]float64)
	for _, order := range ds {
		if order.ReviewScore == nil {
			continue
		}

		month := monthKey(order.PurchasedAt)
		scores[month] = append(scores[month], float64(*order.ReviewScore))
	}

	result := make([]domain.MonthlyValue, 0, len(scores))
	for month, values := range scores {
		avg, _ := mean(values)
		result = append(result, domain.MonthlyValue{Month: month, Value: avg})
	}

	sortMonthlyValues(result)
	return result
}

// RevenueByWeekday soma a receita por dia da semana, de segunda a domingo
func RevenueByWeekday(ds domain.Dataset) ([]domain.PeriodRevenue, string) {
	totals := make(map[time.Weekday]decimal.Decimal)
	for _, order := range ds {
		weekday := order.PurchasedAt.Weekday()
		totals[weekday] = totals[weekday].Add(decimal.NewFromFloat(order.Price))
	}

	result := make([]domain.PeriodRevenue, 0, len(weekdayOrder))
	for _, weekday := range weekdayOrder {
		result = append(result, domain.PeriodRevenue{Period: weekday.String(), Revenue: totals[weekday].InexactFloat64()})
	}

	return result, bestPeriod(result)
}

// RevenueByCalendarMonth soma a receita por mês do ano, de janeiro a dezembro
func RevenueByCalendarMonth(ds domain.Dataset) ([]domain.PeriodRevenue, string) {
	totals := make(map[time.Month]decimal.Decimal)
	for _, order := range ds {
		month := order.PurchasedAt.Month()
		totals[month] = totals[month].Add(decimal.NewFromFloat(order.Price))
	}

	result := make([]domain.PeriodRevenue, 0, 12)
	for month := time.January; month <= time.December; month++ {
		result = append(result, domain.PeriodRevenue{Period: month.String(), Revenue: totals[month].InexactFloat64()})
	}

	return result, bestPeriod(result)
}

// StateBreakdown calcula ticket médio e prazo médio de entrega por estado
func StateBreakdown(ds domain.Dataset) []domain.StateMetrics {
	type stateTotals struct {
		prices     []float64
		deliveries []float64
	}

	byState := make(map[string]*stateTotals)
	for _, order := range ds {
		totals, ok := byState[order.CustomerState]
		if !ok {
			totals = &stateTotals{}
			byState[order.CustomerState] = totals
		}

		totals.prices = append(totals.prices, order.Price)
		if order.DeliveredAt != nil {
			totals.deliveries = append(totals.deliveries, wholeDays(order.DeliveredAt.Sub(order.PurchasedAt)))
		}
	}

	result := make([]domain.StateMetrics, 0, len(byState))
	for state, totals := range byState {
		ticket, _ := mean(totals.prices)
		metrics := domain.StateMetrics{State: state, AverageTicket: ticket, Rows: len(totals.prices)}
		if delivery, ok := mean(totals.deliveries); ok {
			metrics.AvgDeliveryTime = floatPtr(delivery)
		}

		result = append(result, metrics)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].AverageTicket != result[j].AverageTicket {
			return result[i].AverageTicket > result[j].AverageTicket
		}
		return result[i].State < result[j].State
	})

	return result
}

// ReviewDistribution retorna a participação de cada nota entre as linhas avaliadas
func ReviewDistribution(ds domain.Dataset) []domain.ScoreShare {
	counts := make(map[int]int)
	total := 0
	for _, order := range ds {
		if order.ReviewScore == nil {
			continue
		}

		counts[*order.ReviewScore]++
		total++
	}

	result := make([]domain.ScoreShare, 0, len(counts))
	for score, count := range counts {
		result = append(result, domain.ScoreShare{Score: score, Count: count, Share: safeDiv(float64(count), float64(total))})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Score < result[j].Score
	})

	return result
}

// CategoryProfitability aplica a margem simulada à receita de cada categoria
func CategoryProfitability(ds domain.Dataset, limit int) []domain.CategoryProfit {
	categories, _ := groupByCategory(ds)

	result := make([]domain.CategoryProfit, 0, len(categories))
	for _, category := range categories {
		revenue := category.revenue.InexactFloat64()
		result = append(result, domain.CategoryProfit{
			Category: category.name,
			Revenue:  revenue,
			Profit:   category.revenue.Mul(decimal.NewFromFloat(PlaceholderProfitMargin)).InexactFloat64(),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Profit > result[j].Profit
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}

	return result
}

// CategoryGrowth compara o primeiro e o último mês de pedidos das categorias de
// maior volume que possuem ao menos dois meses de histórico
func CategoryGrowth(ds domain.Dataset, topN int) []domain.CategoryGrowthRate {
	categories, _ := groupByCategory(ds)

	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].rows > categories[j].rows
	})

	if topN > 0 && len(categories) > topN {
		categories = categories[:topN]
	}

	result := make([]domain.CategoryGrowthRate, 0, len(categories))
	for _, category := range categories {
		months, counts := monthlySeries(category.perMonth)
		if len(counts) < 2 {
			continue
		}

		first, last := counts[0], counts[len(counts)-1]
		result = append(result, domain.CategoryGrowthRate{
			Category:         category.name,
			FirstMonth:       monthKey(months[0]),
			LastMonth:        monthKey(months[len(months)-1]),
			GrowthPercentage: safeDiv(last-first, first) * 100,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].GrowthPercentage > result[j].GrowthPercentage
	})

	return result
}

// LTVCACRatio classifica a relação entre LTV e CAC
func LTVCACRatio(ltv, cac float64) domain.LTVCACRatio {
	ratio := safeDiv(ltv, cac)

	band := domain.RatioBandHigh
	switch {
	case ratio < 1:
		band = domain.RatioBandLoss
	case ratio == 1:
		band = domain.RatioBandBreakeven
	case ratio < 3:
		band = domain.RatioBandLow
	case ratio == 3:
		band = domain.RatioBandIdeal
	}

	return domain.LTVCACRatio{Ratio: ratio, Band: band}
}

// OrderStatusFunnel conta as linhas por status do pedido
func OrderStatusFunnel(ds domain.Dataset) []domain.StatusCount {
	counts := make(map[string]int)
	for _, order := range ds {
		counts[order.Status]++
	}

	result := make([]domain.StatusCount, 0, len(counts))
	for status, count := range counts {
		result = append(result, domain.StatusCount{Status: status, Count: count})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Status < result[j].Status
	})

	return result
}

// CategoryHighlights retorna as n categorias de maior e de menor receita
func CategoryHighlights(ds domain.Dataset, n int) domain.CategoryHighlights {
	type highlightTotals struct {
		domain.CategoryHighlight
		cancelled int
		reviews   []float64
		revenue   decimal.Decimal
	}

	byName := make(map[string]*highlightTotals)
	var ordered []*highlightTotals
	for _, order := range ds {
		name, ok := order.CategoryName()
		if !ok {
			continue
		}

		totals, found := byName[name]
		if !found {
			totals = &highlightTotals{CategoryHighlight: domain.CategoryHighlight{Category: name}}
			byName[name] = totals
			ordered = append(ordered, totals)
		}

		totals.Rows++
		totals.revenue = totals.revenue.Add(decimal.NewFromFloat(order.Price))
		if order.Cancelled {
			totals.cancelled++
		}
		if order.ReviewScore != nil {
			totals.reviews = append(totals.reviews, float64(*order.ReviewScore))
		}
	}

	highlights := make([]domain.CategoryHighlight, 0, len(ordered))
	for _, totals := range ordered {
		h := totals.CategoryHighlight
		h.Revenue = totals.revenue.InexactFloat64()
		h.AverageTicket = safeDiv(h.Revenue, float64(h.Rows))
		h.CancellationRate = safeDiv(float64(totals.cancelled), float64(h.Rows))
		if review, ok := mean(totals.reviews); ok {
			h.AvgReview = floatPtr(review)
		}

		highlights = append(highlights, h)
	}

	sort.SliceStable(highlights, func(i, j int) bool {
		return highlights[i].Revenue > highlights[j].Revenue
	})

	size := max(min(n, len(highlights)), 0)

	bottom := make([]domain.CategoryHighlight, 0, size)
	for i := len(highlights) - 1; i >= len(highlights)-size; i-- {
		bottom = append(bottom, highlights[i])
	}

	return domain.CategoryHighlights{
		Top:    append([]domain.CategoryHighlight{}, highlights[:size]...),
		Bottom: bottom,
	}
}

func bestPeriod(periods []domain.PeriodRevenue) string {
	best := ""
	bestRevenue := 0.0
	for _, p := range periods {
		if p.Revenue > bestRevenue {
			best, bestRevenue = p.Period, p.Revenue
		}
	}

	return best
}

func sortMonthlyValues(values []domain.MonthlyValue) {
	sort.Slice(values, func(i, j int) bool {
		return values[i].Month < values[j].Month
	})
}
