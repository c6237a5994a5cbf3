package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

const (
	movingAverageWindow = 7
	trendWindow         = 30
	confidenceZ         = 1.96
)

var weekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday,
}

// ForecastRevenue projeta a receita diária combinando média móvel de 7 dias,
// sazonalidade por dia da semana e tendência linear dos últimos 30 dias
func ForecastRevenue(ds domain.Dataset, opts ...Option) domain.RevenueForecast {
	cfg := applyOptions(opts)

	days, revenues := dailyRevenue(ds)
	averages := movingAverage(revenues, movingAverageWindow)

	history := make([]domain.DailyRevenue, len(days))
	for i := range days {
		history[i] = domain.DailyRevenue{Date: days[i], Revenue: revenues[i], MovingAverage: averages[i]}
	}

	factors := weekdaySeasonality(days, revenues)
	trend := slope(tail(revenues, trendWindow))

	base := 0.0
	lastDate := cfg.anchor
	if len(days) > 0 {
		lastDate = days[len(days)-1]
		if last := averages[len(averages)-1]; last != nil {
			base = *last
		}
	}

	stdDev := populationStdDev(revenues)
	margin := confidenceZ * stdDev

	points := make([]domain.ForecastPoint, cfg.horizon)
	for i := range points {
		daysAhead := i + 1
		date := lastDate.AddDate(0, 0, daysAhead)
		factor := factors[date.Weekday()]
		value := base*factor + trend*float64(daysAhead)

		points[i] = domain.ForecastPoint{
			Date:              date,
			Weekday:           date.Weekday().String(),
			SeasonalityFactor: factor,
			Forecast:          value,
			LowerBound:        value - margin,
			UpperBound:        value + margin,
		}
	}

	seasonality := make([]domain.WeekdayFactor, 0, len(weekdayOrder))
	for _, weekday := range weekdayOrder {
		seasonality = append(seasonality, domain.WeekdayFactor{Weekday: weekday.String(), Factor: factors[weekday]})
	}

	return domain.RevenueForecast{
		History:      history,
		Seasonality:  seasonality,
		Trend:        trend,
		BaseForecast: base,
		StdDev:       stdDev,
		Points:       points,
		Summary:      summarizeForecast(points, tail(revenues, trendWindow)),
	}
}

// dailyRevenue agrega a receita não cancelada por dia de calendário presente nos dados
func dailyRevenue(ds domain.Dataset) ([]time.Time, []float64) {
	totals := make(map[time.Time]decimal.Decimal)
	for _, order := range ds {
		if order.Cancelled {
			continue
		}

		day := dayOf(order.PurchasedAt)
		totals[day] = totals[day].Add(decimal.NewFromFloat(order.Price))
	}

	days := make([]time.Time, 0, len(totals))
	for day := range totals {
		days = append(days, day)
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})

	revenues := make([]float64, len(days))
	for i, day := range days {
		revenues[i] = totals[day].InexactFloat64()
	}

	return days, revenues
}

// weekdaySeasonality divide a média de cada dia da semana pela média geral.
// Dias sem observação, ou média geral zero, ficam com fator 1.
func weekdaySeasonality(days []time.Time, revenues []float64) map[time.Weekday]float64 {
	factors := make(map[time.Weekday]float64, len(weekdayOrder))
	for _, weekday := range weekdayOrder {
		factors[weekday] = 1
	}

	overall, ok := mean(revenues)
	if !ok || overall == 0 {
		return factors
	}

	perWeekday := make(map[time.Weekday][]float64)
	for i, day := range days {
		perWeekday[day.Weekday()] = append(perWeekday[day.Weekday()], revenues[i])
	}

	for weekday, values := range perWeekday {
		weekdayMean, _ := mean(values)
		factors[weekday] = weekdayMean / overall
	}

	return factors
}

func summarizeForecast(points []domain.ForecastPoint, previous []float64) domain.ForecastSummary {
	summary := domain.ForecastSummary{}

	for i := range points {
		summary.TotalForecast += points[i].Forecast
		if summary.PeakDay == nil || points[i].Forecast > summary.PeakDay.Forecast {
			peak := points[i]
			summary.PeakDay = &peak
		}
	}

	for _, v := range previous {
		summary.PreviousPeriod += v
	}

	if summary.PreviousPeriod > 0 {
		summary.GrowthPercentage = (summary.TotalForecast - summary.PreviousPeriod) / summary.PreviousPeriod * 100
	}

	return summary
}
