package domain

import "time"

// DailyRevenue é um ponto da série diária de receita. MovingAverage fica nulo
// enquanto a janela móvel ainda não está completa.
type DailyRevenue struct {
	Date          time.Time `json:"date"`
	Revenue       float64   `json:"revenue"`
	MovingAverage *float64  `json:"moving_average"`
}

type WeekdayFactor struct {
	Weekday string  `json:"weekday"`
	Factor  float64 `json:"factor"`
}

type ForecastPoint struct {
	Date              time.Time `json:"date"`
	Weekday           string    `json:"weekday"`
	SeasonalityFactor float64   `json:"seasonality_factor"`
	Forecast          float64   `json:"forecast"`
	LowerBound        float64   `json:"lower_bound"`
	UpperBound        float64   `json:"upper_bound"`
}

type ForecastSummary struct {
	TotalForecast    float64        `json:"total_forecast"`
	PreviousPeriod   float64        `json:"previous_period"`
	GrowthPercentage float64        `json:"growth_percentage"`
	PeakDay          *ForecastPoint `json:"peak_day"`
}

// RevenueForecast é a projeção diária de receita com banda de confiança
type RevenueForecast struct {
	History      []DailyRevenue  `json:"history"`
	Seasonality  []WeekdayFactor `json:"seasonality"`
	Trend        float64         `json:"trend"`
	BaseForecast float64         `json:"base_forecast"`
	StdDev       float64         `json:"std_dev"`
	Points       []ForecastPoint `json:"points"`
	Summary      ForecastSummary `json:"summary"`
}

type MonthlyForecast struct {
	Month    string  `json:"month"`
	Forecast float64 `json:"forecast"`
}

// CategoryDemand é a projeção mensal de pedidos de uma categoria
type CategoryDemand struct {
	Category         string            `json:"category"`
	History          []MonthlyCount    `json:"history"`
	Revenue          float64           `json:"revenue"`
	AvgMonthlyOrders float64           `json:"avg_monthly_orders"`
	MovingAverage    float64           `json:"moving_average"`
	Trend            float64           `json:"trend"`
	Forecast         []MonthlyForecast `json:"forecast"`
}

// NextMonthForecast retorna a projeção do primeiro mês à frente
func (d CategoryDemand) NextMonthForecast() (float64, bool) {
	if len(d.Forecast) == 0 {
		return 0, false
	}

	return d.Forecast[0].Forecast, true
}
