package domain

type MonthlyValue struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

type RevenueGrowth struct {
	GrowthPercentage float64       `json:"growth_percentage"`
	BestMonth        *MonthlyValue `json:"best_month"`
}

type PeriodRevenue struct {
	Period  string  `json:"period"`
	Revenue float64 `json:"revenue"`
}

type StateMetrics struct {
	State           string   `json:"state"`
	AverageTicket   float64  `json:"average_ticket"`
	AvgDeliveryTime *float64 `json:"avg_delivery_time"`
	Rows            int      `json:"rows"`
}

type ScoreShare struct {
	Score int     `json:"score"`
	Count int     `json:"count"`
	Share float64 `json:"share"`
}

type CategoryProfit struct {
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
	Profit   float64 `json:"profit"`
}

type CategoryGrowthRate struct {
	Category         string  `json:"category"`
	FirstMonth       string  `json:"first_month"`
	LastMonth        string  `json:"last_month"`
	GrowthPercentage float64 `json:"growth_percentage"`
}

type RatioBand string

const (
	RatioBandLoss      RatioBand = "loss"
	RatioBandBreakeven RatioBand = "breakeven"
	RatioBandLow       RatioBand = "low"
	RatioBandIdeal     RatioBand = "ideal"
	RatioBandHigh      RatioBand = "high"
)

type LTVCACRatio struct {
	Ratio float64   `json:"ratio"`
	Band  RatioBand `json:"band"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type CategoryHighlight struct {
	Category         string   `json:"category"`
	Revenue          float64  `json:"revenue"`
	AverageTicket    float64  `json:"average_ticket"`
	Rows             int      `json:"rows"`
	CancellationRate float64  `json:"cancellation_rate"`
	AvgReview        *float64 `json:"avg_review"`
}

type CategoryHighlights struct {
	Top    []CategoryHighlight `json:"top"`
	Bottom []CategoryHighlight `json:"bottom"`
}

// Overview agrega os painéis complementares do dashboard
type Overview struct {
	MonthlyRevenue        []MonthlyValue       `json:"monthly_revenue"`
	RevenueGrowth         RevenueGrowth        `json:"revenue_growth"`
	MonthlySatisfaction   []MonthlyValue       `json:"monthly_satisfaction"`
	RevenueByWeekday      []PeriodRevenue      `json:"revenue_by_weekday"`
	BestWeekday           string               `json:"best_weekday"`
	RevenueByMonth        []PeriodRevenue      `json:"revenue_by_month"`
	BestCalendarMonth     string               `json:"best_calendar_month"`
	States                []StateMetrics       `json:"states"`
	ReviewDistribution    []ScoreShare         `json:"review_distribution"`
	CategoryProfitability []CategoryProfit     `json:"category_profitability"`
	CategoryGrowth        []CategoryGrowthRate `json:"category_growth"`
	LTVCACRatio           LTVCACRatio          `json:"ltv_cac_ratio"`
	OrderStatus           []StatusCount        `json:"order_status"`
	CategoryHighlights    CategoryHighlights   `json:"category_highlights"`
}
