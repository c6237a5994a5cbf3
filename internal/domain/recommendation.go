package domain

type StockAction string

const (
	ActionIncreaseSignificantly StockAction = "increase_significantly"
	ActionIncreaseModerately    StockAction = "increase_moderately"
	ActionReduceSignificantly   StockAction = "reduce_significantly"
	ActionReduceModerately      StockAction = "reduce_moderately"
	ActionHold                  StockAction = "hold"
)

var stockActionRationale = map[StockAction]string{
	ActionIncreaseSignificantly: "Alto crescimento previsto com bom giro de estoque",
	ActionIncreaseModerately:    "Crescimento moderado com giro adequado",
	ActionReduceSignificantly:   "Queda significativa nas vendas e baixo giro",
	ActionReduceModerately:      "Queda moderada nas vendas",
	ActionHold:                  "Demanda estável",
}

func (a StockAction) Rationale() string {
	return stockActionRationale[a]
}

// Recommendation é a orientação de estoque para uma categoria
type Recommendation struct {
	Category          string      `json:"category"`
	AvgMonthlyOrders  float64     `json:"avg_monthly_orders"`
	LastMonthOrders   int         `json:"last_month_orders"`
	NextMonthForecast float64     `json:"next_month_forecast"`
	Variation         float64     `json:"variation"`
	InventoryTurnover float64     `json:"inventory_turnover"`
	IdealStock        float64     `json:"ideal_stock"`
	Revenue           float64     `json:"revenue"`
	Action            StockAction `json:"action"`
	Rationale         string      `json:"rationale"`
}
