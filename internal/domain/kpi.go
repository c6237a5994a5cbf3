package domain

// KPIs reúne os indicadores principais de um recorte do ledger.
// CSAT e AvgDeliveryTime ficam nulos quando não há dados para calculá-los.
type KPIs struct {
	TotalRevenue     float64  `json:"total_revenue"`
	TotalOrders      int      `json:"total_orders"`
	TotalCustomers   int      `json:"total_customers"`
	TotalProducts    int      `json:"total_products"`
	UniqueCategories int      `json:"unique_categories"`
	AbandonmentRate  float64  `json:"abandonment_rate"`
	CSAT             *float64 `json:"csat"`
	AverageTicket    float64  `json:"average_ticket"`
	AvgDeliveryTime  *float64 `json:"avg_delivery_time"`
	CancellationRate float64  `json:"cancellation_rate"`
	LostRevenue      float64  `json:"lost_revenue"`
}

type MonthlyCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type FunnelStage struct {
	Stage     string `json:"stage"`
	Quantity  int    `json:"quantity"`
	Simulated bool   `json:"simulated"`
}

// AcquisitionRetention reúne os indicadores de aquisição e recompra.
// ReturningCustomers considera recompra dentro do mesmo mês, enquanto
// RepurchaseRate considera qualquer recompra no período.
type AcquisitionRetention struct {
	NewCustomers       []MonthlyCount `json:"new_customers"`
	TotalNewCustomers  int            `json:"total_new_customers"`
	ReturningCustomers []MonthlyCount `json:"returning_customers"`
	RepurchaseRate     float64        `json:"repurchase_rate"`
	AvgTimeToSecond    float64        `json:"avg_time_to_second"`
	CAC                float64        `json:"cac"`
	LTV                float64        `json:"ltv"`
	Funnel             []FunnelStage  `json:"funnel_data"`
}
