package domain

import "time"

// Order representa uma linha do ledger de pedidos. Um pedido com vários itens
// aparece em várias linhas com o mesmo OrderID.
type Order struct {
	OrderID          string     `json:"order_id"`
	CustomerUniqueID string     `json:"customer_unique_id"`
	PurchasedAt      time.Time  `json:"order_purchase_timestamp"`
	DeliveredAt      *time.Time `json:"order_delivered_customer_date"`
	Status           string     `json:"order_status"`
	Cancelled        bool       `json:"cancelled"`
	Price            float64    `json:"price"`
	ReviewScore      *int       `json:"review_score"`
	ProductID        string     `json:"product_id"`
	Category         *string    `json:"product_category_name"`
	CustomerState    string     `json:"customer_state"`
}

// CategoryName retorna a categoria do produto quando ela existe
func (o Order) CategoryName() (string, bool) {
	if o.Category == nil || *o.Category == "" {
		return "", false
	}

	return *o.Category, true
}

// Dataset é a coleção de linhas sobre a qual as métricas são calculadas.
// As funções de análise nunca alteram o Dataset recebido.
type Dataset []Order

// DateRange só é considerado válido quando possui exatamente início e fim
type DateRange []time.Time

func NewDateRange(start, end time.Time) DateRange {
	return DateRange{start, end}
}

func (r DateRange) Valid() bool {
	return len(r) == 2
}

// Snapshot é uma versão carregada e imutável do ledger
type Snapshot struct {
	ID       string    `json:"id"`
	LoadedAt time.Time `json:"loaded_at"`
	Orders   Dataset   `json:"-"`
}

func (s *Snapshot) Rows() int {
	if s == nil {
		return 0
	}

	return len(s.Orders)
}
