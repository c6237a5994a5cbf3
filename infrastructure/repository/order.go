package repository

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/vfg2006/commerce-insights-api/infrastructure/database"
	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

var (
	validTableName = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

	orderColumns = []string{
		"order_id",
		"customer_unique_id",
		"order_purchase_timestamp",
		"order_delivered_customer_date",
		"order_status",
		"pedido_cancelado",
		"price",
		"review_score",
		"product_id",
		"product_category_name",
		"customer_state",
	}
)

//go:generate mockgen -source=order.go -destination=mocks/order.go -package=mocks

type OrderRepository interface {
	ListOrders(ctx context.Context, since *time.Time) (domain.Dataset, error)
}

type orderRepository struct {
	conn        database.Queryer
	table       string
	placeholder squirrel.PlaceholderFormat
}

func NewOrderRepository(conn *database.Connection, table string) (OrderRepository, error) {
	if !validTableName.MatchString(table) {
		return nil, fmt.Errorf("nome de tabela inválido: %q", table)
	}

	return &orderRepository{
		conn:        conn,
		table:       table,
		placeholder: conn.Placeholder(),
	}, nil
}

// ListOrders lê as linhas do ledger ordenadas pela data de compra. Com since
// informado, apenas compras a partir dessa data são retornadas.
func (r *orderRepository) ListOrders(ctx context.Context, since *time.Time) (domain.Dataset, error) {
	query, args, err := buildListOrdersQuery(r.table, since, r.placeholder)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de pedidos")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query de pedidos")
	}
	defer rows.Close()

	var orders domain.Dataset
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear pedido")
		}

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro ao iterar pedidos")
	}

	return orders, nil
}

func buildListOrdersQuery(table string, since *time.Time, placeholder squirrel.PlaceholderFormat) (string, []any, error) {
	builder := squirrel.
		Select(orderColumns...).
		From(table).
		OrderBy("order_purchase_timestamp ASC").
		PlaceholderFormat(placeholder)

	if since != nil {
		builder = builder.Where(squirrel.GtOrEq{"order_purchase_timestamp": since.UTC()})
	}

	return builder.ToSql()
}

func scanOrder(rows *sql.Rows) (domain.Order, error) {
	var (
		order       domain.Order
		deliveredAt sql.NullTime
		reviewScore sql.NullInt64
		category    sql.NullString
	)

	err := rows.Scan(
		&order.OrderID,
		&order.CustomerUniqueID,
		&order.PurchasedAt,
		&deliveredAt,
		&order.Status,
		&order.Cancelled,
		&order.Price,
		&reviewScore,
		&order.ProductID,
		&category,
		&order.CustomerState,
	)
	if err != nil {
		return domain.Order{}, err
	}

	if deliveredAt.Valid {
		order.DeliveredAt = &deliveredAt.Time
	}

	if reviewScore.Valid {
		score := int(reviewScore.Int64)
		order.ReviewScore = &score
	}

	if category.Valid && category.String != "" {
		order.Category = &category.String
	}

	return order, nil
}
