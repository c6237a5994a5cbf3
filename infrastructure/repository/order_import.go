package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/vfg2006/commerce-insights-api/infrastructure/database"
	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

const insertBatchSize = 500

var columnTypes = map[string]struct{ timestamp, float string }{
	database.DriverPostgres: {timestamp: "TIMESTAMP", float: "DOUBLE PRECISION"},
	database.DriverMySQL:    {timestamp: "DATETIME", float: "DOUBLE"},
}

//go:generate mockgen -source=order_import.go -destination=mocks/order_import.go -package=mocks

// OrderImporter grava linhas no ledger. Usado apenas pelos scripts de carga.
type OrderImporter interface {
	CreateTable(ctx context.Context) error
	InsertOrders(ctx context.Context, orders domain.Dataset) (int, error)
}

type orderImporter struct {
	conn        *database.Connection
	table       string
	driver      string
	placeholder squirrel.PlaceholderFormat
}

func NewOrderImporter(conn *database.Connection, table string) (OrderImporter, error) {
	if !validTableName.MatchString(table) {
		return nil, fmt.Errorf("nome de tabela inválido: %q", table)
	}

	return &orderImporter{
		conn:        conn,
		table:       table,
		driver:      conn.Driver(),
		placeholder: conn.Placeholder(),
	}, nil
}

func (i *orderImporter) CreateTable(ctx context.Context) error {
	ddl, err := createOrdersTableSQL(i.driver, i.table)
	if err != nil {
		return err
	}

	if _, err := i.conn.ExecContext(ctx, ddl); err != nil {
		return errors.Wrap(err, "erro ao criar tabela de pedidos")
	}

	return nil
}

// InsertOrders grava as linhas em lotes e retorna quantas foram inseridas
func (i *orderImporter) InsertOrders(ctx context.Context, orders domain.Dataset) (int, error) {
	inserted := 0
	for start := 0; start < len(orders); start += insertBatchSize {
		end := min(start+insertBatchSize, len(orders))

		query, args, err := buildInsertOrdersQuery(i.table, orders[start:end], i.placeholder)
		if err != nil {
			return inserted, errors.Wrap(err, "erro ao construir insert de pedidos")
		}

		if _, err := i.conn.ExecContext(ctx, query, args...); err != nil {
			return inserted, errors.Wrapf(err, "erro ao inserir lote %d-%d", start, end)
		}

		inserted += end - start
	}

	return inserted, nil
}

func createOrdersTableSQL(driver, table string) (string, error) {
	types, ok := columnTypes[driver]
	if !ok {
		return "", fmt.Errorf("driver não suportado: %s", driver)
	}

	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	order_id VARCHAR(64) NOT NULL,
	customer_unique_id VARCHAR(64) NOT NULL,
	order_purchase_timestamp %s NOT NULL,
	order_delivered_customer_date %s NULL,
	order_status VARCHAR(32) NOT NULL,
	pedido_cancelado BOOLEAN NOT NULL DEFAULT FALSE,
	price %s NOT NULL,
	review_score INTEGER NULL,
	product_id VARCHAR(64) NOT NULL,
	product_category_name VARCHAR(128) NULL,
	customer_state CHAR(2) NOT NULL
)`, table, types.timestamp, types.timestamp, types.float), nil
}

func buildInsertOrdersQuery(table string, orders domain.Dataset, placeholder squirrel.PlaceholderFormat) (string, []any, error) {
	builder := squirrel.
		Insert(table).
		Columns(orderColumns...).
		PlaceholderFormat(placeholder)

	for _, order := range orders {
		var deliveredAt, reviewScore, category any
		if order.DeliveredAt != nil {
			deliveredAt = order.DeliveredAt.UTC()
		}
		if order.ReviewScore != nil {
			reviewScore = *order.ReviewScore
		}
		if order.Category != nil {
			category = *order.Category
		}

		builder = builder.Values(
			order.OrderID,
			order.CustomerUniqueID,
			order.PurchasedAt.UTC(),
			deliveredAt,
			order.Status,
			order.Cancelled,
			order.Price,
			reviewScore,
			order.ProductID,
			category,
			order.CustomerState,
		)
	}

	return builder.ToSql()
}
