package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/vfg2006/commerce-insights-api/infrastructure/database"
	"github.com/vfg2006/commerce-insights-api/infrastructure/repository"
	"github.com/vfg2006/commerce-insights-api/internal/config"
	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

const (
	timestampLayout = "2006-01-02 15:04:05"
	chunkSize       = 2000
)

var requiredColumns = []string{
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

func setupLogger() {
	// Configura o logger para incluir data, hora e arquivo
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando script de carga do ledger...")
}

// rowParser converte as linhas do CSV exportado do dataset consolidado em pedidos
type rowParser struct {
	index map[string]int
}

func newRowParser(header []string) (*rowParser, error) {
	index := make(map[string]int, len(header))
	for i, column := range header {
		index[strings.TrimSpace(column)] = i
	}

	for _, column := range requiredColumns {
		if _, ok := index[column]; !ok {
			return nil, fmt.Errorf("coluna obrigatória ausente no CSV: %s", column)
		}
	}

	return &rowParser{index: index}, nil
}

func (p *rowParser) field(row []string, column string) string {
	i := p.index[column]
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (p *rowParser) parse(row []string) (domain.Order, error) {
	order := domain.Order{
		OrderID:          p.field(row, "order_id"),
		CustomerUniqueID: p.field(row, "customer_unique_id"),
		Status:           p.field(row, "order_status"),
		ProductID:        p.field(row, "product_id"),
		CustomerState:    p.field(row, "customer_state"),
	}

	purchasedAt, err := time.Parse(timestampLayout, p.field(row, "order_purchase_timestamp"))
	if err != nil {
		return domain.Order{}, fmt.Errorf("order_purchase_timestamp inválido: %w", err)
	}
	order.PurchasedAt = purchasedAt

	if raw := p.field(row, "order_delivered_customer_date"); raw != "" {
		deliveredAt, err := time.Parse(timestampLayout, raw)
		if err != nil {
			return domain.Order{}, fmt.Errorf("order_delivered_customer_date inválido: %w", err)
		}
		order.DeliveredAt = &deliveredAt
	}

	if raw := p.field(row, "pedido_cancelado"); raw != "" {
		cancelled, err := strconv.ParseBool(raw)
		if err != nil {
			return domain.Order{}, fmt.Errorf("pedido_cancelado inválido: %w", err)
		}
		order.Cancelled = cancelled
	}

	price, err := strconv.ParseFloat(p.field(row, "price"), 64)
	if err != nil {
		return domain.Order{}, fmt.Errorf("price inválido: %w", err)
	}
	order.Price = price

	// review_score vem como float no export ("4.0")
	if raw := p.field(row, "review_score"); raw != "" {
		score, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return domain.Order{}, fmt.Errorf("review_score inválido: %w", err)
		}
		rounded := int(math.Round(score))
		order.ReviewScore = &rounded
	}

	if raw := p.field(row, "product_category_name"); raw != "" {
		order.Category = &raw
	}

	return order, nil
}

func importCSV(ctx context.Context, r io.Reader, importer repository.OrderImporter, bar *progressbar.ProgressBar) (int, int, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		return 0, 0, fmt.Errorf("erro ao ler cabeçalho do CSV: %w", err)
	}

	parser, err := newRowParser(header)
	if err != nil {
		return 0, 0, err
	}

	chunk := make(domain.Dataset, 0, chunkSize)
	inserted, skipped, line := 0, 0, 1

	flush := func() error {
		n, err := importer.InsertOrders(ctx, chunk)
		inserted += n
		_ = bar.Add(n)
		chunk = chunk[:0]
		return err
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			log.Printf("AVISO: linha %d ignorada: %v", line, err)
			skipped++
			continue
		}

		order, err := parser.parse(row)
		if err != nil {
			log.Printf("AVISO: linha %d ignorada: %v", line, err)
			skipped++
			continue
		}

		chunk = append(chunk, order)
		if len(chunk) == chunkSize {
			if err := flush(); err != nil {
				return inserted, skipped, err
			}
		}
	}

	if len(chunk) > 0 {
		if err := flush(); err != nil {
			return inserted, skipped, err
		}
	}

	return inserted, skipped, nil
}

func main() {
	setupLogger()

	csvPath := flag.String("csv", "", "CSV exportado do dataset consolidado de pedidos")
	schemaOnly := flag.Bool("schema-only", false, "Apenas cria a tabela do ledger")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	ctx := context.Background()

	conn, err := database.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()
	log.Printf("Conexão estabelecida (driver %s)", conn.Driver())

	importer, err := repository.NewOrderImporter(conn, cfg.Database.OrdersTable)
	if err != nil {
		log.Fatalf("ERRO ao preparar importação: %v", err)
	}

	if err := importer.CreateTable(ctx); err != nil {
		log.Fatalf("ERRO ao criar tabela %s: %v", cfg.Database.OrdersTable, err)
	}
	log.Printf("Tabela %s pronta", cfg.Database.OrdersTable)

	if *schemaOnly {
		return
	}

	if *csvPath == "" {
		log.Fatalf("Uso: script --csv pedidos.csv [--schema-only]")
	}

	file, err := os.Open(*csvPath)
	if err != nil {
		log.Fatalf("ERRO ao abrir CSV: %v", err)
	}
	defer file.Close()

	startTime := time.Now()
	bar := progressbar.Default(-1, "importando linhas")

	inserted, skipped, err := importCSV(ctx, file, importer, bar)
	_ = bar.Finish()
	if err != nil {
		log.Fatalf("ERRO durante a importação após %d linhas: %v", inserted, err)
	}

	log.Printf("Importação concluída em %v. Inseridas: %d, Ignoradas: %d", time.Since(startTime), inserted, skipped)
}
