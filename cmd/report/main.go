package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/commerce-insights-api/infrastructure/database"
	"github.com/vfg2006/commerce-insights-api/infrastructure/repository"
	"github.com/vfg2006/commerce-insights-api/internal/config"
	"github.com/vfg2006/commerce-insights-api/internal/datasource"
	"github.com/vfg2006/commerce-insights-api/internal/domain"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/commerce-insights-api/pkg/log"
	"github.com/vfg2006/commerce-insights-api/pkg/utils"
)

// report carrega um snapshot, calcula o dashboard uma vez e imprime o JSON em stdout
func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	startDate := flag.String("start_date", "", "Data inicial (YYYY-MM-DD)")
	endDate := flag.String("end_date", "", "Data final inclusiva (YYYY-MM-DD)")
	marketingSpend := flag.Float64("marketing_spend", cfg.Analytics.MarketingSpend, "Investimento em marketing do período")
	topCategories := flag.Int("top_categories", cfg.Analytics.TopCategories, "Quantidade de categorias nas previsões")
	flag.Parse()

	log.Configure(cfg.App.LogLevel, cfg.App.IsDevelopment())
	log.SetOutput(os.Stderr)

	filters, err := buildFilters(*startDate, *endDate, *marketingSpend, *topCategories)
	if err != nil {
		logrus.WithError(err).Fatal("Parâmetros inválidos")
	}

	if err := run(context.Background(), cfg, filters); err != nil {
		logrus.WithError(err).Fatal("Erro ao gerar relatório")
	}
}

// run concentra o fluxo do relatório para que os defers, inclusive o fechamento
// da conexão, rodem antes de qualquer saída com erro.
func run(ctx context.Context, cfg *config.Config, filters *domain.InsightFilters) error {
	bar := progressbar.NewOptions(3,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("conectando"),
		progressbar.OptionShowCount(),
	)

	conn, err := database.NewConnection(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("erro ao conectar ao banco do ledger: %w", err)
	}
	defer conn.Close()

	orderRepo, err := repository.NewOrderRepository(conn, cfg.Database.OrdersTable)
	if err != nil {
		return fmt.Errorf("erro ao criar repositório de pedidos: %w", err)
	}
	_ = bar.Add(1)

	bar.Describe("carregando snapshot")
	store := datasource.NewStore(orderRepo, cfg.SnapshotRefresh.LookbackDays)
	if _, err := store.LoadWithin(ctx, cfg.SnapshotRefresh.LoadTimeout); err != nil {
		return fmt.Errorf("erro ao carregar snapshot do ledger: %w", err)
	}
	_ = bar.Add(1)

	bar.Describe("calculando dashboard")
	dashboard, err := insighting.NewService(cfg.Analytics, store).GetDashboard(ctx, filters)
	if err != nil {
		return fmt.Errorf("erro ao calcular dashboard: %w", err)
	}
	_ = bar.Add(1)
	_ = bar.Finish()
	fmt.Fprintln(os.Stderr)

	logrus.WithFields(logrus.Fields{
		"snapshot_id":     dashboard.SnapshotID,
		"total_revenue":   utils.RoundMoney(dashboard.KPIs.TotalRevenue),
		"total_orders":    dashboard.KPIs.TotalOrders,
		"forecast_total":  utils.RoundMoney(dashboard.RevenueForecast.Summary.TotalForecast),
		"recommendations": len(dashboard.Recommendations),
	}).Info("Relatório gerado")

	fmt.Println(utils.PrettyJson(dashboard))

	return nil
}

func buildFilters(start, end string, marketingSpend float64, topCategories int) (*domain.InsightFilters, error) {
	startDate, err := utils.ParseDate(start)
	if err != nil {
		return nil, fmt.Errorf("start_date inválida: %w", err)
	}

	endDate, err := utils.ParseDate(end)
	if err != nil {
		return nil, fmt.Errorf("end_date inválida: %w", err)
	}
	if endDate != nil {
		eod := utils.EndOfDay(*endDate)
		endDate = &eod
	}

	return &domain.InsightFilters{
		StartDate:      startDate,
		EndDate:        endDate,
		MarketingSpend: marketingSpend,
		TopCategories:  topCategories,
	}, nil
}
