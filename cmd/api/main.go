package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/commerce-insights-api/infrastructure/database"
	"github.com/vfg2006/commerce-insights-api/infrastructure/repository"
	"github.com/vfg2006/commerce-insights-api/internal/api"
	"github.com/vfg2006/commerce-insights-api/internal/config"
	"github.com/vfg2006/commerce-insights-api/internal/datasource"
	"github.com/vfg2006/commerce-insights-api/internal/scheduler"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/commerce-insights-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel, cfg.App.IsDevelopment())
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := dbconn(ctx, cfg.Database)
	defer conn.Close()

	orderRepo, err := repository.NewOrderRepository(conn, cfg.Database.OrdersTable)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar repositório de pedidos")
	}

	store := datasource.NewStore(orderRepo, cfg.SnapshotRefresh.LookbackDays)

	// A API sobe mesmo sem snapshot; as rotas de insights respondem 503 até a próxima recarga
	if _, err := store.LoadWithin(ctx, cfg.SnapshotRefresh.LoadTimeout); err != nil {
		logrus.WithError(err).Error("Erro ao carregar snapshot inicial do ledger")
	}

	insightService := insighting.NewService(cfg.Analytics, store)
	authenticator := authenticating.NewService(cfg.Auth)

	refreshService := scheduler.NewSnapshotRefreshService(store, cfg.SnapshotRefresh)
	if err := refreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga do snapshot")
	} else {
		logrus.Info("Agendador de recarga do snapshot iniciado com sucesso")
	}

	server, err := api.New(cfg, insightService, store, refreshService, authenticator)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// dbconn cria a conexão com o banco do ledger
func dbconn(ctx context.Context, dbConfig config.Database) *database.Connection {
	conn, err := database.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco do ledger")
	}

	logrus.WithField("driver", conn.Driver()).Info("Conexão com o banco do ledger estabelecida com sucesso")
	return conn
}
