package main

import (
	"flag"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/commerce-insights-api/internal/config"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/commerce-insights-api/pkg/log"
)

// token emite um JWT para um cliente da API usando AUTH_SECRET e AUTH_TOKEN_TTL
func main() {
	client := flag.String("client", "", "Nome do cliente que receberá o token")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Configure(cfg.App.LogLevel, cfg.App.IsDevelopment())

	token, err := authenticating.NewService(cfg.Auth).GenerateToken(*client)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao gerar token")
	}

	logrus.WithFields(logrus.Fields{
		"client":     *client,
		"expires_in": cfg.Auth.TokenTTL.String(),
	}).Info("Token gerado")

	fmt.Println(token)
}
