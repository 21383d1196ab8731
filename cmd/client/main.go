package main

import (
	"fmt"

	"github.com/atharva-again/samvaad/internal/adapter"
	"github.com/atharva-again/samvaad/internal/client"
	"github.com/atharva-again/samvaad/internal/config"
	"github.com/atharva-again/samvaad/internal/logger"
	"github.com/atharva-again/samvaad/internal/service"
	"github.com/atharva-again/samvaad/internal/state"
	"github.com/atharva-again/samvaad/internal/store"
	"github.com/atharva-again/samvaad/internal/utils"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("samvaad-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	userID, err := utils.SubjectFromToken(cfg.App.Token)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid session token")
	}

	gateway := adapter.NewHTTPGateway(adapter.HTTPGatewayConfig{
		BaseURL: cfg.Adapter.BaseURL,
		Token:   cfg.App.Token,
		Timeout: cfg.Adapter.RequestTimeout,
	})

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	container := state.NewContainer(userID)
	services := service.NewClientServices(container, storages, gateway, cfg, log)

	app, err := client.NewApp(services, container, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
