package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/roya-gateway/internal/adapter"
	"github.com/MKhiriev/roya-gateway/internal/config"
	"github.com/MKhiriev/roya-gateway/internal/handler"
	"github.com/MKhiriev/roya-gateway/internal/logger"
	"github.com/MKhiriev/roya-gateway/internal/server"
	"github.com/MKhiriev/roya-gateway/internal/service"
	"github.com/MKhiriev/roya-gateway/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("roya-gateway").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("roya-gateway", cfg.App.LogLevel)
	log.Debug().Any("config", cfg.Redacted()).Msg("received configs")

	remote, err := adapter.NewRESTAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating remote adapter")
	}
	if !remote.Configured() {
		log.Warn().Msg("API key is not configured, remote endpoints will answer 500")
	}

	storages, err := store.NewStorages(context.Background(), cfg, remote, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services := service.NewServices(storages, cfg, log)

	handlers, err := handler.NewHandlers(services, cfg, remote.Configured(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("server stopped with error")
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
