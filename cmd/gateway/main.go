package main

import (
	"fmt"

	"github.com/MKhiriev/auth-gateway/internal/adapter"
	"github.com/MKhiriev/auth-gateway/internal/config"
	"github.com/MKhiriev/auth-gateway/internal/handler"
	"github.com/MKhiriev/auth-gateway/internal/logger"
	"github.com/MKhiriev/auth-gateway/internal/metrics"
	"github.com/MKhiriev/auth-gateway/internal/server"
	"github.com/MKhiriev/auth-gateway/internal/service"
	"github.com/MKhiriev/auth-gateway/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	// снимок до того, как printBuildInfo подставит "N/A"
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo()

	log := logger.NewLogger("auth-gateway")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().
		Str("mode", cfg.App.Mode).
		Str("http_address", cfg.Server.HTTPAddress).
		Str("user_service", cfg.Adapter.UserServiceAddress).
		Str("product_service", cfg.Adapter.ProductServiceAddress).
		Msg("received configs")

	m := metrics.NewMetrics("gateway")

	clients, err := adapter.NewClients(cfg.Adapter, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating backend clients")
	}
	defer clients.Close()

	services, err := service.NewServices(clients, *cfg, build, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
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
