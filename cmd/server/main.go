// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-prop-sync/internal/config"
	"github.com/MKhiriev/go-prop-sync/internal/handler"
	"github.com/MKhiriev/go-prop-sync/internal/logger"
	"github.com/MKhiriev/go-prop-sync/internal/server"
	"github.com/MKhiriev/go-prop-sync/internal/service"
	"github.com/MKhiriev/go-prop-sync/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("prop-sync-server")
	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.HTTP.Address).
		Str("store_guid", cfg.Store.GUID.String()).
		Int("users", len(cfg.Store.Users)).
		Msg("received configs")

	services := service.NewServices(*cfg, log)

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	jobs := workers.NewWorkers(services, cfg.Workers, log)

	srv, err := server.NewServer(handlers, jobs, cfg.HTTP, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
