// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/MKhiriev/go-prop-sync/internal/adapter"
	"github.com/MKhiriev/go-prop-sync/internal/client"
	"github.com/MKhiriev/go-prop-sync/internal/config"
	"github.com/MKhiriev/go-prop-sync/internal/crypto"
	"github.com/MKhiriev/go-prop-sync/internal/logger"
	"github.com/MKhiriev/go-prop-sync/internal/service"
	"github.com/MKhiriev/go-prop-sync/internal/store"
	"github.com/MKhiriev/go-prop-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run keeps stdout for the command's JSON output; logs go to a file next to
// the executable.
func run() error {
	printBuildInfo()

	log := logger.NewFileLogger("prop-sync-client", logPath())
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sessions, err := store.NewSessionRepository(ctx, cfg.Storage.DSN, log)
	if err != nil {
		return fmt.Errorf("create session cache: %w", err)
	}
	defer sessions.Close()

	sealer, err := crypto.NewProfileSealer(cfg.App.Password, cfg.App.Profile)
	if err != nil {
		return fmt.Errorf("create session sealer: %w", err)
	}
	sessions = store.NewSealedSessionRepository(sessions, sealer)

	transport, err := adapter.NewHTTPTransport(cfg.Adapter, cfg.App, log)
	if err != nil {
		return fmt.Errorf("create transport: %w", err)
	}

	conn := service.NewConnection(transport, sessions, cfg.App.Profile, models.Credentials{
		Username: cfg.App.Username,
		Password: cfg.App.Password,
	}, log)
	defer conn.Close()

	return client.NewApp(conn, os.Stdout, log).Run(ctx, cfg.Args)
}

func logPath() string {
	exe, err := os.Executable()
	if err != nil {
		return "prop-sync-client.log"
	}
	return filepath.Join(filepath.Dir(exe), "prop-sync-client.log")
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

	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}
