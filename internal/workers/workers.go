// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-prop-sync/internal/config"
	"github.com/MKhiriev/go-prop-sync/internal/logger"
	"github.com/MKhiriev/go-prop-sync/internal/service"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(services *service.Services, cfg config.ServerWorkers, logger *logger.Logger) *Workers {
	return &Workers{workers: []Worker{
		NewSessionReaperJob(services.AuthService, cfg.SessionReapInterval, logger),
	}}
}

// Start launches every worker.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops the workers in reverse order and waits for all of them.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
