// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-prop-sync/internal/logger"
)

const defaultReapInterval = time.Minute

type sessionReaperJob struct {
	reaper   SessionReaper
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSessionReaperJob creates a job that calls reaper.ReapExpired on a
// ticker. A non-positive interval defaults to one minute. The job is idle
// until Start is called.
func NewSessionReaperJob(reaper SessionReaper, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultReapInterval
	}
	return &sessionReaperJob{reaper: reaper, interval: interval, logger: logger}
}

// Start implements Worker. A running job is stopped first. The goroutine
// exits when ctx is cancelled or Stop is called.
func (j *sessionReaperJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Info().Dur("interval", j.interval).Msg("session reaper started")

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if n := j.reaper.ReapExpired(jobCtx); n > 0 {
					j.logger.Info().Int("sessions", n).Msg("expired sessions reaped")
				}
			}
		}
	}()
}

// Stop implements Worker. It is a no-op when the job is not running.
func (j *sessionReaperJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
