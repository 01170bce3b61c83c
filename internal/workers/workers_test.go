// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-prop-sync/internal/config"
	"github.com/MKhiriev/go-prop-sync/internal/logger"
	"github.com/MKhiriev/go-prop-sync/internal/service"
)

// recordingWorker tracks Start and Stop calls in a shared log.
type recordingWorker struct {
	id  int
	log *[]int
}

func (r *recordingWorker) Start(context.Context) { *r.log = append(*r.log, r.id) }
func (r *recordingWorker) Stop()                 { *r.log = append(*r.log, -r.id) }

// countingReaper counts ReapExpired calls.
type countingReaper struct {
	calls atomic.Int32
}

func (c *countingReaper) ReapExpired(context.Context) int {
	c.calls.Add(1)
	return 1
}

func TestWorkers_StartStopOrder(t *testing.T) {
	var log []int
	ws := &Workers{workers: []Worker{
		&recordingWorker{id: 1, log: &log},
		&recordingWorker{id: 2, log: &log},
	}}

	ws.Start(context.Background())
	ws.Stop()

	want := []int{1, 2, -2, -1}
	if len(log) != len(want) {
		t.Fatalf("expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("expected log[%d]=%d, got %d", i, want[i], log[i])
		}
	}
}

func TestWorkers_Empty(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Start(context.Background())
	ws.Stop()
}

func TestNewWorkers(t *testing.T) {
	ws := NewWorkers(&service.Services{AuthService: nil}, config.ServerWorkers{}, logger.Nop())
	if len(ws.workers) != 1 {
		t.Fatalf("expected 1 worker, got %d", len(ws.workers))
	}
	job := ws.workers[0].(*sessionReaperJob)
	if job.interval != defaultReapInterval {
		t.Errorf("expected default interval %v, got %v", defaultReapInterval, job.interval)
	}
}

func TestSessionReaperJob_Ticks(t *testing.T) {
	reaper := &countingReaper{}
	job := NewSessionReaperJob(reaper, 5*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	deadline := time.Now().Add(2 * time.Second)
	for reaper.calls.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	job.Stop()

	if got := reaper.calls.Load(); got < 2 {
		t.Fatalf("expected at least 2 reaps, got %d", got)
	}

	// no ticks after Stop
	stopped := reaper.calls.Load()
	time.Sleep(30 * time.Millisecond)
	if got := reaper.calls.Load(); got != stopped {
		t.Errorf("reaper ran after Stop: %d -> %d", stopped, got)
	}
}

func TestSessionReaperJob_StopsWithContext(t *testing.T) {
	reaper := &countingReaper{}
	job := NewSessionReaperJob(reaper, time.Hour, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return after context cancellation")
	}
}

func TestSessionReaperJob_StopWhenIdle(t *testing.T) {
	job := NewSessionReaperJob(&countingReaper{}, time.Second, logger.Nop())

	// Should not block or panic when never started
	job.Stop()
	job.Stop()
}
