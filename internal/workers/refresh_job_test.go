// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ravenbix

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ravenbix/rstools/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyRefresher counts refresh calls and records the folders it saw.
type spyRefresher struct {
	calls atomic.Int64
	err   error

	mu      sync.Mutex
	folders []string
}

func (s *spyRefresher) RefreshFolder(_ context.Context, folder string) error {
	s.calls.Add(1)
	s.mu.Lock()
	s.folders = append(s.folders, folder)
	s.mu.Unlock()
	return s.err
}

func (s *spyRefresher) seen() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.folders...)
}

// ── RunOnce ──────────────────────────────────────────────────────────────────

func TestRefreshJob_RunOnce_RefreshesAllFolders(t *testing.T) {
	spy := &spyRefresher{}
	job := NewRefreshJob(spy, []string{"/Finance", "/Ops"}, logger.Nop())

	err := job.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"/Finance", "/Ops"}, spy.seen())
}

func TestRefreshJob_RunOnce_CollectsErrors(t *testing.T) {
	spy := &spyRefresher{err: errors.New("server unreachable")}
	job := NewRefreshJob(spy, []string{"/Finance", "/Ops"}, logger.Nop())

	err := job.RunOnce(context.Background())
	require.Error(t, err)
	// one failing folder does not stop the others
	assert.Equal(t, int64(2), spy.calls.Load())
	assert.Contains(t, err.Error(), `refresh "/Finance"`)
	assert.Contains(t, err.Error(), `refresh "/Ops"`)
}

func TestRefreshJob_RunOnce_NoFolders(t *testing.T) {
	spy := &spyRefresher{}
	job := NewRefreshJob(spy, nil, logger.Nop())

	require.NoError(t, job.RunOnce(context.Background()))
	assert.Equal(t, int64(0), spy.calls.Load())
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestRefreshJob_Start_RefreshesImmediatelyAndOnTicks(t *testing.T) {
	spy := &spyRefresher{}
	job := NewRefreshJob(spy, []string{"/Finance"}, logger.Nop())
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "expected the immediate run plus several ticks, got %d", got)
}

func TestRefreshJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyRefresher{}
	job := NewRefreshJob(spy, []string{"/Finance"}, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, callsAfterStop, spy.calls.Load())
}

func TestRefreshJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewRefreshJob(&spyRefresher{}, nil, logger.Nop())
	assert.NotPanics(t, func() { job.Stop() })
}

func TestRefreshJob_DoubleStop_NoPanic(t *testing.T) {
	job := NewRefreshJob(&spyRefresher{}, []string{"/Finance"}, logger.Nop())
	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()
	assert.NotPanics(t, func() { job.Stop() })
}

func TestRefreshJob_ContextCancel_StopsJob(t *testing.T) {
	spy := &spyRefresher{}
	job := NewRefreshJob(spy, []string{"/Finance"}, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after context cancellation")
	}
}

func TestRefreshJob_RefreshError_DoesNotStopJob(t *testing.T) {
	spy := &spyRefresher{err: assert.AnError}
	job := NewRefreshJob(spy, []string{"/Finance"}, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
}
