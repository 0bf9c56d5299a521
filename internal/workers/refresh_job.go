// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ravenbix

package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ravenbix/rstools/internal/logger"
)

type refreshJob struct {
	catalog FolderRefresher
	folders []string
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a refreshJob for the given folders. The job is idle
// until Start is called; RunOnce works without Start.
func NewRefreshJob(catalog FolderRefresher, folders []string, log *logger.Logger) RefreshJob {
	return &refreshJob{catalog: catalog, folders: folders, logger: log}
}

func (j *refreshJob) RunOnce(ctx context.Context) error {
	var errs []error
	for _, folder := range j.folders {
		if err := j.catalog.RefreshFolder(ctx, folder); err != nil {
			j.logger.Warn().Err(err).Str("folder", folder).Msg("folder refresh failed")
			errs = append(errs, fmt.Errorf("refresh %q: %w", folder, err))
		}
	}
	return errors.Join(errs...)
}

// Start implements RefreshJob. It stops any previously running job, then
// launches a goroutine that refreshes all folders immediately and again
// every interval. If interval is zero or negative it defaults to 10 minutes.
func (j *refreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 10 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		_ = j.RunOnce(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_ = j.RunOnce(jobCtx)
			}
		}
	}()
}

// Stop implements RefreshJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited.
func (j *refreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
