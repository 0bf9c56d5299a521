// Package workers runs the background jobs of the tool. Today that is a
// single job keeping the catalog cache warm for a configured set of folders.
package workers

import (
	"context"
	"time"
)

// FolderRefresher re-lists one catalog folder and stores the listing in the
// cache. Satisfied by the catalog service.
type FolderRefresher interface {
	RefreshFolder(ctx context.Context, folder string) error
}

// RefreshJob periodically refreshes the cached listings of a fixed set of
// folders.
type RefreshJob interface {
	// RunOnce refreshes every configured folder one time. Folders that
	// fail do not prevent the remaining ones from refreshing; all failures
	// come back as one joined error.
	RunOnce(ctx context.Context) error

	// Start launches the periodic refresh in a background goroutine. The
	// goroutine exits when ctx is cancelled or Stop is called. Calling
	// Start on a running job restarts it.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the background goroutine and waits for it to exit.
	// No-op when the job is not running.
	Stop()
}
