package claude

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	// DefaultLockTimeout bounds how long a mutating operation waits for the settings lock.
	DefaultLockTimeout = 10 * time.Second

	lockPollInterval = 25 * time.Millisecond
)

// lockPathFor returns the sidecar lock file for a settings file. The settings
// file itself is replaced on every write, so it cannot hold the lock.
func lockPathFor(settingsPath string) string {
	return filepath.Join(filepath.Dir(settingsPath), "."+filepath.Base(settingsPath)+".lock")
}

// acquireLock polls for an exclusive lock on path until it is granted, ctx is
// done or timeout elapses.
func acquireLock(ctx context.Context, path string, timeout time.Duration) (*fileLock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("%w: creating lock directory: %w", ErrLockUnavailable, err)
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	ticker := time.NewTicker(lockPollInterval)
	defer ticker.Stop()

	for {
		lock, acquired, err := tryLock(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLockUnavailable, path, err)
		}
		if acquired {
			return lock, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %s: %w", ErrLockUnavailable, path, ctx.Err())
		case <-ticker.C:
		}
	}
}
