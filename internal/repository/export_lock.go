package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/compozy/k8s-demo/internal/domain"
	"github.com/gofrs/flock"
)

const (
	// ExportLockName is the lock file created inside the export directory
	ExportLockName = ".export.lock"
	// LockRetryInterval defines the interval between lock retry attempts
	LockRetryInterval = 50 * time.Millisecond
)

// ExportLocker serializes writers of the same export directory
type ExportLocker interface {
	Lock(ctx context.Context, dir string) (unlock func() error, err error)
}

// FileExportLocker implements ExportLocker with an OS-level file lock
type FileExportLocker struct {
	lockDir string
	timeout time.Duration
}

// NewFileExportLocker creates a locker. When lockDir is empty the lock file
// lives in the export directory itself.
func NewFileExportLocker(lockDir string, timeout time.Duration) *FileExportLocker {
	return &FileExportLocker{
		lockDir: lockDir,
		timeout: timeout,
	}
}

// Lock acquires an exclusive lock for dir, waiting up to the configured timeout
func (l *FileExportLocker) Lock(ctx context.Context, dir string) (func() error, error) {
	base := l.lockDir
	if base == "" {
		base = dir
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}
	lock := flock.New(filepath.Join(base, ExportLockName))
	lockCtx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()
	locked, err := acquireLockWithContext(lockCtx, lock)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, domain.ErrLockTimeout
		}
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return nil, domain.ErrLockTimeout
	}
	return lock.Unlock, nil
}

// acquireLockWithContext attempts to acquire an exclusive lock with context support
func acquireLockWithContext(ctx context.Context, lock *flock.Flock) (bool, error) {
	locked, err := lock.TryLock()
	if err != nil || locked {
		return locked, err
	}
	ticker := time.NewTicker(LockRetryInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-ticker.C:
			locked, err := lock.TryLock()
			if err != nil {
				return false, err
			}
			if locked {
				return true, nil
			}
		}
	}
}
