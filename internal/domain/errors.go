package domain

import "errors"

// ErrLockTimeout is returned when the export lock cannot be acquired in time.
var ErrLockTimeout = errors.New("could not acquire lock within timeout")
