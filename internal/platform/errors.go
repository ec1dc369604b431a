package platform

import (
	"errors"
)

// ErrSyncAlreadyRunning is an error returned when a sync pass can't be started
// because the previous pass is not finished yet. Sync passes are serial by
// design; see the reconciler package documentation.
var ErrSyncAlreadyRunning = errors.New("deal sync already running")

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")
