package services

import (
	"context"
	"time"
)

// ObjectStore is the remote object storage capability required by the
// document system. Copy is atomic per object; there is no cross-object
// coordination.
type ObjectStore interface {
	// Copy copies one object from sourcePath to destPath inside the store.
	// A non-nil error means the object was not copied.
	Copy(ctx context.Context, sourcePath, destPath string) error

	// PresignGet returns a time-limited download URL for an object
	PresignGet(ctx context.Context, key string, expires time.Duration) (string, error)
}
