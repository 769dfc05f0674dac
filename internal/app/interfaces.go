package app

import (
	"context"
	"io"
)

// ObjectStore reads one object by bucket and key. Implementations should return
// *fault.Error values so callers keep the failure class.
type ObjectStore interface {
	GetObject(ctx context.Context, bucket, key string) (body io.ReadCloser, err error)
}
