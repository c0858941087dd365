package object

import (
	"context"
	"io"
)

// Store saves and retrieves binary objects by key.
type Store interface {
	SaveWithKey(ctx context.Context, storageKey string, contentType string, r io.Reader) (sizeBytes int64, err error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}
