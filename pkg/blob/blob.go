// Package blob defines the binary blob store contract used for company logos
// and provides a filesystem-backed implementation. Blobs are size-capped;
// oversize input is rejected before it ever reaches the core.
package blob

import (
	"context"
	"errors"
)

// Common errors returned by blob store implementations.
var (
	// ErrSizeExceeded is returned by Put when the payload is larger than the
	// store's configured maximum size.
	ErrSizeExceeded = errors.New("blob size exceeded")
	// ErrNotFound is returned by Get when no blob exists for the given key.
	ErrNotFound = errors.New("blob not found")
)

//go:generate mockgen -package mockblob -source=blob.go -destination=mock/mockblob.go *

// Store is the minimal contract for storing retrievable binary blobs. Keys are
// opaque handles chosen by the caller; implementations must enforce the size
// cap on writes.
type Store interface {
	// Put stores data under the given key, overwriting any previous blob. It
	// returns ErrSizeExceeded when data is larger than the store allows.
	Put(ctx context.Context, key string, data []byte) error
	// Get returns the blob stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Delete removes the blob stored under key. Deleting a missing key is not
	// an error.
	Delete(ctx context.Context, key string) error
}
