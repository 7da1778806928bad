package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FS is a filesystem-backed blob store. Every blob lives in a flat directory
// under its key; keys must not contain path separators.
type FS struct {
	dir     string
	maxSize int
}

var _ Store = (*FS)(nil)

// NewFS creates a filesystem blob store rooted at dir, creating the directory
// if needed. maxSize caps the accepted payload size in bytes; zero or negative
// disables the cap.
func NewFS(dir string, maxSize int) (*FS, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("could not create blob directory: %w", err)
	}

	return &FS{dir: dir, maxSize: maxSize}, nil
}

func (f *FS) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("invalid blob key %q", key)
	}

	return filepath.Join(f.dir, key), nil
}

// Put stores data under key, rejecting payloads over the configured cap.
func (f *FS) Put(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err //nolint: wrapcheck
	}
	if f.maxSize > 0 && len(data) > f.maxSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrSizeExceeded, len(data), f.maxSize)
	}

	p, err := f.path(key)
	if err != nil {
		return err
	}

	// write to a temp file first so readers never observe a partial blob
	tmp, err := os.CreateTemp(f.dir, key+".tmp*")
	if err != nil {
		return fmt.Errorf("could not create temp blob: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())

		return fmt.Errorf("could not write blob: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())

		return fmt.Errorf("could not close temp blob: %w", err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		_ = os.Remove(tmp.Name())

		return fmt.Errorf("could not rename temp blob: %w", err)
	}

	return nil
}

// Get returns the blob stored under key.
func (f *FS) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint: wrapcheck
	}

	p, err := f.path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("could not read blob: %w", err)
	}

	return data, nil
}

// Delete removes the blob stored under key. Missing keys are ignored.
func (f *FS) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err //nolint: wrapcheck
	}

	p, err := f.path(key)
	if err != nil {
		return err
	}

	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("could not delete blob: %w", err)
	}

	return nil
}
