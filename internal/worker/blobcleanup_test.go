package worker_test

import (
	"context"
	"errors"
	"testing"

	"recruit/internal/recruit"
	"recruit/internal/worker"
	"recruit/pkg/blob"
	"recruit/pkg/logger"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type memBlobs struct {
	data    map[string][]byte
	failing map[string]error
}

func newMemBlobs() *memBlobs {
	return &memBlobs{data: map[string][]byte{}, failing: map[string]error{}}
}

func (m *memBlobs) Put(_ context.Context, key string, data []byte) error {
	m.data[key] = data

	return nil
}

func (m *memBlobs) Get(_ context.Context, key string) ([]byte, error) {
	data, ok := m.data[key]
	if !ok {
		return nil, blob.ErrNotFound
	}

	return data, nil
}

func (m *memBlobs) Delete(_ context.Context, key string) error {
	if err, ok := m.failing[key]; ok {
		return err
	}
	if _, ok := m.data[key]; !ok {
		return blob.ErrNotFound
	}
	delete(m.data, key)

	return nil
}

func cleanupJob(keys ...string) *river.Job[recruit.BlobCleanupArgs] {
	return &river.Job[recruit.BlobCleanupArgs]{
		JobRow: &rivertype.JobRow{ID: 1},
		Args:   recruit.BlobCleanupArgs{Keys: keys},
	}
}

func TestBlobCleanupWorker_DeletesAllKeys(t *testing.T) {
	blobs := newMemBlobs()
	require.NoError(t, blobs.Put(context.Background(), "logo-1", []byte("a")))
	require.NoError(t, blobs.Put(context.Background(), "logo-2", []byte("b")))

	w := worker.NewBlobCleanupWorker(blobs)
	require.NoError(t, w.Work(context.Background(), cleanupJob("logo-1", "logo-2")))

	require.Empty(t, blobs.data)
}

func TestBlobCleanupWorker_MissingKeyIsSuccess(t *testing.T) {
	blobs := newMemBlobs()
	require.NoError(t, blobs.Put(context.Background(), "logo-2", []byte("b")))

	w := worker.NewBlobCleanupWorker(blobs)

	// logo-1 was already removed by a previous attempt
	require.NoError(t, w.Work(context.Background(), cleanupJob("logo-1", "logo-2")))
	require.Empty(t, blobs.data)
}

func TestBlobCleanupWorker_PropagatesStoreErrors(t *testing.T) {
	blobs := newMemBlobs()
	require.NoError(t, blobs.Put(context.Background(), "logo-1", []byte("a")))
	cause := errors.New("disk detached")
	blobs.failing["logo-1"] = cause

	w := worker.NewBlobCleanupWorker(blobs)
	err := w.Work(context.Background(), cleanupJob("logo-1"))
	require.ErrorIs(t, err, cause)
}
