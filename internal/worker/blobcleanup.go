package worker

import (
	"context"
	"errors"
	"fmt"
	"recruit/internal/recruit"
	"recruit/pkg/blob"
	"recruit/pkg/logger"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// BlobCleanupWorker deletes orphaned logo blobs after a cascading delete
// committed. Deletion is idempotent: a key that is already gone counts as
// success, so retried jobs never fail on work a previous attempt finished.
type BlobCleanupWorker struct {
	river.WorkerDefaults[recruit.BlobCleanupArgs]

	// blobs is the store the keys are removed from.
	blobs blob.Store
}

// NewBlobCleanupWorker constructs a BlobCleanupWorker using the provided blob store.
func NewBlobCleanupWorker(blobs blob.Store) *BlobCleanupWorker {
	return &BlobCleanupWorker{blobs: blobs}
}

// Work deletes every key carried by the job. It keeps going past missing keys
// and fails only when a delete errors for another reason, leaving the retry to
// re-attempt the full key set.
func (b *BlobCleanupWorker) Work(ctx context.Context, job *river.Job[recruit.BlobCleanupArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.Int("keys", len(job.Args.Keys)))

	for _, key := range job.Args.Keys {
		if err := b.blobs.Delete(ctx, key); err != nil {
			if errors.Is(err, blob.ErrNotFound) {
				continue
			}

			logger.Error(ctx, "error deleting blob", zap.String("key", key), zap.Error(err))

			return fmt.Errorf("could not delete blob %q: %w", key, err)
		}
	}

	logger.Info(ctx, "orphaned blobs cleaned up")

	return nil
}
