package recruit

import (
	"github.com/riverqueue/river"
)

// BlobCleanupArgs contains the arguments for a blob cleanup job submitted to
// River. A job is enqueued inside the same transaction as the cascading delete
// that orphaned the blobs, so the keys become visible to the worker only if
// the delete commits.
type BlobCleanupArgs struct {
	// Keys are the blob store handles to delete.
	Keys []string `json:"keys"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the cleanup worker.
func (args BlobCleanupArgs) Kind() string { return "BlobCleanupJob" }

// InsertOpts returns the River options that control how the job is enqueued.
func (args BlobCleanupArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
	}
}
