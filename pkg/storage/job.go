package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage defines the minimal interface for enqueueing background jobs
// (e.g. logo blob cleanup after a cascading delete). Implementations are
// responsible for persisting the job into the underlying queue backend. The
// args parameter contains the job payload and opts can be used to customize
// insertion behavior (queue name, delay, priority).
//
// Enqueueing through a transactional handle makes the job atomic with the
// surrounding mutation: the job becomes visible only if the cascade commits.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. It should be atomic
	// with respect to any surrounding transaction when supported by the backend.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
