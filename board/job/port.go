package job

import "context"

// Mutation transforms the full catalog. Returning an error aborts the write.
type Mutation func(jobs []Job) ([]Job, error)

type Repository interface {
	// List returns the catalog, newest first. A missing document is an
	// empty catalog.
	List(ctx context.Context) ([]Job, error)

	// Update reads the catalog, applies fn and writes the result back.
	// This is the only read-modify-write path. Concurrent updates are not
	// coordinated: the last write wins.
	Update(ctx context.Context, fn Mutation) ([]Job, error)
}
