package jobinfra

import (
	"context"
	"encoding/json"

	"github.com/Abraxas-365/jobboard/board/job"
	"github.com/Abraxas-365/jobboard/pkg/fsx"
)

// DocumentJobRepository keeps the whole catalog as one JSON array in a blob
// store, under a single key.
type DocumentJobRepository struct {
	fs  fsx.FileSystem
	key string
}

// NewDocumentJobRepository creates a repository over fs using job.CatalogKey
func NewDocumentJobRepository(fs fsx.FileSystem) *DocumentJobRepository {
	return &DocumentJobRepository{
		fs:  fs,
		key: job.CatalogKey,
	}
}

func (r *DocumentJobRepository) List(ctx context.Context) ([]job.Job, error) {
	return r.load(ctx)
}

func (r *DocumentJobRepository) Update(ctx context.Context, fn job.Mutation) ([]job.Job, error) {
	jobs, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	updated, err := fn(jobs)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		updated = []job.Job{}
	}

	data, err := json.Marshal(updated)
	if err != nil {
		return nil, job.ErrCorruptCatalog(err)
	}
	if err := r.fs.WriteFile(ctx, r.key, data); err != nil {
		return nil, job.ErrStorageUnavailable(err)
	}
	return updated, nil
}

func (r *DocumentJobRepository) load(ctx context.Context) ([]job.Job, error) {
	data, err := r.fs.ReadFile(ctx, r.key)
	if err != nil {
		if fsx.IsNotExist(err) {
			return []job.Job{}, nil
		}
		return nil, job.ErrStorageUnavailable(err)
	}

	var jobs []job.Job
	if len(data) > 0 {
		if err := json.Unmarshal(data, &jobs); err != nil {
			return nil, job.ErrCorruptCatalog(err).WithDetail("key", r.key)
		}
	}
	if jobs == nil {
		jobs = []job.Job{}
	}
	return jobs, nil
}

var _ job.Repository = (*DocumentJobRepository)(nil)
