package jobinfra

import (
	"context"
	"errors"
	"testing"

	"github.com/Abraxas-365/jobboard/board/job"
	"github.com/Abraxas-365/jobboard/pkg/errx"
	"github.com/Abraxas-365/jobboard/pkg/fsx/fsxmem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListMissingDocumentIsEmpty(t *testing.T) {
	repo := NewDocumentJobRepository(fsxmem.NewMemoryFileSystem())

	jobs, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, jobs)
	assert.Empty(t, jobs)
}

func TestListNullDocumentIsEmpty(t *testing.T) {
	fs := fsxmem.NewMemoryFileSystem()
	require.NoError(t, fs.WriteFile(context.Background(), job.CatalogKey, []byte("null")))

	jobs, err := NewDocumentJobRepository(fs).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestUpdatePersistsWholeDocument(t *testing.T) {
	ctx := context.Background()
	fs := fsxmem.NewMemoryFileSystem()
	repo := NewDocumentJobRepository(fs)

	_, err := repo.Update(ctx, func(jobs []job.Job) ([]job.Job, error) {
		return job.Prepend(jobs, job.Job{ID: "a", Title: "First"}), nil
	})
	require.NoError(t, err)
	_, err = repo.Update(ctx, func(jobs []job.Job) ([]job.Job, error) {
		return job.Prepend(jobs, job.Job{ID: "b", Title: "Second"}), nil
	})
	require.NoError(t, err)

	raw, err := fs.ReadFile(ctx, job.CatalogKey)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"id":"b"`)

	jobs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "b", jobs[0].ID.String())
	assert.Equal(t, "a", jobs[1].ID.String())
}

func TestUpdateAbortsOnMutationError(t *testing.T) {
	ctx := context.Background()
	fs := fsxmem.NewMemoryFileSystem()
	repo := NewDocumentJobRepository(fs)

	_, err := repo.Update(ctx, func(jobs []job.Job) ([]job.Job, error) {
		return nil, errors.New("boom")
	})
	require.Error(t, err)

	ok, err := fs.Exists(ctx, job.CatalogKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCorruptDocument(t *testing.T) {
	fs := fsxmem.NewMemoryFileSystem()
	require.NoError(t, fs.WriteFile(context.Background(), job.CatalogKey, []byte("{not json")))

	_, err := NewDocumentJobRepository(fs).List(context.Background())
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeInternal))
}
