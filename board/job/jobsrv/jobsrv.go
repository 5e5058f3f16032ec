package jobsrv

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/Abraxas-365/jobboard/board/job"
	"github.com/Abraxas-365/jobboard/pkg/errx"
	"github.com/Abraxas-365/jobboard/pkg/kernel"
	"github.com/Abraxas-365/jobboard/pkg/logx"
	"github.com/google/uuid"
)

// IDGenerator produces posting identifiers
type IDGenerator func() kernel.JobID

// NewRandomID returns a random UUID, or the current Unix time in
// milliseconds if the random source fails.
func NewRandomID() kernel.JobID {
	id, err := uuid.NewRandom()
	if err != nil {
		logx.Warnf("uuid generation failed, using time based id: %v", err)
		return kernel.NewJobID(strconv.FormatInt(time.Now().UnixMilli(), 10))
	}
	return kernel.NewJobID(id.String())
}

// JobService provides business operations for the job catalog
type JobService struct {
	jobRepo job.Repository
	newID   IDGenerator
	now     func() time.Time
}

// NewJobService creates a new instance of the job service
func NewJobService(jobRepo job.Repository) *JobService {
	return &JobService{
		jobRepo: jobRepo,
		newID:   NewRandomID,
		now:     time.Now,
	}
}

// WithIDGenerator overrides how posting ids are produced
func (s *JobService) WithIDGenerator(gen IDGenerator) *JobService {
	s.newID = gen
	return s
}

// WithClock overrides the creation timestamp source
func (s *JobService) WithClock(now func() time.Time) *JobService {
	s.now = now
	return s
}

// ListJobs returns every posting, newest first
func (s *JobService) ListJobs(ctx context.Context) ([]job.Job, error) {
	jobs, err := s.jobRepo.List(ctx)
	if err != nil {
		logx.Errorf("list jobs: %v", err)
		return nil, errx.Wrap(err, "failed to list jobs", errx.TypeInternal)
	}
	return jobs, nil
}

// CreateJob adds a posting to the front of the catalog
func (s *JobService) CreateJob(ctx context.Context, req job.CreateJobRequest) (*job.Job, error) {
	title := req.Title.Normalize()
	if title.IsEmpty() {
		return nil, job.ErrMissingTitle()
	}

	newJob := job.Job{
		Title:           title,
		Location:        strings.TrimSpace(req.Location),
		Type:            strings.TrimSpace(req.Type),
		Experience:      strings.TrimSpace(req.Experience),
		Salary:          strings.TrimSpace(req.Salary),
		Description:     req.Description,
		ApplicationLink: strings.TrimSpace(req.ApplicationLink),
		CreatedAt:       s.now().UTC().Truncate(time.Millisecond),
	}

	_, err := s.jobRepo.Update(ctx, func(jobs []job.Job) ([]job.Job, error) {
		newJob.ID = s.uniqueID(jobs)
		return job.Prepend(jobs, newJob), nil
	})
	if err != nil {
		logx.Errorf("create job %q: %v", title, err)
		return nil, errx.Wrap(err, "failed to create job", errx.TypeInternal)
	}

	logx.Infof("job created: id=%s title=%q", newJob.ID, newJob.Title)
	return &newJob, nil
}

// DeleteJob removes every posting with the given id. Unknown ids are not an
// error.
func (s *JobService) DeleteJob(ctx context.Context, id kernel.JobID) error {
	if strings.TrimSpace(id.String()) == "" {
		return job.ErrMissingID()
	}

	removed := false
	_, err := s.jobRepo.Update(ctx, func(jobs []job.Job) ([]job.Job, error) {
		filtered := job.RemoveByID(jobs, id)
		removed = len(filtered) != len(jobs)
		return filtered, nil
	})
	if err != nil {
		logx.Errorf("delete job %s: %v", id, err)
		return errx.Wrap(err, "failed to delete job", errx.TypeInternal)
	}

	if removed {
		logx.Infof("job deleted: id=%s", id)
	} else {
		logx.Debugf("delete of unknown job id=%s", id)
	}
	return nil
}

func (s *JobService) uniqueID(jobs []job.Job) kernel.JobID {
	for {
		id := s.newID()
		if !id.IsEmpty() && !job.ContainsID(jobs, id) {
			return id
		}
	}
}
