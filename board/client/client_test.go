package client

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"

	"github.com/Abraxas-365/jobboard/board/application"
	"github.com/Abraxas-365/jobboard/board/application/applicationapi"
	"github.com/Abraxas-365/jobboard/board/application/applicationsrv"
	"github.com/Abraxas-365/jobboard/board/applied"
	"github.com/Abraxas-365/jobboard/board/job"
	"github.com/Abraxas-365/jobboard/board/job/jobapi"
	"github.com/Abraxas-365/jobboard/board/job/jobinfra"
	"github.com/Abraxas-365/jobboard/board/job/jobsrv"
	"github.com/Abraxas-365/jobboard/pkg/errx/errxfiber"
	"github.com/Abraxas-365/jobboard/pkg/fsx/fsxmem"
	"github.com/Abraxas-365/jobboard/pkg/iam/auth"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adminToken = "let-me-in"

type recordingMailer struct {
	mu   sync.Mutex
	sent []application.Message
}

func (m *recordingMailer) Send(ctx context.Context, msg application.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return nil
}

func (m *recordingMailer) messages() []application.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]application.Message(nil), m.sent...)
}

func startServer(t *testing.T) (string, *recordingMailer) {
	t.Helper()
	mailer := &recordingMailer{}

	app := fiber.New(fiber.Config{
		ErrorHandler:          errxfiber.ErrorHandler,
		DisableStartupMessage: true,
	})
	jobSvc := jobsrv.NewJobService(jobinfra.NewDocumentJobRepository(fsxmem.NewMemoryFileSystem()))
	jobapi.RegisterRoutes(app, jobapi.NewHandlers(jobSvc), auth.RequireCredential(auth.NewStaticTokenChecker(adminToken)))
	notifier := applicationsrv.NewNotifier(mailer, application.Addresses{ToEmail: "hiring@example.com"}, application.DefaultPolicy())
	applicationapi.RegisterRoutes(app, applicationapi.NewHandlers(notifier))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	return "http://" + ln.Addr().String(), mailer
}

func TestCatalogRoundTrip(t *testing.T) {
	ctx := context.Background()
	base, _ := startServer(t)
	admin := New(base, WithAdminToken(adminToken))

	jobs, err := admin.ListJobs(ctx)
	require.NoError(t, err)
	assert.Empty(t, jobs)

	created, err := admin.CreateJob(ctx, job.CreateJobRequest{Title: "Backend Engineer", Location: "Remote"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	jobs, err = admin.ListJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, created.ID, jobs[0].ID)

	require.NoError(t, admin.DeleteJob(ctx, created.ID))
	jobs, err = admin.ListJobs(ctx)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestCreateWithoutTokenIsUnauthorized(t *testing.T) {
	base, _ := startServer(t)

	_, err := New(base).CreateJob(context.Background(), job.CreateJobRequest{Title: "X"})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, fiber.StatusUnauthorized, apiErr.Status)
}

func TestApplyTracksAndSuppressesDuplicates(t *testing.T) {
	ctx := context.Background()
	base, mailer := startServer(t)
	tracker := applied.NewTracker(applied.NewMemoryStorage())
	c := New(base, WithTracker(tracker))

	sub := application.Submission{
		Name:     "Ada",
		Email:    "ada@example.com",
		Phone:    "555",
		JobID:    "job-42",
		JobTitle: "Backend Engineer",
	}
	require.NoError(t, c.Apply(ctx, sub))

	ok, err := tracker.HasApplied("job-42")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.ErrorIs(t, c.Apply(ctx, sub), ErrAlreadyApplied)
	assert.Len(t, mailer.messages(), 1)
}

func TestApplyFailureIsNotTracked(t *testing.T) {
	ctx := context.Background()
	base, mailer := startServer(t)
	tracker := applied.NewTracker(applied.NewMemoryStorage())
	c := New(base, WithTracker(tracker))

	err := c.Apply(ctx, application.Submission{Name: "Ada", JobID: "job-7"})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, fiber.StatusBadRequest, apiErr.Status)
	ok, err := tracker.HasApplied("job-7")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, mailer.messages())
}

func TestApplyWithResumeUsesMultipart(t *testing.T) {
	base, mailer := startServer(t)

	err := New(base).Apply(context.Background(), application.Submission{
		Name:     "Ada",
		Email:    "ada@example.com",
		Phone:    "555",
		JobTitle: "Backend Engineer",
		Resume:   &application.Attachment{FileName: "cv.pdf", Data: []byte("%PDF-1.7")},
	})
	require.NoError(t, err)

	sent := mailer.messages()
	require.Len(t, sent, 1)
	require.Len(t, sent[0].Attachments, 1)
	assert.Equal(t, "cv.pdf", sent[0].Attachments[0].FileName)
	assert.Equal(t, "application/pdf", sent[0].Attachments[0].ContentType)
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New("http://127.0.0.1:1").ListJobs(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
