// Package client talks to the job board HTTP API
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Abraxas-365/jobboard/board/application"
	"github.com/Abraxas-365/jobboard/board/applied"
	"github.com/Abraxas-365/jobboard/board/job"
	"github.com/Abraxas-365/jobboard/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

const defaultTimeout = 15 * time.Second

// ErrAlreadyApplied is returned by Apply when this device already applied
var ErrAlreadyApplied = errors.New("already applied for this position")

// APIError is a non-2xx response from the server
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("job board: %d %s", e.Status, e.Message)
}

// Client is a job board API client. The applied tracker, when set, is
// consulted before each application and updated after a successful one.
type Client struct {
	baseURL    string
	adminToken string
	timeout    time.Duration
	tracker    *applied.Tracker
}

type Option func(*Client)

// WithAdminToken sets the bearer token sent on create and delete
func WithAdminToken(token string) Option {
	return func(c *Client) { c.adminToken = token }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithTracker enables duplicate application suppression
func WithTracker(t *applied.Tracker) Option {
	return func(c *Client) { c.tracker = t }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListJobs fetches the catalog
func (c *Client) ListJobs(ctx context.Context) ([]job.Job, error) {
	var out job.ListJobsResponse
	if err := c.do(ctx, fiber.Get(c.baseURL+"/jobs"), &out); err != nil {
		return nil, err
	}
	if out.Jobs == nil {
		out.Jobs = []job.Job{}
	}
	return out.Jobs, nil
}

// CreateJob posts a job using the admin token
func (c *Client) CreateJob(ctx context.Context, req job.CreateJobRequest) (*job.Job, error) {
	a := fiber.Post(c.baseURL + "/jobs").JSON(req)
	c.authorize(a)

	var out job.CreateJobResponse
	if err := c.do(ctx, a, &out); err != nil {
		return nil, err
	}
	return &out.Job, nil
}

// DeleteJob removes a job using the admin token
func (c *Client) DeleteJob(ctx context.Context, id kernel.JobID) error {
	a := fiber.Delete(c.baseURL + "/jobs?id=" + url.QueryEscape(id.String()))
	c.authorize(a)

	var out job.DeleteJobResponse
	return c.do(ctx, a, &out)
}

// Apply submits an application. A submission with a resume goes out as
// multipart/form-data, otherwise as JSON.
func (c *Client) Apply(ctx context.Context, sub application.Submission) error {
	track := c.tracker != nil && !sub.JobID.IsEmpty()
	if track {
		done, err := c.tracker.HasApplied(sub.JobID)
		if err != nil {
			return err
		}
		if done {
			return ErrAlreadyApplied
		}
	}

	a := fiber.Post(c.baseURL + "/apply")
	if sub.Resume != nil {
		args := fiber.AcquireArgs()
		defer fiber.ReleaseArgs(args)
		args.Set("name", sub.Name)
		args.Set("email", sub.Email.String())
		args.Set("phone", sub.Phone.String())
		args.Set("jobId", sub.JobID.String())
		args.Set("jobTitle", sub.JobTitle.String())
		// files are written when the form is closed, so add them first
		a.FileData(&fiber.FormFile{
			Fieldname: "resume",
			Name:      sub.Resume.FileName,
			Content:   sub.Resume.Data,
		})
		a.MultipartForm(args)
	} else {
		a.JSON(sub)
	}

	var out application.SubmitApplicationResponse
	if err := c.do(ctx, a, &out); err != nil {
		return err
	}

	if track {
		if err := c.tracker.MarkApplied(sub.JobID); err != nil {
			return fmt.Errorf("application sent but not recorded locally: %w", err)
		}
	}
	return nil
}

func (c *Client) authorize(a *fiber.Agent) {
	if c.adminToken != "" {
		a.Set(fiber.HeaderAuthorization, "Bearer "+c.adminToken)
	}
}

// do sends the request and decodes a 2xx JSON body into out. The agent has
// no context support, so the context deadline becomes the request timeout.
func (c *Client) do(ctx context.Context, a *fiber.Agent, out any) error {
	if err := ctx.Err(); err != nil {
		fiber.ReleaseAgent(a)
		return err
	}

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}
	a.Timeout(timeout)

	status, body, errs := a.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("job board request: %w", errors.Join(errs...))
	}
	if status < 200 || status > 299 {
		return &APIError{Status: status, Message: errorMessage(body)}
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode job board response: %w", err)
	}
	return nil
}

func errorMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(body))
}
