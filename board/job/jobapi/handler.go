package jobapi

import (
	"github.com/Abraxas-365/jobboard/board/job"
	"github.com/Abraxas-365/jobboard/board/job/jobsrv"
	"github.com/Abraxas-365/jobboard/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for job operations
type Handlers struct {
	service *jobsrv.JobService
}

// NewHandlers creates a new job handlers instance
func NewHandlers(service *jobsrv.JobService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// ListJobs returns the whole catalog
// GET /jobs
func (h *Handlers) ListJobs(c *fiber.Ctx) error {
	jobs, err := h.service.ListJobs(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(job.ListJobsResponse{Jobs: jobs})
}

// CreateJob posts a new job
// POST /jobs
func (h *Handlers) CreateJob(c *fiber.Ctx) error {
	var req job.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidRequest()
	}

	newJob, err := h.service.CreateJob(c.UserContext(), req)
	if err != nil {
		return err
	}

	return c.JSON(job.CreateJobResponse{Job: *newJob})
}

// DeleteJob removes a job
// DELETE /jobs?id=<id>
func (h *Handlers) DeleteJob(c *fiber.Ctx) error {
	jobID := kernel.NewJobID(c.Query("id"))
	if jobID.IsEmpty() {
		return job.ErrMissingID()
	}

	if err := h.service.DeleteJob(c.UserContext(), jobID); err != nil {
		return err
	}

	return c.JSON(job.DeleteJobResponse{OK: true})
}

// Preflight answers OPTIONS with the catalog's CORS headers and no body.
// The CORS middleware answers browser preflights before this runs.
// OPTIONS /jobs
func (h *Handlers) Preflight(c *fiber.Ctx) error {
	c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
	c.Set(fiber.HeaderAccessControlAllowHeaders, "Content-Type, Authorization")
	c.Set(fiber.HeaderAccessControlAllowMethods, "GET,POST,DELETE,OPTIONS")
	return c.SendStatus(fiber.StatusNoContent)
}

func methodNotAllowed(c *fiber.Ctx) error {
	return job.ErrMethodNotAllowed()
}

// RegisterRoutes registers the catalog routes. adminMiddleware guards the
// mutating routes.
func RegisterRoutes(app *fiber.App, handlers *Handlers, adminMiddleware fiber.Handler) {
	app.Get("/jobs", handlers.ListJobs)
	app.Options("/jobs", handlers.Preflight)

	app.Post("/jobs",
		adminMiddleware,
		handlers.CreateJob,
	)

	app.Delete("/jobs",
		adminMiddleware,
		handlers.DeleteJob,
	)

	app.All("/jobs", methodNotAllowed)
}
