package applicationapi

import (
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/Abraxas-365/jobboard/board/application"
	"github.com/Abraxas-365/jobboard/board/application/applicationsrv"
	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

// ResumeField is the multipart field carrying the resume file
const ResumeField = "resume"

var resumeTypesByExt = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// Handlers provides HTTP handlers for application submissions
type Handlers struct {
	notifier *applicationsrv.Notifier
}

// NewHandlers creates a new application handlers instance
func NewHandlers(notifier *applicationsrv.Notifier) *Handlers {
	return &Handlers{
		notifier: notifier,
	}
}

// SubmitApplication relays an application by email. Accepts JSON or
// multipart/form-data with an optional resume file.
// POST /apply
func (h *Handlers) SubmitApplication(c *fiber.Ctx) error {
	var sub application.Submission
	if err := c.BodyParser(&sub); err != nil {
		return application.ErrInvalidRequest()
	}

	if isMultipart(c) {
		resume, err := readResume(c)
		if err != nil {
			return err
		}
		sub.Resume = resume
	}

	if err := h.notifier.Submit(c.UserContext(), sub); err != nil {
		return err
	}

	return c.JSON(application.SubmitApplicationResponse{Message: "Application sent"})
}

func methodNotAllowed(c *fiber.Ctx) error {
	return application.ErrMethodNotAllowed()
}

func isMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEMultipartForm)
}

func readResume(c *fiber.Ctx) (*application.Attachment, error) {
	file, err := c.FormFile(ResumeField)
	if err != nil {
		if errors.Is(err, fasthttp.ErrMissingFile) {
			return nil, nil
		}
		return nil, application.ErrInvalidRequest().WithDetail("file_error", "unreadable resume")
	}

	contentType := file.Header.Get(fiber.HeaderContentType)
	if contentType == "" || contentType == fiber.MIMEOctetStream {
		contentType = resumeTypesByExt[strings.ToLower(filepath.Ext(file.Filename))]
	}

	f, err := file.Open()
	if err != nil {
		return nil, application.ErrInvalidRequest().WithDetail("file_error", "unreadable resume")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, application.ErrInvalidRequest().WithDetail("file_error", "unreadable resume")
	}

	return &application.Attachment{
		FileName:    filepath.Base(file.Filename),
		ContentType: contentType,
		Data:        data,
	}, nil
}

// RegisterRoutes registers the public apply route
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	app.Post("/apply", handlers.SubmitApplication)
	app.All("/apply", methodNotAllowed)
}
