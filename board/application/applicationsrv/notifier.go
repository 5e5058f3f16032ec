package applicationsrv

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/Abraxas-365/jobboard/board/application"
	"github.com/Abraxas-365/jobboard/pkg/logx"
)

// Notifier relays application submissions by email. Nothing is persisted:
// when delivery fails the submission is lost.
type Notifier struct {
	mailer    application.Mailer
	addresses application.Addresses
	policy    application.Policy
}

// NewNotifier creates a notifier sending to and from the given addresses
func NewNotifier(mailer application.Mailer, addresses application.Addresses, policy application.Policy) *Notifier {
	if policy.MaxResumeSize <= 0 {
		policy.MaxResumeSize = application.MaxResumeSize
	}
	return &Notifier{
		mailer:    mailer,
		addresses: addresses,
		policy:    policy,
	}
}

// Submit validates the submission and sends the notification email
func (n *Notifier) Submit(ctx context.Context, sub application.Submission) error {
	sub = normalize(sub)
	if err := n.validate(sub); err != nil {
		return err
	}

	msg := n.compose(sub)
	if err := n.mailer.Send(ctx, msg); err != nil {
		logx.Errorf("application delivery failed for job id=%q title=%q: %v", sub.JobID, sub.JobTitle, err)
		return application.ErrDeliveryFailed(err)
	}

	logx.Infof("application sent for job id=%q title=%q", sub.JobID, sub.JobTitle)
	return nil
}

func normalize(sub application.Submission) application.Submission {
	sub.Name = strings.TrimSpace(sub.Name)
	sub.Email = trimmed(sub.Email)
	sub.Phone = trimmed(sub.Phone)
	sub.JobID = trimmed(sub.JobID)
	sub.JobTitle = sub.JobTitle.Normalize()
	return sub
}

func trimmed[T ~string](v T) T {
	return T(strings.TrimSpace(string(v)))
}

func (n *Notifier) validate(sub application.Submission) error {
	var missing []string
	if sub.Name == "" {
		missing = append(missing, "name")
	}
	if sub.Email == "" {
		missing = append(missing, "email")
	}
	if sub.Phone == "" {
		missing = append(missing, "phone")
	}
	if n.policy.RequireJobTitle && sub.JobTitle.IsEmpty() {
		missing = append(missing, "jobTitle")
	}
	if len(missing) > 0 {
		return application.ErrMissingFields(missing...)
	}

	if r := sub.Resume; r != nil {
		if len(r.Data) > n.policy.MaxResumeSize {
			return application.ErrFileSizeTooLarge().
				WithDetail("file_size", len(r.Data)).
				WithDetail("max_size", n.policy.MaxResumeSize)
		}
		if !application.AllowedResumeTypes[r.ContentType] {
			return application.ErrInvalidFileType().
				WithDetail("content_type", r.ContentType).
				WithDetail("allowed_types", "pdf, doc, docx")
		}
	}
	return nil
}

func (n *Notifier) compose(sub application.Submission) application.Message {
	jobLabel := sub.JobTitle.String()
	switch {
	case jobLabel == "" && sub.JobID != "":
		jobLabel = "job " + sub.JobID.String()
	case jobLabel == "":
		jobLabel = "a position"
	}

	var text strings.Builder
	fmt.Fprintf(&text, "Name: %s\n", sub.Name)
	fmt.Fprintf(&text, "Email: %s\n", sub.Email)
	fmt.Fprintf(&text, "Phone: %s\n", sub.Phone)
	if sub.JobTitle != "" {
		fmt.Fprintf(&text, "Job: %s\n", sub.JobTitle)
	}
	if sub.JobID != "" {
		fmt.Fprintf(&text, "Job ID: %s\n", sub.JobID)
	}

	var body strings.Builder
	body.WriteString("<h2>New Job Application</h2>\n")
	fmt.Fprintf(&body, "<p><strong>Name:</strong> %s</p>\n", html.EscapeString(sub.Name))
	fmt.Fprintf(&body, "<p><strong>Email:</strong> %s</p>\n", html.EscapeString(sub.Email.String()))
	fmt.Fprintf(&body, "<p><strong>Phone:</strong> %s</p>\n", html.EscapeString(sub.Phone.String()))
	if sub.JobTitle != "" {
		fmt.Fprintf(&body, "<p><strong>Job:</strong> %s</p>\n", html.EscapeString(sub.JobTitle.String()))
	}
	if sub.JobID != "" {
		fmt.Fprintf(&body, "<p><strong>Job ID:</strong> %s</p>\n", html.EscapeString(sub.JobID.String()))
	}

	msg := application.Message{
		FromName:  n.addresses.FromName,
		FromEmail: n.addresses.FromEmail,
		ToEmail:   n.addresses.ToEmail,
		ReplyTo:   sub.Email.String(),
		Subject:   "New application for " + jobLabel,
		TextBody:  text.String(),
		HTMLBody:  body.String(),
	}
	if sub.Resume != nil {
		msg.Attachments = []application.Attachment{*sub.Resume}
	}
	return msg
}
