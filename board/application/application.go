package application

import "github.com/Abraxas-365/jobboard/pkg/kernel"

// Submission is an applicant's contact details and target job. It lives for
// one request only and is never stored.
type Submission struct {
	Name     string          `json:"name" form:"name"`
	Email    kernel.Email    `json:"email" form:"email"`
	Phone    kernel.Phone    `json:"phone" form:"phone"`
	JobID    kernel.JobID    `json:"jobId,omitempty" form:"jobId"`
	JobTitle kernel.JobTitle `json:"jobTitle,omitempty" form:"jobTitle"`
	Resume   *Attachment     `json:"-" form:"-"`
}

// Attachment is a file forwarded with the notification email
type Attachment struct {
	FileName    string
	ContentType string
	Data        []byte
}

// Policy configures which fields a submission must carry
type Policy struct {
	RequireJobTitle bool
	MaxResumeSize   int
}

// DefaultPolicy requires name, email and phone only
func DefaultPolicy() Policy {
	return Policy{
		RequireJobTitle: false,
		MaxResumeSize:   MaxResumeSize,
	}
}

// MaxResumeSize is the largest attachment accepted (10MB)
const MaxResumeSize = 10 * 1024 * 1024

// AllowedResumeTypes lists accepted attachment content types
var AllowedResumeTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}
