package job

import "github.com/Abraxas-365/jobboard/pkg/kernel"

// CreateJobRequest - DTO for posting a new job
type CreateJobRequest struct {
	Title           kernel.JobTitle       `json:"title"`
	Location        string                `json:"location,omitempty"`
	Type            string                `json:"type,omitempty"`
	Experience      string                `json:"experience,omitempty"`
	Salary          string                `json:"salary,omitempty"`
	Description     kernel.JobDescription `json:"description,omitempty"`
	ApplicationLink string                `json:"applicationLink,omitempty"`
}

// ListJobsResponse - GET /jobs
type ListJobsResponse struct {
	Jobs []Job `json:"jobs"`
}

// CreateJobResponse - POST /jobs
type CreateJobResponse struct {
	Job Job `json:"job"`
}

// DeleteJobResponse - DELETE /jobs
type DeleteJobResponse struct {
	OK bool `json:"ok"`
}
