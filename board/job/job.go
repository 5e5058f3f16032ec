package job

import (
	"time"

	"github.com/Abraxas-365/jobboard/pkg/kernel"
)

// CatalogKey is the storage key of the catalog document
const CatalogKey = "all-jobs"

// Job is one advertised role. Postings are never edited after creation.
type Job struct {
	ID              kernel.JobID          `json:"id"`
	Title           kernel.JobTitle       `json:"title"`
	Location        string                `json:"location,omitempty"`
	Type            string                `json:"type,omitempty"`
	Experience      string                `json:"experience,omitempty"`
	Salary          string                `json:"salary,omitempty"`
	Description     kernel.JobDescription `json:"description,omitempty"`
	ApplicationLink string                `json:"applicationLink,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
}

// ============================================================================
// Catalog helpers
// ============================================================================

// Prepend returns jobs with j at the front. Newest postings come first.
func Prepend(jobs []Job, j Job) []Job {
	out := make([]Job, 0, len(jobs)+1)
	out = append(out, j)
	return append(out, jobs...)
}

// RemoveByID returns jobs without any posting whose id is id
func RemoveByID(jobs []Job, id kernel.JobID) []Job {
	out := make([]Job, 0, len(jobs))
	for _, j := range jobs {
		if j.ID != id {
			out = append(out, j)
		}
	}
	return out
}

// ContainsID reports whether a posting with id exists
func ContainsID(jobs []Job, id kernel.JobID) bool {
	for _, j := range jobs {
		if j.ID == id {
			return true
		}
	}
	return false
}
