// Package applied remembers, on the applicant's side, which jobs they
// already applied to. It is an advisory cache scoped to one device: it only
// stops accidental double submissions and must never be treated as proof that
// an application was or was not sent.
package applied

import (
	"encoding/json"
	"fmt"

	"github.com/Abraxas-365/jobboard/pkg/kernel"
)

// StorageKey is the key the applied set is stored under
const StorageKey = "appliedJobs"

// Storage is a local string key/value store, shaped like browser local storage
type Storage interface {
	GetItem(key string) (value string, ok bool, err error)
	SetItem(key, value string) error
}

// Tracker reads and writes the applied set in a Storage
type Tracker struct {
	storage Storage
}

func NewTracker(storage Storage) *Tracker {
	return &Tracker{storage: storage}
}

// HasApplied reports whether jobID was marked on this device
func (t *Tracker) HasApplied(jobID kernel.JobID) (bool, error) {
	ids, err := t.load()
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == jobID {
			return true, nil
		}
	}
	return false, nil
}

// MarkApplied records jobID once
func (t *Tracker) MarkApplied(jobID kernel.JobID) error {
	ids, err := t.load()
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == jobID {
			return nil
		}
	}

	data, err := json.Marshal(append(ids, jobID))
	if err != nil {
		return fmt.Errorf("encode applied jobs: %w", err)
	}
	return t.storage.SetItem(StorageKey, string(data))
}

// load returns the stored ids. An unreadable value counts as empty.
func (t *Tracker) load() ([]kernel.JobID, error) {
	raw, ok, err := t.storage.GetItem(StorageKey)
	if err != nil {
		return nil, fmt.Errorf("read applied jobs: %w", err)
	}
	if !ok || raw == "" {
		return []kernel.JobID{}, nil
	}

	var ids []kernel.JobID
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return []kernel.JobID{}, nil
	}
	return ids, nil
}
