package server

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/grantdozier/LCR-Area-Calculations-Module/model"
)

// ErrJobNotFound is returned for unknown job ids.
var ErrJobNotFound = errors.New("job not found")

// JobStatus is the lifecycle state of a processing job.
type JobStatus string

const (
	JobQueued    JobStatus = "queued"
	JobRunning   JobStatus = "running"
	JobCompleted JobStatus = "completed"
	JobError     JobStatus = "error"
)

// Job is the registry's view of one processing run. Result is set only
// in the completed state; Error only in the error state.
type Job struct {
	ID           string
	Status       JobStatus
	Filename     string
	CurrentSheet int
	TotalSheets  int
	Result       *model.ProjectResult
	Error        string
}

// Registry is the in-memory job store. It is the only shared mutable
// state in the server; one mutex guards all of it.
type Registry struct {
	mu   sync.Mutex
	jobs map[string]*Job
}

// NewRegistry returns an empty job registry.
func NewRegistry() *Registry {
	return &Registry{jobs: make(map[string]*Job)}
}

// Create registers a new queued job and returns its id.
func (r *Registry) Create(filename string) string {
	id := uuid.NewString()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[id] = &Job{ID: id, Status: JobQueued, Filename: filename}
	return id
}

// Get returns a copy of the job's current state.
func (r *Registry) Get(id string) (Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return Job{}, ErrJobNotFound
	}
	return *j, nil
}

// SetRunning marks the job as running.
func (r *Registry) SetRunning(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if j, ok := r.jobs[id]; ok {
		j.Status = JobRunning
	}
}

// SetProgress records which sheet the worker is on.
func (r *Registry) SetProgress(id string, currentSheet, totalSheets int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if j, ok := r.jobs[id]; ok {
		j.CurrentSheet = currentSheet
		j.TotalSheets = totalSheets
	}
}

// Complete stores the result and marks the job completed.
func (r *Registry) Complete(id string, res *model.ProjectResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if j, ok := r.jobs[id]; ok {
		j.Status = JobCompleted
		j.Result = res
	}
}

// Fail records the error message and marks the job failed. No partial
// results are kept.
func (r *Registry) Fail(id string, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if j, ok := r.jobs[id]; ok {
		j.Status = JobError
		j.Error = msg
		j.Result = nil
	}
}
