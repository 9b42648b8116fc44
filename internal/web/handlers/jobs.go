package handlers

import (
	"context"
	"sync"
	"time"

	"github.com/UsmanZaka51/emotion-api/internal/report"
	"github.com/UsmanZaka51/emotion-api/internal/ui"
)

// JobStatus represents the status of an async analysis job.
type JobStatus string

// JobStatus constants define the lifecycle states of an async job.
const (
	JobStatusPending   JobStatus = "pending"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
	JobStatusCancelled JobStatus = "cancelled"
)

// AnalysisJob represents an async video analysis job. The view dispatcher is
// the job's canonical page state: every lifecycle change is dispatched as a
// typed view event, which applies the reducer and fans out to SSE listeners.
type AnalysisJob struct {
	ID          string         `json:"id"`
	FileName    string         `json:"file_name"`
	Status      JobStatus      `json:"status"`
	Progress    int            `json:"progress"`
	Error       string         `json:"error,omitempty"`
	StartedAt   time.Time      `json:"started_at"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
	Result      *report.Report `json:"result,omitempty"`
	Summary     string         `json:"summary,omitempty"`

	view   *ui.Dispatcher
	cancel context.CancelFunc
	mu     sync.RWMutex
}

// GetStatus returns the current job status (implements SSEJob).
func (j *AnalysisJob) GetStatus() JobStatus {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.Status
}

// View returns the job's view-state dispatcher.
func (j *AnalysisJob) View() *ui.Dispatcher {
	return j.view
}

// AddListener subscribes to the job's view events (implements SSEJob).
func (j *AnalysisJob) AddListener() chan ui.Event {
	return j.view.AddListener()
}

// RemoveListener drops an event subscription (implements SSEJob).
func (j *AnalysisJob) RemoveListener(ch chan ui.Event) {
	j.view.RemoveListener(ch)
}

// Cancel cancels the analysis job.
func (j *AnalysisJob) Cancel() {
	j.mu.Lock()
	if j.cancel != nil {
		j.cancel()
	}
	j.Status = JobStatusCancelled
	j.mu.Unlock()
	j.view.Dispatch(ui.ProcessingFailed(j.ID, "processing cancelled"))
}

// SSEJob is the interface required by streamSSEEvents to stream job events via SSE.
type SSEJob interface {
	AddListener() chan ui.Event
	RemoveListener(ch chan ui.Event)
	GetStatus() JobStatus
}

// JobManager manages async analysis jobs.
type JobManager struct {
	jobs map[string]*AnalysisJob
	mu   sync.RWMutex
}

// NewJobManager creates a new job manager.
func NewJobManager() *JobManager {
	return &JobManager{
		jobs: make(map[string]*AnalysisJob),
	}
}

// CreateJob creates a new analysis job with a fresh view state. The view
// opens on the processing tab with the uploaded file already chosen, matching
// what a page that submitted this video would show.
func (m *JobManager) CreateJob(id, fileName string) *AnalysisJob {
	job := &AnalysisJob{
		ID:        id,
		FileName:  fileName,
		Status:    JobStatusPending,
		StartedAt: time.Now(),
		view:      ui.NewDispatcher(),
	}
	job.view.Dispatch(ui.TabSelected(ui.TabProcess))
	job.view.Dispatch(ui.VideoChosen(fileName, ""))
	job.view.Dispatch(ui.ProcessingSubmitted())

	m.mu.Lock()
	m.jobs[id] = job
	m.mu.Unlock()

	return job
}

// GetJob retrieves a job by ID.
func (m *JobManager) GetJob(id string) *AnalysisJob {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.jobs[id]
}

// DeleteJob removes a job.
func (m *JobManager) DeleteJob(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.jobs, id)
}

// ListJobs returns all jobs.
func (m *JobManager) ListJobs() []*AnalysisJob {
	m.mu.RLock()
	defer m.mu.RUnlock()
	jobs := make([]*AnalysisJob, 0, len(m.jobs))
	for _, job := range m.jobs {
		jobs = append(jobs, job)
	}
	return jobs
}

// CountByStatus returns the number of jobs in each lifecycle state.
func (m *JobManager) CountByStatus() map[JobStatus]int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	counts := make(map[JobStatus]int)
	for _, job := range m.jobs {
		counts[job.GetStatus()]++
	}
	return counts
}

// Count returns the total number of tracked jobs.
func (m *JobManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.jobs)
}
