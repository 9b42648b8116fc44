package handlers

import (
	"testing"

	"github.com/UsmanZaka51/emotion-api/internal/ui"
)

func TestJobManager_CreateAndGet(t *testing.T) {
	jm := NewJobManager()

	job := jm.CreateJob("job123", "party.mp4")

	if job.ID != "job123" {
		t.Errorf("expected job ID 'job123', got '%s'", job.ID)
	}
	if job.FileName != "party.mp4" {
		t.Errorf("expected file name 'party.mp4', got '%s'", job.FileName)
	}
	if job.Status != JobStatusPending {
		t.Errorf("expected status pending, got %v", job.Status)
	}

	retrieved := jm.GetJob("job123")
	if retrieved == nil {
		t.Fatal("expected to retrieve job")
	}
	if retrieved.ID != job.ID {
		t.Error("retrieved job should match created job")
	}
}

func TestJobManager_CreateJob_InitialViewState(t *testing.T) {
	jm := NewJobManager()

	job := jm.CreateJob("job123", "party.mp4")
	state := job.View().State()

	if state.ActiveTab != ui.TabProcess {
		t.Errorf("expected process tab active, got %q", state.ActiveTab)
	}
	if state.Process.VideoName != "party.mp4" {
		t.Errorf("expected chosen video in view state, got %q", state.Process.VideoName)
	}
	if !state.Process.Submitting {
		t.Error("expected submitting flag in view state")
	}
	if state.Banner.Kind != ui.BannerProcessing {
		t.Errorf("expected processing banner, got %q", state.Banner.Kind)
	}
	if state.Banner.Text != "Processing video... This may take a while." {
		t.Errorf("unexpected banner text: %q", state.Banner.Text)
	}
}

func TestJobManager_GetNonexistent(t *testing.T) {
	jm := NewJobManager()

	if job := jm.GetJob("nonexistent"); job != nil {
		t.Error("expected nil for nonexistent job")
	}
}

func TestJobManager_DeleteJob(t *testing.T) {
	jm := NewJobManager()

	jm.CreateJob("job123", "party.mp4")
	jm.DeleteJob("job123")

	if job := jm.GetJob("job123"); job != nil {
		t.Error("expected job to be gone after delete")
	}
}

func TestJobManager_ListAndCount(t *testing.T) {
	jm := NewJobManager()

	a := jm.CreateJob("job-a", "a.mp4")
	b := jm.CreateJob("job-b", "b.mp4")
	jm.CreateJob("job-c", "c.mp4")

	a.mu.Lock()
	a.Status = JobStatusCompleted
	a.mu.Unlock()

	b.mu.Lock()
	b.Status = JobStatusFailed
	b.mu.Unlock()

	if got := jm.Count(); got != 3 {
		t.Errorf("expected 3 jobs, got %d", got)
	}
	if got := len(jm.ListJobs()); got != 3 {
		t.Errorf("expected 3 listed jobs, got %d", got)
	}

	counts := jm.CountByStatus()
	if counts[JobStatusCompleted] != 1 || counts[JobStatusFailed] != 1 || counts[JobStatusPending] != 1 {
		t.Errorf("unexpected status counts: %v", counts)
	}
}

func TestAnalysisJob_Cancel(t *testing.T) {
	jm := NewJobManager()
	job := jm.CreateJob("job123", "party.mp4")

	called := false
	job.cancel = func() { called = true }

	job.Cancel()

	if !called {
		t.Error("expected cancel func to be invoked")
	}
	if job.GetStatus() != JobStatusCancelled {
		t.Errorf("expected status cancelled, got %s", job.GetStatus())
	}

	state := job.View().State()
	if state.Banner.Kind != ui.BannerError {
		t.Errorf("expected error banner after cancel, got %q", state.Banner.Kind)
	}
	if state.Banner.Text != "Error: processing cancelled" {
		t.Errorf("unexpected banner text: %q", state.Banner.Text)
	}
}

func TestAnalysisJob_Cancel_NoCancelFunc(t *testing.T) {
	jm := NewJobManager()
	job := jm.CreateJob("job123", "party.mp4")

	// A job whose runner has not attached a cancel func yet.
	job.Cancel()

	if job.GetStatus() != JobStatusCancelled {
		t.Errorf("expected status cancelled, got %s", job.GetStatus())
	}
}

func TestIsJobTerminal(t *testing.T) {
	tests := []struct {
		status   JobStatus
		terminal bool
	}{
		{JobStatusPending, false},
		{JobStatusRunning, false},
		{JobStatusCompleted, true},
		{JobStatusFailed, true},
		{JobStatusCancelled, true},
	}

	for _, tc := range tests {
		if got := isJobTerminal(tc.status); got != tc.terminal {
			t.Errorf("isJobTerminal(%s) = %v, want %v", tc.status, got, tc.terminal)
		}
	}
}
